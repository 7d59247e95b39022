package access

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web3_portal/internal/domain"
	"web3_portal/internal/testutil"
)

func TestInitialize_FirstCallerBecomesAdmin(t *testing.T) {
	db := testutil.NewDB(t)

	role, err := Initialize(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	role, err = Initialize(db, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)

	// repeated calls keep the existing role
	role, err = Initialize(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	admin, err := IsAdmin(db, "bob")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestRoleOf_Guests(t *testing.T) {
	db := testutil.NewDB(t)

	role, err := RoleOf(db, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)

	role, err = RoleOf(db, "stranger")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)

	role, err = Initialize(db, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)
}

func TestAssignRole(t *testing.T) {
	db := testutil.NewDB(t)

	require.NoError(t, AssignRole(db, "carol", domain.RoleUser))
	role, err := RoleOf(db, "carol")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role)

	require.NoError(t, AssignRole(db, "carol", domain.RoleAdmin))
	role, err = RoleOf(db, "carol")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	require.NoError(t, AssignRole(db, "carol", domain.RoleGuest))
	role, err = RoleOf(db, "carol")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, role)

	assert.ErrorIs(t, AssignRole(db, "carol", domain.UserRole("root")), ErrInvalidRole)
}

func TestProfiles(t *testing.T) {
	db := testutil.NewDB(t)

	profile, err := Profile(db, "dave")
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, SaveProfile(db, "dave", domain.UserProfile{Name: "Dave"}))
	require.NoError(t, SaveProfile(db, "dave", domain.UserProfile{Name: "David"}))

	profile, err = Profile(db, "dave")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "David", profile.Name)
}

func TestInitialize_ConcurrentCallersYieldOneAdmin(t *testing.T) {
	db := testutil.NewDB(t)

	const callers = 16
	var wg sync.WaitGroup
	roles := make([]domain.UserRole, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			roles[i], errs[i] = Initialize(db, fmt.Sprintf("caller-%d", i))
		}(i)
	}
	wg.Wait()

	admins := 0
	for i := range roles {
		require.NoError(t, errs[i])
		if roles[i] == domain.RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins)

	var stored int64
	require.NoError(t, db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&stored).Error)
	assert.Equal(t, int64(1), stored)
	require.NoError(t, db.Model(&domain.User{}).Count(&stored).Error)
	assert.Equal(t, int64(callers), stored)
}

func TestInitialize_NewAdminAfterLastAdminLeaves(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := Initialize(db, "alice")
	require.NoError(t, err)
	require.NoError(t, AssignRole(db, "alice", domain.RoleGuest))

	role, err := Initialize(db, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}
