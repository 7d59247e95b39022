package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web3_portal/internal/domain"
)

func TestCallerRole(t *testing.T) {
	s := newTestServer(t)

	var resp struct {
		Role    domain.UserRole `json:"role"`
		IsAdmin bool            `json:"isAdmin"`
	}
	tests := []struct {
		principal string
		role      domain.UserRole
	}{
		{"", domain.RoleGuest},
		{"stranger", domain.RoleGuest},
		{userID, domain.RoleUser},
		{adminID, domain.RoleAdmin},
	}
	for _, tt := range tests {
		w := s.do(http.MethodGet, "/me/role", nil, tt.principal)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &resp)
		assert.Equal(t, tt.role, resp.Role, tt.principal)

		w = s.do(http.MethodGet, "/me/admin", nil, tt.principal)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &resp)
		assert.Equal(t, tt.role == domain.RoleAdmin, resp.IsAdmin, tt.principal)
	}
}

func TestInitializeAccess(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/me/init", nil, "").Code)

	var resp struct {
		Role domain.UserRole `json:"role"`
	}
	w := s.do(http.MethodPost, "/me/init", nil, "newcomer")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, domain.RoleUser, resp.Role, "an admin already exists")

	w = s.do(http.MethodPost, "/me/init", nil, adminID)
	decode(t, w, &resp)
	assert.Equal(t, domain.RoleAdmin, resp.Role, "known callers keep their role")

	var status CallerStatusResponse
	w = s.do(http.MethodGet, "/me", nil, adminID)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &status)
	assert.Equal(t, CallerStatusResponse{Principal: adminID, IsAdmin: true}, status)
}

func TestAssignRole(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/admin/roles", AssignRoleRequest{Principal: userID, Role: domain.RoleAdmin}, userID)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/admin/roles", AssignRoleRequest{Principal: userID, Role: "owner"}, adminID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/admin/roles", AssignRoleRequest{Principal: adminID, Role: domain.RoleUser}, adminID)
	assert.Equal(t, http.StatusBadRequest, w.Code, "admins cannot demote themselves")

	w = s.do(http.MethodPost, "/admin/roles", AssignRoleRequest{Principal: userID, Role: domain.RoleAdmin}, adminID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/admin/messages", nil, userID).Code)

	w = s.do(http.MethodPost, "/admin/roles", AssignRoleRequest{Principal: userID, Role: domain.RoleGuest}, adminID)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Role domain.UserRole `json:"role"`
	}
	decode(t, s.do(http.MethodGet, "/me/role", nil, userID), &resp)
	assert.Equal(t, domain.RoleGuest, resp.Role)
}

func TestProfiles(t *testing.T) {
	s := newTestServer(t)

	var resp struct {
		Profile *domain.UserProfile `json:"profile"`
	}
	w := s.do(http.MethodGet, "/me/profile", nil, userID)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Nil(t, resp.Profile)

	w = s.do(http.MethodPut, "/me/profile", map[string]string{"name": "Stranger"}, "stranger")
	assert.Equal(t, http.StatusForbidden, w.Code, "guests cannot save a profile")

	w = s.do(http.MethodPut, "/me/profile", map[string]string{"name": ""}, userID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/me/profile", map[string]string{"name": "Ala"}, userID)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPut, "/me/profile", map[string]string{"name": "Ala Kowalska"}, userID)
	require.Equal(t, http.StatusOK, w.Code)

	decode(t, s.do(http.MethodGet, "/me/profile", nil, userID), &resp)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Ala Kowalska", resp.Profile.Name)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/users/"+adminID+"/profile", nil, userID).Code)

	w = s.do(http.MethodGet, "/users/"+userID+"/profile", nil, adminID)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Ala Kowalska", resp.Profile.Name)
}
