package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"web3_portal/internal/access"
	"web3_portal/internal/middleware"
	"web3_portal/internal/payment"
	"web3_portal/internal/storage"
	"web3_portal/internal/testutil"
	"web3_portal/internal/utils"
)

const (
	testSecret = "test-secret"
	adminID    = "admin-principal"
	userID     = "user-principal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway records checkout requests and answers from its fields
type fakeGateway struct {
	created  []payment.CheckoutRequest
	keys     []string
	session  *payment.Session
	err      error
	sessions map[string]*payment.Session
}

func (g *fakeGateway) CreateSession(_ context.Context, secretKey string, req payment.CheckoutRequest) (*payment.Session, error) {
	g.keys = append(g.keys, secretKey)
	g.created = append(g.created, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.session, nil
}

func (g *fakeGateway) GetSession(_ context.Context, _ string, id string) (*payment.Session, error) {
	if s, ok := g.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("no such session")
}

type testServer struct {
	t       *testing.T
	router  *gin.Engine
	db      *gorm.DB
	redis   *miniredis.Miniredis
	blobs   storage.Store
	gateway *fakeGateway
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	rdb, mr := testutil.NewRedis(t)
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	gateway := &fakeGateway{sessions: map[string]*payment.Session{}}

	_, err = access.Initialize(db, adminID)
	require.NoError(t, err)
	_, err = access.Initialize(db, userID)
	require.NoError(t, err)

	router := NewRouter(Deps{
		DB:             db,
		Cache:          NewCache(rdb, time.Minute),
		Blobs:          blobs,
		Gateway:        gateway,
		JWTSecret:      testSecret,
		ContactLimiter: middleware.NewRateLimiter(100),
		MaxUploadBytes: 1024,
		Version:        "test",
	})
	return &testServer{t: t, router: router, db: db, redis: mr, blobs: blobs, gateway: gateway}
}

// do sends body as JSON on behalf of principal; an empty principal is anonymous
func (s *testServer) do(method, path string, body any, principal string) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(req, principal)
}

func (s *testServer) send(req *http.Request, principal string) *httptest.ResponseRecorder {
	s.t.Helper()
	if principal != "" {
		token, err := utils.GenerateJWT(principal, testSecret, time.Hour)
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded body into dest
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

// insertFirst makes the next create of a row matching claim lose a race: the
// callback writes a row with the same key just before gorm inserts.
func (s *testServer) insertFirst(name string, claim func(tx *gorm.DB) (string, []any, bool)) {
	s.t.Helper()
	done := false
	err := s.db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if done {
			return
		}
		query, args, ok := claim(tx)
		if !ok {
			return
		}
		done = true
		require.NoError(s.t, tx.Session(&gorm.Session{NewDB: true}).Exec(query, args...).Error)
	})
	require.NoError(s.t, err)
}
