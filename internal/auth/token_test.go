package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pjavier1988/todo-api/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, ttl), mr
}

func TestStore_CreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	token, err := store.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := store.GetUserID(context.Background(), token)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	// Tokens are unique per issue.
	other, err := store.Create(context.Background(), 42)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestStore_UnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, ok := store.GetUserID(context.Background(), "deadbeef")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	token, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), token))
	_, ok := store.GetUserID(context.Background(), token)
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	token, err := store.Create(context.Background(), 7)
	require.NoError(t, err)

	mr.FastForward(time.Minute + time.Second)

	_, ok := store.GetUserID(context.Background(), token)
	assert.False(t, ok)
}

// stubAuthenticator resolves a fixed token set for middleware tests.
type stubAuthenticator struct {
	users map[string]domain.User
}

func (s *stubAuthenticator) AuthenticateByToken(_ context.Context, token string) (domain.User, error) {
	u, ok := s.users[token]
	if !ok {
		return domain.User{}, errors.New("invalid or expired token")
	}
	return u, nil
}

func newTestRouter(authn Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireToken(authn), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	return r
}

func TestRequireToken(t *testing.T) {
	authn := &stubAuthenticator{users: map[string]domain.User{
		"good": {ID: 42, Email: "user@example.com", IsActive: true},
	}}
	r := newTestRouter(authn)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"wrong scheme", "Token good", http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireToken_SetsUserID(t *testing.T) {
	authn := &stubAuthenticator{users: map[string]domain.User{
		"good": {ID: 42, IsActive: true},
	}}
	r := newTestRouter(authn)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42}`, w.Body.String())
}
