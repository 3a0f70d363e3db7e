package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wyvernhall/snackcupboard/internal/auth"
)

func newService(t *testing.T, password string, tokenDuration time.Duration) *auth.Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return auth.NewService(string(hash), "test-secret", tokenDuration)
}

func TestService_VerifyPassword(t *testing.T) {
	svc := newService(t, "hunter2", time.Hour)

	assert.NoError(t, svc.VerifyPassword("hunter2"))
	assert.ErrorIs(t, svc.VerifyPassword("hunter3"), auth.ErrInvalidPassword)
	assert.ErrorIs(t, svc.VerifyPassword(""), auth.ErrInvalidPassword)
}

func TestService_LoginAndValidate(t *testing.T) {
	svc := newService(t, "hunter2", time.Hour)

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := newService(t, "hunter2", time.Hour)

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := newService(t, "hunter2", -time.Minute)

	token, err := svc.Login("hunter2")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ValidateToken(token), auth.ErrInvalidToken)
}

func TestService_ValidateToken_WrongKey(t *testing.T) {
	issuer := newService(t, "hunter2", time.Hour)

	token, err := issuer.Login("hunter2")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	other := auth.NewService(string(hash), "different-secret", time.Hour)
	assert.ErrorIs(t, other.ValidateToken(token), auth.ErrInvalidToken)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	svc := newService(t, "hunter2", time.Hour)

	assert.ErrorIs(t, svc.ValidateToken("not-a-token"), auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	svc := newService(t, "hunter2", time.Hour)

	token, err := svc.Login("hunter2")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := svc.Middleware(next)

	type testCase struct {
		name       string
		authHeader string
		wantStatus int
	}

	tests := []testCase{
		{name: "ValidToken", authHeader: "Bearer " + token, wantStatus: http.StatusNoContent},
		{name: "MissingHeader", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "EmptyToken", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "BadToken", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
