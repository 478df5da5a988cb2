package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/server/middleware"
)

const testSecretKey = "test-secret"

type jwtClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		expectedID int64
		expectedOK bool
	}{
		{
			name:       "Контекст с UserID",
			ctx:        context.WithValue(context.Background(), middleware.UserIDKey, int64(123)),
			expectedID: 123,
			expectedOK: true,
		},
		{
			name:       "Пустой контекст",
			ctx:        context.Background(),
			expectedID: 0,
			expectedOK: false,
		},
		{
			name:       "Контекст с UserID неверного типа",
			ctx:        context.WithValue(context.Background(), middleware.UserIDKey, "not-an-int64"),
			expectedID: 0,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := middleware.GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.expectedID, userID)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestGetUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UsernameKey, "alice")
	username, ok := middleware.GetUsernameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	_, ok = middleware.GetUsernameFromContext(context.Background())
	assert.False(t, ok)
}

// Вспомогательная функция для генерации JWT токена.
func generateTestToken(t *testing.T, userID int64, username, secretKey string, expiresAt time.Time) string {
	t.Helper()
	claims := jwtClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "test-issuer",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	require.NoError(t, err)
	return signed
}

func TestAuthenticator(t *testing.T) {
	validToken := generateTestToken(t, 42, "alice", testSecretKey, time.Now().Add(time.Hour))
	expiredToken := generateTestToken(t, 42, "alice", testSecretKey, time.Now().Add(-time.Hour))
	wrongKeyToken := generateTestToken(t, 42, "alice", "other-secret", time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Валидный токен",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Заголовок отсутствует",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Неверный формат заголовка",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Истекший токен",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Токен подписан другим ключом",
			authHeader:     "Bearer " + wrongKeyToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotUsername string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = middleware.GetUserIDFromContext(r.Context())
				gotUsername, _ = middleware.GetUsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.NewAuthenticator(testSecretKey)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/vendors/my", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, int64(42), gotUserID)
				assert.Equal(t, "alice", gotUsername)
			}
		})
	}
}
