package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/server/handlers"
	"github.com/trekkete/spektr/internal/server/mocks"
	"github.com/trekkete/spektr/internal/server/services"
	"github.com/trekkete/spektr/models"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(s *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешная регистрация",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(s *mocks.AuthService) {
				s.EXPECT().Register(mock.Anything, "alice", "secret").Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Имя занято",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(s *mocks.AuthService) {
				s.EXPECT().Register(mock.Anything, "alice", "secret").
					Return(services.ErrUsernameTaken).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Пустое имя пользователя",
			body:           `{"username":"","password":"secret"}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Некорректный JSON",
			body:           `{`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(s *mocks.AuthService) {
				s.EXPECT().Register(mock.Anything, "alice", "secret").
					Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.AuthService)
			tt.mockSetup(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Успешный вход возвращает токен", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		mockService.EXPECT().Login(mock.Anything, "alice", "secret").
			Return("jwt-token", nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"alice","password":"secret"}`))
		rr := httptest.NewRecorder()

		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
		mockService.AssertExpectations(t)
	})

	t.Run("Неверные учетные данные", func(t *testing.T) {
		mockService := new(mocks.AuthService)
		mockService.EXPECT().Login(mock.Anything, "alice", "wrong").
			Return("", services.ErrInvalidCredentials).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			strings.NewReader(`{"username":"alice","password":"wrong"}`))
		rr := httptest.NewRecorder()

		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertExpectations(t)
	})
}
