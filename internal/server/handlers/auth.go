package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/trekkete/spektr/internal/server/services"
	"github.com/trekkete/spektr/models"
)

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service services.AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// Валидация входных данных (простая)
	if req.Username == "" || req.Password == "" {
		log.Printf("[AuthHandler] Пустое имя пользователя или пароль при регистрации")
		http.Error(w, "Имя пользователя и пароль не могут быть пустыми", http.StatusBadRequest)
		return
	}

	log.Printf("[AuthHandler] Попытка регистрации пользователя: %s", req.Username)

	if err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			http.Error(w, "Имя пользователя уже занято", http.StatusConflict)
			return
		}
		log.Printf("[AuthHandler] Ошибка сервиса при регистрации '%s': %v", req.Username, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated) // 201 Created
	_, _ = w.Write([]byte("Пользователь успешно зарегистрирован\n"))
	log.Printf("[AuthHandler] Успешная регистрация для: %s", req.Username)
}

// Login обрабатывает запрос на вход пользователя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// Валидация входных данных (простая)
	if req.Username == "" || req.Password == "" {
		log.Printf("[AuthHandler] Пустое имя пользователя или пароль при входе")
		http.Error(w, "Имя пользователя и пароль не могут быть пустыми", http.StatusBadRequest)
		return
	}

	log.Printf("[AuthHandler] Попытка входа пользователя: %s", req.Username)

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Error(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
			return
		}
		log.Printf("[AuthHandler] Ошибка сервиса при входе '%s': %v", req.Username, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	resp := models.LoginResponse{Token: token}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[AuthHandler] Ошибка кодирования ответа входа: %v", err)
		return
	}
	log.Printf("[AuthHandler] Успешный вход для: %s", req.Username)
}
