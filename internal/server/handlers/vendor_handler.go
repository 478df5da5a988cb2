package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/trekkete/spektr/internal/server/middleware"
	"github.com/trekkete/spektr/internal/server/services"
	"github.com/trekkete/spektr/models"
)

// VendorHandler обрабатывает HTTP-запросы, связанные с версиями конфигураций вендоров.
type VendorHandler struct {
	vendorService services.VendorService
}

// NewVendorHandler создает новый экземпляр VendorHandler.
func NewVendorHandler(vs services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vs}
}

// Create обрабатывает POST запрос на создание новой версии конфигурации.
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:Create] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.VendorConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VendorHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	cfg, err := h.vendorService.CreateConfiguration(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVendorName) {
			http.Error(w, "Имя вендора не может быть пустым", http.StatusBadRequest)
			return
		}
		log.Printf("[VendorHandler:Create] Ошибка сервиса для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(cfg); err != nil {
		log.Printf("[VendorHandler:Create] Ошибка кодирования ответа: %v", err)
	}
}

// GetByID обрабатывает GET запрос на получение одной версии конфигурации.
func (h *VendorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:GetByID] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Неверный идентификатор версии", http.StatusBadRequest)
		return
	}

	cfg, err := h.vendorService.GetConfiguration(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, services.ErrConfigurationNotFound) {
			http.Error(w, "Версия конфигурации не найдена", http.StatusNotFound)
			return
		}
		log.Printf("[VendorHandler:GetByID] Ошибка сервиса для версии %d: %v", id, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(cfg); err != nil {
		log.Printf("[VendorHandler:GetByID] Ошибка кодирования ответа: %v", err)
	}
}

// History обрабатывает GET запрос на получение истории версий линии вендора.
// Версии возвращаются по убыванию номера, пустая история - пустой массив.
func (h *VendorHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:History] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	vendorName := chi.URLParam(r, "vendorName")

	configs, err := h.vendorService.ListVersions(r.Context(), userID, vendorName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVendorName) {
			http.Error(w, "Имя вендора не может быть пустым", http.StatusBadRequest)
			return
		}
		log.Printf("[VendorHandler:History] Ошибка сервиса для вендора '%s': %v", vendorName, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeConfigList(w, configs, "History")
}

// ListMy обрабатывает GET запрос на получение версий, созданных пользователем.
func (h *VendorHandler) ListMy(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "ListMy", h.vendorService.ListMyConfigurations)
}

// ListShared обрабатывает GET запрос на получение версий, которыми поделились с пользователем.
func (h *VendorHandler) ListShared(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "ListShared", h.vendorService.ListSharedConfigurations)
}

// ListAll обрабатывает GET запрос на получение всех доступных пользователю версий.
func (h *VendorHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "ListAll", h.vendorService.ListAccessibleConfigurations)
}

func (h *VendorHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, userID int64) ([]models.VendorConfiguration, error),
) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:%s] Не удалось получить userID из контекста", op)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	configs, err := fn(r.Context(), userID)
	if err != nil {
		log.Printf("[VendorHandler:%s] Ошибка сервиса для пользователя %d: %v", op, userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeConfigList(w, configs, op)
}

// writeConfigList сериализует список версий. nil превращается в пустой массив.
func writeConfigList(w http.ResponseWriter, configs []models.VendorConfiguration, op string) {
	if configs == nil {
		configs = []models.VendorConfiguration{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(configs); err != nil {
		log.Printf("[VendorHandler:%s] Ошибка кодирования ответа: %v", op, err)
	}
}

// Share обрабатывает POST запрос на выдачу доступа к версии.
// Существующий доступ при этом сохраняется.
func (h *VendorHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:Share] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req models.ShareConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VendorHandler:Share] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.ConfigurationID == 0 || len(req.Usernames) == 0 {
		http.Error(w, "Требуются идентификатор версии и список пользователей", http.StatusBadRequest)
		return
	}

	err := h.vendorService.ShareConfiguration(r.Context(), userID, req.ConfigurationID, req.Usernames)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfigurationNotFound):
			http.Error(w, "Версия конфигурации не найдена", http.StatusNotFound)
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, "Делиться версией может только владелец", http.StatusForbidden)
		case errors.Is(err, services.ErrUserNotFound):
			http.Error(w, "Пользователь не найден", http.StatusNotFound)
		default:
			log.Printf("[VendorHandler:Share] Ошибка сервиса для версии %d: %v", req.ConfigurationID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Доступ успешно выдан\n"))
}

// Delete обрабатывает DELETE запрос на пометку версии удаленной.
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VendorHandler:Delete] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Неверный идентификатор версии", http.StatusBadRequest)
		return
	}

	err = h.vendorService.DeleteConfiguration(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfigurationNotFound):
			http.Error(w, "Версия конфигурации не найдена", http.StatusNotFound)
		case errors.Is(err, services.ErrNotOwner):
			http.Error(w, "Удалять версию может только владелец", http.StatusForbidden)
		default:
			log.Printf("[VendorHandler:Delete] Ошибка сервиса для версии %d: %v", id, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
