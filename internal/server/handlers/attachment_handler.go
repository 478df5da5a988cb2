package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/trekkete/spektr/internal/server/storage"
)

// Максимальный размер вложения - 32 МБ.
const maxAttachmentSize = 32 << 20

// AttachmentUploadResponse представляет результат загрузки вложения.
// Ключ объекта сохраняется в секции снапшота рядом с именем файла.
type AttachmentUploadResponse struct {
	ObjectKey   string `json:"objectKey"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// AttachmentHandler обрабатывает загрузку и скачивание вложений
// (скриншоты портала, дампы, инструкции вендора).
type AttachmentHandler struct {
	fileStorage storage.FileStorage
}

// NewAttachmentHandler создает новый экземпляр AttachmentHandler.
func NewAttachmentHandler(fs storage.FileStorage) *AttachmentHandler {
	return &AttachmentHandler{fileStorage: fs}
}

// Upload обрабатывает POST запрос с вложением (multipart/form-data, поле "file").
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		log.Printf("[AttachmentHandler] Ошибка разбора multipart-запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("[AttachmentHandler] Файл отсутствует в запросе: %v", err)
		http.Error(w, "Требуется файл вложения", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Size <= 0 {
		http.Error(w, "Файл вложения пуст", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := storage.NewObjectKey(header.Filename)
	if err = h.fileStorage.UploadFile(r.Context(), objectKey, file, header.Size, contentType); err != nil {
		log.Printf("[AttachmentHandler] Ошибка загрузки вложения '%s': %v", header.Filename, err)
		http.Error(w, "Внутренняя ошибка сервера при загрузке файла", http.StatusInternalServerError)
		return
	}

	resp := AttachmentUploadResponse{
		ObjectKey:   objectKey,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[AttachmentHandler] Ошибка кодирования ответа: %v", err)
	}
	log.Printf("[AttachmentHandler] Вложение '%s' загружено как '%s'", header.Filename, objectKey)
}

// Download обрабатывает GET запрос на скачивание вложения по ключу объекта.
func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "*")
	if objectKey == "" {
		http.Error(w, "Требуется ключ объекта", http.StatusBadRequest)
		return
	}

	reader, err := h.fileStorage.DownloadFile(r.Context(), objectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			http.Error(w, "Вложение не найдено", http.StatusNotFound)
			return
		}
		log.Printf("[AttachmentHandler] Ошибка скачивания вложения '%s': %v", objectKey, err)
		http.Error(w, "Внутренняя ошибка сервера при скачивании файла", http.StatusInternalServerError)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, reader); err != nil {
		log.Printf("[AttachmentHandler] Ошибка передачи вложения '%s': %v", objectKey, err)
	}
}
