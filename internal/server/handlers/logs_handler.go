package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/trekkete/spektr/internal/extractor"
)

// LogExtractionRequest представляет запрос на разбор фрагмента access-лога.
type LogExtractionRequest struct {
	LogText      string `json:"logText"`
	SourceIP     string `json:"sourceIp,omitempty"`
	PathContains string `json:"pathContains,omitempty"`
}

// LogsHandler обрабатывает HTTP-запросы на извлечение параметров из access-логов.
type LogsHandler struct{}

// NewLogsHandler создает новый экземпляр LogsHandler.
func NewLogsHandler() *LogsHandler {
	return &LogsHandler{}
}

// Extract обрабатывает POST запрос с текстом лога и необязательными фильтрами.
// Строки, не подходящие под формат лога, молча пропускаются, поэтому ответ
// всегда успешен: пустой результат с нулевым счетчиком тоже результат.
func (h *LogsHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req LogExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[LogsHandler] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	result := extractor.ExtractFromLog(req.LogText, extractor.Options{
		SourceIP:     req.SourceIP,
		PathContains: req.PathContains,
	})

	log.Printf("[LogsHandler] Разобрано строк: %d, параметров: %d",
		result.MatchCount, len(result.QueryStringParameters))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("[LogsHandler] Ошибка кодирования ответа: %v", err)
	}
}
