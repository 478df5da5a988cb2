package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/trekkete/spektr/internal/pcap"
)

// Максимальный размер загружаемого дампа - 64 МБ.
const maxCaptureSize = 64 << 20

// PcapHandler обрабатывает HTTP-запросы на извлечение RADIUS-пакетов из дампов трафика.
type PcapHandler struct {
	gateway *pcap.Gateway
}

// NewPcapHandler создает новый экземпляр PcapHandler.
func NewPcapHandler(gateway *pcap.Gateway) *PcapHandler {
	return &PcapHandler{gateway: gateway}
}

// Parse обрабатывает POST запрос с дампом трафика (multipart/form-data).
// Поле "file" содержит сам дамп (.pcap или .cap), необязательные поля
// "sourceIpFilter" и "textFilter" сужают выборку пакетов.
func (h *PcapHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCaptureSize); err != nil {
		log.Printf("[PcapHandler] Ошибка разбора multipart-запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("[PcapHandler] Файл дампа отсутствует в запросе: %v", err)
		http.Error(w, "Требуется файл дампа трафика", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	filename := strings.ToLower(header.Filename)
	if !strings.HasSuffix(filename, ".pcap") && !strings.HasSuffix(filename, ".cap") {
		log.Printf("[PcapHandler] Недопустимое расширение файла: %s", header.Filename)
		http.Error(w, "Поддерживаются только файлы .pcap и .cap", http.StatusBadRequest)
		return
	}

	capture, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[PcapHandler] Ошибка чтения файла дампа: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	if len(capture) == 0 {
		http.Error(w, "Файл дампа пуст", http.StatusBadRequest)
		return
	}

	sourceIPFilter := r.FormValue("sourceIpFilter")
	textFilter := r.FormValue("textFilter")

	log.Printf("[PcapHandler] Декодирование дампа '%s' (%d байт), фильтры: ip=%q text=%q",
		header.Filename, len(capture), sourceIPFilter, textFilter)

	resp, err := h.gateway.Extract(r.Context(), capture, sourceIPFilter, textFilter)
	if err != nil {
		switch {
		case errors.Is(err, pcap.ErrInvalidFilter):
			http.Error(w, "Некорректный фильтр IP-адреса", http.StatusBadRequest)
		case errors.Is(err, pcap.ErrDecodeTimeout):
			http.Error(w, "Превышено время ожидания сервиса декодирования", http.StatusGatewayTimeout)
		case errors.Is(err, pcap.ErrDecodeFailed):
			http.Error(w, "Не удалось декодировать дамп трафика", http.StatusBadGateway)
		default:
			log.Printf("[PcapHandler] Непредвиденная ошибка шлюза: %v", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[PcapHandler] Ошибка кодирования ответа: %v", err)
	}
}
