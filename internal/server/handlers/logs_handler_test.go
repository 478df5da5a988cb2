package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/server/handlers"
	"github.com/trekkete/spektr/models"
)

const sampleAccessLogLine = `203.0.113.5 [10/Oct/2024:13:55:36 +0000] https://portal.example.com:443 ` +
	`"GET /start?client_mac=AA:BB:CC:DD:EE:FF HTTP/1.1" 200 512 "-" "UA" "-" "-"`

func TestLogsHandler_Extract(t *testing.T) {
	handler := handlers.NewLogsHandler()

	t.Run("Успешное извлечение параметров", func(t *testing.T) {
		body, err := json.Marshal(handlers.LogExtractionRequest{LogText: sampleAccessLogLine})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/logs/extract", strings.NewReader(string(body)))
		rr := httptest.NewRecorder()
		handler.Extract(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result models.LogExtractionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, 1, result.MatchCount)
		assert.Equal(t, "https://portal.example.com/start", result.RedirectionURL)
		assert.Equal(t, "AA:BB:CC:DD:EE:FF", result.QueryStringParameters["client_mac"])
	})

	t.Run("Фильтр по IP отсеивает строку", func(t *testing.T) {
		body, err := json.Marshal(handlers.LogExtractionRequest{
			LogText:  sampleAccessLogLine,
			SourceIP: "198.51.100.1",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/logs/extract", strings.NewReader(string(body)))
		rr := httptest.NewRecorder()
		handler.Extract(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result models.LogExtractionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Zero(t, result.MatchCount)
		assert.Empty(t, result.QueryStringParameters)
	})

	t.Run("Непарсящийся текст дает пустой результат", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logs/extract",
			strings.NewReader(`{"logText":"мусор без формата"}`))
		rr := httptest.NewRecorder()
		handler.Extract(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result models.LogExtractionResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Zero(t, result.MatchCount)
	})

	t.Run("Некорректный JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logs/extract", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		handler.Extract(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
