package pcap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/trekkete/spektr/models"
)

// Таймаут запроса к декодеру по умолчанию.
const defaultDecoderTimeout = 60 * time.Second

// httpDecoder реализует Decoder поверх HTTP API внешнего сервиса декодирования.
type httpDecoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPDecoder создает клиента внешнего сервиса декодирования дампов.
// Нулевой таймаут заменяется значением по умолчанию.
func NewHTTPDecoder(baseURL string, timeout time.Duration) Decoder {
	if timeout <= 0 {
		timeout = defaultDecoderTimeout
	}
	return &httpDecoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Parse отправляет дамп и фильтры декодеру как multipart-форму и
// разбирает JSON-ответ. Любой статус, кроме 200, считается отказом.
func (d *httpDecoder) Parse(
	ctx context.Context,
	capture []byte,
	sourceIPFilter, textFilter string,
) (*models.PcapParseResponse, error) {
	parseURL, err := url.JoinPath(d.baseURL, "/parse")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL декодера: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "capture.pcap")
	if err != nil {
		return nil, fmt.Errorf("ошибка подготовки формы для декодера: %w", err)
	}
	if _, err = part.Write(capture); err != nil {
		return nil, fmt.Errorf("ошибка записи дампа в форму: %w", err)
	}
	if sourceIPFilter != "" {
		if err = writer.WriteField("sourceIpFilter", sourceIPFilter); err != nil {
			return nil, fmt.Errorf("ошибка записи фильтра в форму: %w", err)
		}
	}
	if textFilter != "" {
		if err = writer.WriteField("textFilter", textFilter); err != nil {
			return nil, fmt.Errorf("ошибка записи фильтра в форму: %w", err)
		}
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка завершения формы: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, parseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса к декодеру: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к декодеру: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("декодер вернул статус %d: %s", resp.StatusCode, string(msg))
	}

	var result models.PcapParseResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа декодера: %w", err)
	}
	return &result, nil
}
