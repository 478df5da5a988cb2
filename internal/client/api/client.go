package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trekkete/spektr/models"
)

// ErrAuthorization сигнализирует об ошибке авторизации (401).
var ErrAuthorization = errors.New("ошибка авторизации")

// ErrNotFound сигнализирует, что запрошенная версия недоступна или не существует.
var ErrNotFound = errors.New("версия конфигурации не найдена")

// Client определяет интерфейс для взаимодействия с API сервера Spektr.
type Client interface {
	// Register регистрирует нового пользователя.
	Register(ctx context.Context, username, password string) error
	// Login аутентифицирует пользователя и возвращает JWT токен.
	Login(ctx context.Context, username, password string) (string, error)
	// CreateConfiguration сохраняет новую версию конфигурации вендора.
	CreateConfiguration(ctx context.Context, req *models.VendorConfigurationRequest) (*models.VendorConfiguration, error)
	// GetConfiguration получает версию конфигурации по идентификатору.
	GetConfiguration(ctx context.Context, id int64) (*models.VendorConfiguration, error)
	// ListVersions получает историю версий линии вендора, новые сначала.
	ListVersions(ctx context.Context, vendorName string) ([]models.VendorConfiguration, error)
	// ListMyConfigurations получает версии, принадлежащие текущему пользователю.
	ListMyConfigurations(ctx context.Context) ([]models.VendorConfiguration, error)
	// ListSharedConfigurations получает версии, расшаренные текущему пользователю.
	ListSharedConfigurations(ctx context.Context) ([]models.VendorConfiguration, error)
	// ListAccessibleConfigurations получает все доступные пользователю версии.
	ListAccessibleConfigurations(ctx context.Context) ([]models.VendorConfiguration, error)
	// ShareConfiguration выдает пользователям доступ на чтение версии.
	ShareConfiguration(ctx context.Context, configurationID int64, usernames []string) error
	// DeleteConfiguration помечает версию удаленной.
	DeleteConfiguration(ctx context.Context, id int64) error
	// ParseCapture отправляет дамп трафика на разбор.
	ParseCapture(ctx context.Context, filename string, capture []byte, sourceIPFilter, textFilter string) (*models.PcapParseResponse, error)
	// ExtractFromLog отправляет фрагмент access-лога на разбор.
	ExtractFromLog(ctx context.Context, logText, sourceIP, pathContains string) (*models.LogExtractionResult, error)
	// SetAuthToken устанавливает JWT токен для аутентифицированных запросов.
	SetAuthToken(token string)
}

// httpClient реализует интерфейс Client для взаимодействия с сервером по HTTP.
type httpClient struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// NewHTTPClient создает новый экземпляр API клиента.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Register отправляет запрос на регистрацию на сервер.
func (c *httpClient) Register(ctx context.Context, username, password string) error {
	requestBody := models.RegisterRequest{
		Username: username,
		Password: password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/register", requestBody, false)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса на регистрацию: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusConflict {
			return errors.New("пользователь с таким именем уже существует")
		}
		return fmt.Errorf("ошибка регистрации на сервере: статус %d", resp.StatusCode)
	}
	return nil
}

// Login отправляет запрос на вход на сервер и сохраняет токен.
func (c *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	requestBody := models.LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/login", requestBody, false)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса на вход: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return "", errors.New("неверное имя пользователя или пароль")
		}
		return "", fmt.Errorf("ошибка входа на сервере: статус %d", resp.StatusCode)
	}

	var loginResponse models.LoginResponse
	if err = json.NewDecoder(resp.Body).Decode(&loginResponse); err != nil {
		return "", fmt.Errorf("ошибка декодирования ответа на вход: %w", err)
	}
	if loginResponse.Token == "" {
		return "", errors.New("сервер вернул пустой токен")
	}

	// Сохраняем токен для последующих запросов.
	c.authToken = loginResponse.Token
	return loginResponse.Token, nil
}

// CreateConfiguration сохраняет новую версию конфигурации вендора.
func (c *httpClient) CreateConfiguration(
	ctx context.Context,
	req *models.VendorConfigurationRequest,
) (*models.VendorConfiguration, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/vendors", req, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на сохранение версии: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrAuthorization
		}
		return nil, fmt.Errorf("ошибка сохранения версии: статус %d", resp.StatusCode)
	}

	var created models.VendorConfiguration
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("ошибка декодирования сохраненной версии: %w", err)
	}
	return &created, nil
}

// GetConfiguration получает версию конфигурации по идентификатору.
func (c *httpClient) GetConfiguration(ctx context.Context, id int64) (*models.VendorConfiguration, error) {
	path := "/api/vendors/" + strconv.FormatInt(id, 10)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версии: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, ErrAuthorization
		case http.StatusNotFound:
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения версии: статус %d", resp.StatusCode)
	}

	var cfg models.VendorConfiguration
	if err = json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка декодирования версии: %w", err)
	}
	return &cfg, nil
}

// ListVersions получает историю версий линии вендора.
func (c *httpClient) ListVersions(ctx context.Context, vendorName string) ([]models.VendorConfiguration, error) {
	path := "/api/vendors/history/" + url.PathEscape(vendorName)
	return c.listConfigurations(ctx, path, "истории версий")
}

// ListMyConfigurations получает версии, принадлежащие текущему пользователю.
func (c *httpClient) ListMyConfigurations(ctx context.Context) ([]models.VendorConfiguration, error) {
	return c.listConfigurations(ctx, "/api/vendors/my", "своих версий")
}

// ListSharedConfigurations получает версии, расшаренные текущему пользователю.
func (c *httpClient) ListSharedConfigurations(ctx context.Context) ([]models.VendorConfiguration, error) {
	return c.listConfigurations(ctx, "/api/vendors/shared", "расшаренных версий")
}

// ListAccessibleConfigurations получает все версии, доступные пользователю.
func (c *httpClient) ListAccessibleConfigurations(ctx context.Context) ([]models.VendorConfiguration, error) {
	return c.listConfigurations(ctx, "/api/vendors/all", "доступных версий")
}

func (c *httpClient) listConfigurations(
	ctx context.Context,
	path, what string,
) ([]models.VendorConfiguration, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на список %s: %w", what, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrAuthorization
		}
		return nil, fmt.Errorf("ошибка получения списка %s: статус %d", what, resp.StatusCode)
	}

	var configurations []models.VendorConfiguration
	if err = json.NewDecoder(resp.Body).Decode(&configurations); err != nil {
		return nil, fmt.Errorf("ошибка декодирования списка %s: %w", what, err)
	}
	return configurations, nil
}

// ShareConfiguration выдает пользователям доступ на чтение версии.
func (c *httpClient) ShareConfiguration(ctx context.Context, configurationID int64, usernames []string) error {
	requestBody := models.ShareConfigurationRequest{
		ConfigurationID: configurationID,
		Usernames:       usernames,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/vendors/share", requestBody, true)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса на выдачу доступа: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrAuthorization
		case http.StatusForbidden:
			return errors.New("выдавать доступ может только владелец версии")
		case http.StatusNotFound:
			return errors.New("версия или один из пользователей не найдены")
		}
		return fmt.Errorf("ошибка выдачи доступа: статус %d", resp.StatusCode)
	}
	return nil
}

// DeleteConfiguration помечает версию удаленной.
func (c *httpClient) DeleteConfiguration(ctx context.Context, id int64) error {
	path := "/api/vendors/" + strconv.FormatInt(id, 10)
	resp, err := c.doJSON(ctx, http.MethodDelete, path, nil, true)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса на удаление версии: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrAuthorization
		case http.StatusForbidden:
			return errors.New("удалять версию может только владелец")
		case http.StatusNotFound:
			return ErrNotFound
		}
		return fmt.Errorf("ошибка удаления версии: статус %d", resp.StatusCode)
	}
	return nil
}

// ParseCapture отправляет дамп трафика на разбор в формате multipart.
func (c *httpClient) ParseCapture(
	ctx context.Context,
	filename string,
	capture []byte,
	sourceIPFilter, textFilter string,
) (*models.PcapParseResponse, error) {
	parseURL, err := url.JoinPath(c.baseURL, "/api/pcap/parse")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL для разбора дампа: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart-запроса: %w", err)
	}
	if _, err = part.Write(capture); err != nil {
		return nil, fmt.Errorf("ошибка записи дампа в запрос: %w", err)
	}
	if sourceIPFilter != "" {
		if err = writer.WriteField("sourceIpFilter", sourceIPFilter); err != nil {
			return nil, fmt.Errorf("ошибка записи фильтра по IP: %w", err)
		}
	}
	if textFilter != "" {
		if err = writer.WriteField("textFilter", textFilter); err != nil {
			return nil, fmt.Errorf("ошибка записи текстового фильтра: %w", err)
		}
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка завершения multipart-запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, parseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса на разбор дампа: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err = c.setAuthHeader(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на разбор дампа: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrAuthorization
		}
		return nil, fmt.Errorf("ошибка разбора дампа: статус %d", resp.StatusCode)
	}

	var result models.PcapParseResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка декодирования результата разбора дампа: %w", err)
	}
	return &result, nil
}

// logExtractionRequest повторяет форму запроса серверного обработчика логов.
type logExtractionRequest struct {
	LogText      string `json:"logText"`
	SourceIP     string `json:"sourceIp,omitempty"`
	PathContains string `json:"pathContains,omitempty"`
}

// ExtractFromLog отправляет фрагмент access-лога на разбор.
func (c *httpClient) ExtractFromLog(
	ctx context.Context,
	logText, sourceIP, pathContains string,
) (*models.LogExtractionResult, error) {
	requestBody := logExtractionRequest{
		LogText:      logText,
		SourceIP:     sourceIP,
		PathContains: pathContains,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/logs/extract", requestBody, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на разбор лога: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrAuthorization
		}
		return nil, fmt.Errorf("ошибка разбора лога: статус %d", resp.StatusCode)
	}

	var result models.LogExtractionResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка декодирования результата разбора лога: %w", err)
	}
	return &result, nil
}

// SetAuthToken устанавливает токен аутентификации для клиента.
func (c *httpClient) SetAuthToken(token string) {
	c.authToken = token
}

// doJSON выполняет запрос с JSON-телом (или без тела) по указанному пути.
func (c *httpClient) doJSON(
	ctx context.Context,
	method, path string,
	payload any,
	authenticated bool,
) (*http.Response, error) {
	requestURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL запроса: %w", err)
	}

	var body io.Reader
	if payload != nil {
		jsonData, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, fmt.Errorf("ошибка кодирования тела запроса: %w", marshalErr)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if err = c.setAuthHeader(req); err != nil {
			return nil, err
		}
	}

	return c.httpClient.Do(req)
}

// setAuthHeader добавляет заголовок авторизации к запросу.
func (c *httpClient) setAuthHeader(req *http.Request) error {
	if c.authToken == "" {
		return errors.New("токен аутентификации отсутствует")
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	return nil
}
