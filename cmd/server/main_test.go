package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekkete/spektr/internal/server/handlers"
	"github.com/trekkete/spektr/internal/server/storage"
)

func TestSetupRouter(t *testing.T) {
	// Тестируем только роутинг, поэтому зависимости обработчиков nil.
	deps := &dependencies{
		authHandler:       handlers.NewAuthHandler(nil),
		vendorHandler:     handlers.NewVendorHandler(nil),
		pcapHandler:       handlers.NewPcapHandler(nil),
		logsHandler:       handlers.NewLogsHandler(),
		attachmentHandler: handlers.NewAttachmentHandler(nil),
		jwtSecret:         "test-secret",
	}

	r := setupRouter(deps)
	require.NotNil(t, r)

	assert.True(t, hasRoute(r, http.MethodGet, "/ping"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/register"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/login"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/vendors/"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/vendors/my"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/vendors/shared"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/vendors/all"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/vendors/history/{vendorName}"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/vendors/share"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/vendors/{id}"))
	assert.True(t, hasRoute(r, http.MethodDelete, "/api/vendors/{id}"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/pcap/parse"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/logs/extract"))
	assert.True(t, hasRoute(r, http.MethodPost, "/api/attachments/"))
	assert.True(t, hasRoute(r, http.MethodGet, "/api/attachments/*"))
}

// Вспомогательная функция для проверки наличия маршрута.
func hasRoute(r chi.Router, method, pattern string) bool {
	found := false
	_ = chi.Walk(r, func(m, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if m == method && route == pattern {
			found = true
			return errors.New("found") // Прерываем обход
		}
		return nil
	})
	return found
}

// stubFileStorage подменяет файловое хранилище в тестах setupDependencies.
type stubFileStorage struct{}

func (s *stubFileStorage) UploadFile(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return nil
}

func (s *stubFileStorage) DownloadFile(_ context.Context, _ string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (s *stubFileStorage) DeleteFile(_ context.Context, _ string) error { return nil }

func TestSetupDependencies(t *testing.T) {
	originalNewPostgresDB := newPostgresDB
	originalNewFileStorage := newFileStorage
	defer func() {
		newPostgresDB = originalNewPostgresDB
		newFileStorage = originalNewFileStorage
	}()

	t.Run("Ошибка: Некорректный DatabaseDSN", func(t *testing.T) {
		newPostgresDB = originalNewPostgresDB
		cfg := &config{
			DatabaseDSN: "невалидный dsn",
		}
		_, err := setupDependencies(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка инициализации БД")
	})

	t.Run("Ошибка: Некорректный MinIO Endpoint", func(t *testing.T) {
		newPostgresDB = func(_ string) (*sqlx.DB, error) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
			return sqlx.NewDb(mockDB, "sqlmock"), nil
		}

		cfg := &config{
			DatabaseDSN:   "dummy-dsn-for-mock",
			JWTSecret:     "secret",
			DecoderURL:    "http://localhost:5000",
			MinioEndpoint: "invalid-endpoint:!!!",
			MinioUser:     "user",
			MinioPassword: "password",
			MinioBucket:   "bucket",
		}
		_, err := setupDependencies(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка инициализации клиента MinIO")
	})

	t.Run("Успешное выполнение (без реальной проверки соединений)", func(t *testing.T) {
		newFileStorage = func(_ storage.MinioConfig) (storage.FileStorage, error) {
			return &stubFileStorage{}, nil
		}
		newPostgresDB = func(_ string) (*sqlx.DB, error) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
			return sqlx.NewDb(mockDB, "sqlmock"), nil
		}

		cfg := &config{
			DatabaseDSN:   "dummy-dsn-for-mock",
			JWTSecret:     "secret",
			DecoderURL:    "http://localhost:5000",
			MinioEndpoint: defaultMinioEndpoint,
			MinioUser:     defaultMinioUser,
			MinioPassword: defaultMinioPassword,
			MinioBucket:   defaultMinioBucket,
		}

		deps, err := setupDependencies(cfg)
		require.NoError(t, err)
		require.NotNil(t, deps)
		assert.NotNil(t, deps.db)
		assert.NotNil(t, deps.fileStorage)
		assert.NotNil(t, deps.authHandler)
		assert.NotNil(t, deps.vendorHandler)
		assert.NotNil(t, deps.pcapHandler)
		assert.NotNil(t, deps.logsHandler)
		assert.NotNil(t, deps.attachmentHandler)

		if deps.db != nil {
			_ = deps.db.Close()
		}
	})
}
