package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/trekkete/spektr/internal/pcap"
	"github.com/trekkete/spektr/internal/server/handlers"
	appmiddleware "github.com/trekkete/spektr/internal/server/middleware"
	"github.com/trekkete/spektr/internal/server/repository"
	"github.com/trekkete/spektr/internal/server/services"
	"github.com/trekkete/spektr/internal/server/storage"
)

const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 30 * time.Second

	schemaInitTimeout = 15 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db                *sqlx.DB
	fileStorage       storage.FileStorage
	authHandler       *handlers.AuthHandler
	vendorHandler     *handlers.VendorHandler
	pcapHandler       *handlers.PcapHandler
	logsHandler       *handlers.LogsHandler
	attachmentHandler *handlers.AttachmentHandler
	jwtSecret         string
}

// Подключение к БД вынесено в переменную для подмены в тестах.
//
//nolint:gochecknoglobals // Точка подмены в тестах
var newPostgresDB = repository.NewPostgresDB

// Инициализация файлового хранилища вынесена по той же причине.
//
//nolint:gochecknoglobals // Точка подмены в тестах
var newFileStorage = func(cfg storage.MinioConfig) (storage.FileStorage, error) {
	return storage.NewMinioClient(cfg)
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера Spektr...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
	log.Printf("Используется сертификат: %s", cfg.CertFile)
	log.Printf("Используется ключ: %s", cfg.KeyFile)

	if err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTPS-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{jwtSecret: cfg.JWTSecret}
	var err error

	// 1. Подключение к БД и инициализация схемы
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	ctx, cancel := context.WithTimeout(context.Background(), schemaInitTimeout)
	defer cancel()
	if err = repository.InitSchema(ctx, deps.db); err != nil {
		closeDB(deps.db, "ошибке инициализации схемы")
		return nil, fmt.Errorf("ошибка инициализации схемы БД: %w", err)
	}

	// 2. Инициализация клиента MinIO для вложений
	minioCfg := storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          false,
		BucketName:      cfg.MinioBucket,
	}
	deps.fileStorage, err = newFileStorage(minioCfg)
	if err != nil {
		closeDB(deps.db, "ошибке MinIO")
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	vendorRepo := repository.NewPostgresVendorConfigurationRepository(deps.db)

	// 4. Создание сервисов и шлюза декодирования
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	vendorService := services.NewVendorService(vendorRepo, userRepo)
	decoder := pcap.NewHTTPDecoder(cfg.DecoderURL, defaultDecoderTimeoutSeconds*time.Second)
	gateway := pcap.NewGateway(decoder)

	// 5. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.vendorHandler = handlers.NewVendorHandler(vendorService)
	deps.pcapHandler = handlers.NewPcapHandler(gateway)
	deps.logsHandler = handlers.NewLogsHandler()
	deps.attachmentHandler = handlers.NewAttachmentHandler(deps.fileStorage)

	return deps, nil
}

func closeDB(db *sqlx.DB, reason string) {
	if closeErr := db.Close(); closeErr != nil {
		log.Printf("Ошибка закрытия соединения с БД при %s: %v", reason, closeErr)
	}
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (регистрация, вход)
		r.Post("/register", deps.authHandler.Register)
		r.Post("/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.NewAuthenticator(deps.jwtSecret))

			r.Route("/vendors", func(r chi.Router) {
				r.Post("/", deps.vendorHandler.Create)
				r.Get("/my", deps.vendorHandler.ListMy)
				r.Get("/shared", deps.vendorHandler.ListShared)
				r.Get("/all", deps.vendorHandler.ListAll)
				r.Get("/history/{vendorName}", deps.vendorHandler.History)
				r.Post("/share", deps.vendorHandler.Share)
				r.Get("/{id}", deps.vendorHandler.GetByID)
				r.Delete("/{id}", deps.vendorHandler.Delete)
			})

			r.Post("/pcap/parse", deps.pcapHandler.Parse)
			r.Post("/logs/extract", deps.logsHandler.Extract)

			r.Route("/attachments", func(r chi.Router) {
				r.Post("/", deps.attachmentHandler.Upload)
				r.Get("/*", deps.attachmentHandler.Download)
			})
		})
	})
	return r
}
