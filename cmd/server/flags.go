package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// Порт по умолчанию для HTTPS (непривилегированный).
	defaultServerPort = "8443"

	defaultDecoderTimeoutSeconds = 30

	// Переменные окружения.
	envServerPort        = "SERVER_PORT"
	envTLSCertFile       = "TLS_CERT_FILE"
	envTLSKeyFile        = "TLS_KEY_FILE"
	envDatabaseDSN       = "DATABASE_DSN"
	envJWTSecret         = "JWT_SECRET" //nolint:gosec // Имя переменной окружения, не секрет
	envDecoderURL        = "RADIUS_DECODER_URL"
	envMinioEndpoint     = "MINIO_ENDPOINT"
	envMinioUser         = "MINIO_USER"
	envMinioPassword     = "MINIO_PASSWORD"
	envMinioBucket       = "MINIO_BUCKET"
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "spektr-attachments"
)

// config хранит конфигурацию сервера.
type config struct {
	Port          string
	CertFile      string
	KeyFile       string
	DatabaseDSN   string
	JWTSecret     string
	DecoderURL    string
	MinioEndpoint string
	MinioUser     string
	MinioPassword string
	MinioBucket   string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Значения из .env файла подхватываются как переменные окружения.
func parseFlags() (*config, error) {
	// .env опционален, его отсутствие не является ошибкой.
	_ = godotenv.Load()

	cfg := &config{}

	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTPS-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секретный ключ подписи JWT (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.DecoderURL, "decoder-url", "",
		fmt.Sprintf("URL внешнего сервиса декодирования RADIUS (env: %s)", envDecoderURL))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s, default: %s)", envMinioEndpoint, defaultMinioEndpoint))
	flag.StringVar(&cfg.MinioUser, "minio-user", "",
		fmt.Sprintf("Пользователь MinIO (env: %s)", envMinioUser))
	flag.StringVar(&cfg.MinioPassword, "minio-password", "",
		fmt.Sprintf("Пароль MinIO (env: %s)", envMinioPassword))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Бакет MinIO для вложений (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))

	flag.Parse()

	applyEnvDefaults(cfg)

	// Проверяем обязательные параметры.
	if cfg.CertFile == "" {
		return nil, errors.New("не указан путь к файлу сертификата (--cert-file или " + envTLSCertFile + ")")
	}
	if cfg.KeyFile == "" {
		return nil, errors.New("не указан путь к файлу ключа (--key-file или " + envTLSKeyFile + ")")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секретный ключ JWT (--jwt-secret или " + envJWTSecret + ")")
	}
	if cfg.DecoderURL == "" {
		return nil, errors.New("не указан URL сервиса декодирования (--decoder-url или " + envDecoderURL + ")")
	}

	return cfg, nil
}

// applyEnvDefaults заполняет не заданные флагами поля из окружения и значений по умолчанию.
func applyEnvDefaults(cfg *config) {
	fromEnv := func(target *string, envName, fallback string) {
		if *target != "" {
			return
		}
		if value, ok := os.LookupEnv(envName); ok {
			*target = value
			return
		}
		*target = fallback
	}

	fromEnv(&cfg.Port, envServerPort, defaultServerPort)
	fromEnv(&cfg.CertFile, envTLSCertFile, "")
	fromEnv(&cfg.KeyFile, envTLSKeyFile, "")
	fromEnv(&cfg.DatabaseDSN, envDatabaseDSN, "")
	fromEnv(&cfg.JWTSecret, envJWTSecret, "")
	fromEnv(&cfg.DecoderURL, envDecoderURL, "")
	fromEnv(&cfg.MinioEndpoint, envMinioEndpoint, defaultMinioEndpoint)
	fromEnv(&cfg.MinioUser, envMinioUser, defaultMinioUser)
	fromEnv(&cfg.MinioPassword, envMinioPassword, defaultMinioPassword)
	fromEnv(&cfg.MinioBucket, envMinioBucket, defaultMinioBucket)
}
