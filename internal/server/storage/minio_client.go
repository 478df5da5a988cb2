package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileStorage определяет интерфейс для работы с объектным хранилищем
// вложений (скриншоты портала, дампы, инструкции вендора).
type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, objectKey string) error
}

// MinioClient реализует FileStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string // Логин
	SecretAccessKey string // Пароль
	UseSSL          bool   // Использовать SSL (обычно false для локальной разработки)
	BucketName      string // Имя бакета для хранения вложений
	Region          string // Регион (не обязательно для MinIO)
}

// NewObjectKey генерирует ключ объекта для вложения.
// Оригинальное имя файла сохраняется в метаданных версии, а не в ключе.
func NewObjectKey(filename string) string {
	return "attachments/" + uuid.NewString() + path.Ext(filename)
}

// NewMinioClient создает новый клиент MinIO.
func NewMinioClient(cfg MinioConfig) (*MinioClient, error) {
	log.Printf("Инициализация клиента MinIO для эндпоинта %s...", cfg.Endpoint)

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// Проверка доступности MinIO
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.Printf("Предупреждение: не удалось проверить соединение с MinIO: %v. Проверьте доступность и креды.", err)
		// Не возвращаем ошибку, чтобы сервер мог запуститься, даже если MinIO временно недоступен
	}

	// Проверка существования бакета и создание при необходимости
	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Printf("Бакет '%s' не найден, попытка создания...", cfg.BucketName)
		err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
		log.Printf("Бакет '%s' успешно создан.", cfg.BucketName)
	}

	log.Printf("Клиент MinIO успешно инициализирован для бакета '%s'.", cfg.BucketName)
	return &MinioClient{
		client:     minioClient,
		bucketName: cfg.BucketName,
	}, nil
}

// UploadFile загружает вложение в MinIO.
func (c *MinioClient) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	log.Printf("[Minio] Загрузка вложения '%s' в бакет '%s'...", objectKey, c.bucketName)

	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}

	uploadInfo, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, opts)
	if err != nil {
		log.Printf("[Minio] Ошибка загрузки вложения '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка загрузки файла в MinIO: %w", err)
	}

	log.Printf("[Minio] Вложение '%s' успешно загружено, размер: %d, ETag: %s",
		objectKey, uploadInfo.Size, uploadInfo.ETag)
	return nil
}

// DownloadFile скачивает вложение из MinIO.
// Возвращает io.ReadCloser, который нужно закрыть после использования.
func (c *MinioClient) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	log.Printf("[Minio] Скачивание вложения '%s' из бакета '%s'...", objectKey, c.bucketName)

	object, err := c.client.GetObject(ctx, c.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			log.Printf("[Minio] Вложение '%s' не найдено в бакете '%s'", objectKey, c.bucketName)
			return nil, ErrObjectNotFound
		}
		log.Printf("[Minio] Ошибка получения вложения '%s': %v", objectKey, err)
		return nil, fmt.Errorf("ошибка получения файла из MinIO: %w", err)
	}

	return object, nil
}

// DeleteFile удаляет вложение из MinIO.
func (c *MinioClient) DeleteFile(ctx context.Context, objectKey string) error {
	log.Printf("[Minio] Удаление вложения '%s' из бакета '%s'...", objectKey, c.bucketName)

	err := c.client.RemoveObject(ctx, c.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		log.Printf("[Minio] Ошибка удаления вложения '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка удаления файла из MinIO: %w", err)
	}
	return nil
}

// Кастомная ошибка хранилища.
var (
	ErrObjectNotFound = errors.New("объект не найден в хранилище")
)
