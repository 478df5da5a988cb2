package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL, импортируем для регистрации
)

const (
	maxOpenConns    = 25              // Максимальное количество открытых соединений
	maxIdleConns    = 25              // Максимальное количество простаивающих соединений
	connMaxLifetime = 5 * time.Minute // Максимальное время жизни соединения
	connMaxIdleTime = 5 * time.Minute // Максимальное время простоя соединения
)

// Схема БД. Номера версий уникальны внутри линии вендора, этот индекс
// является точкой сериализации при конкурентном создании версий.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vendor_configurations (
	id BIGSERIAL PRIMARY KEY,
	vendor_name TEXT NOT NULL,
	version INTEGER NOT NULL,
	snapshot JSONB NOT NULL,
	owner_id BIGINT NOT NULL REFERENCES users (id),
	parent_version_id BIGINT REFERENCES vendor_configurations (id),
	description TEXT NOT NULL DEFAULT '',
	deleted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (vendor_name, version)
);

CREATE INDEX IF NOT EXISTS idx_vendor_configurations_vendor_name
	ON vendor_configurations (vendor_name);

CREATE TABLE IF NOT EXISTS vendor_configuration_shares (
	configuration_id BIGINT NOT NULL REFERENCES vendor_configurations (id),
	user_id BIGINT NOT NULL REFERENCES users (id),
	PRIMARY KEY (configuration_id, user_id)
);
`

// NewPostgresDB создает и возвращает новое подключение к PostgreSQL.
func NewPostgresDB(dsn string) (*sqlx.DB, error) {
	log.Printf("Подключение к PostgreSQL...")

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Проверка соединения
	if err = db.Ping(); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД после неудачного пинга: %v", closeErr)
		}
		return nil, fmt.Errorf("ошибка проверки соединения с БД (ping): %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	log.Println("Подключение к PostgreSQL успешно установлено.")
	return db, nil
}

// InitSchema создает таблицы, если они еще не существуют.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ошибка инициализации схемы БД: %w", err)
	}
	log.Println("Схема БД инициализирована.")
	return nil
}
