package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/trekkete/spektr/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

// UserRepository определяет методы для работы с данными пользователей в хранилище.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsersByUsernames(ctx context.Context, usernames []string) ([]models.User, error)
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// CreateUser создает нового пользователя в базе данных.
// Возвращает ID созданного пользователя или ошибку.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`
	var userID int64

	err := r.db.QueryRowxContext(ctx, query, user.Username, user.PasswordHash).Scan(&userID)
	if err != nil {
		// Проверяем на ошибку нарушения уникальности (duplicate key)
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[UserRepo] Ошибка создания пользователя: имя пользователя '%s' уже занято", user.Username)
			return 0, ErrUsernameTaken
		}
		log.Printf("[UserRepo] Непредвиденная ошибка при создании пользователя '%s': %v", user.Username, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[UserRepo] Пользователь '%s' успешно создан с ID %d", user.Username, userID)
	return userID, nil
}

// GetUserByUsername находит пользователя по его имени.
func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[UserRepo] Пользователь с именем '%s' не найден", username)
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepo] Ошибка при поиске пользователя '%s': %v", username, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// GetUsersByUsernames возвращает пользователей по списку имен.
// Если хотя бы одно имя не найдено, возвращает ErrUserNotFound: операция
// шаринга не должна молча игнорировать опечатки в именах.
func (r *postgresUserRepository) GetUsersByUsernames(ctx context.Context, usernames []string) ([]models.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	query := `SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ANY($1)`
	users := make([]models.User, 0, len(usernames))

	err := r.db.SelectContext(ctx, &users, query, pq.Array(usernames))
	if err != nil {
		log.Printf("[UserRepo] Ошибка при поиске пользователей по списку имен: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователей: %w", err)
	}

	if len(users) != len(dedupStrings(usernames)) {
		return nil, ErrUserNotFound
	}
	return users, nil
}

// dedupStrings возвращает список без повторов с сохранением порядка.
func dedupStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Кастомные ошибки репозитория пользователей.
var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)
