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

// Количество попыток присвоить номер версии при конкурентных вставках.
const maxMintAttempts = 3

// VendorConfigurationRepository определяет методы для работы с версиями
// конфигураций вендоров в хранилище.
type VendorConfigurationRepository interface {
	// CreateConfiguration вставляет новую версию, присваивая ей номер
	// (максимум по линии вендора + 1). Заполняет ID, Version и метки
	// времени в переданной структуре.
	CreateConfiguration(ctx context.Context, cfg *models.VendorConfiguration) error
	GetByID(ctx context.Context, id int64) (*models.VendorConfiguration, error)
	// ListByVendorName возвращает доступные пользователю версии линии,
	// отсортированные по номеру версии по убыванию.
	ListByVendorName(ctx context.Context, vendorName string, userID int64) ([]models.VendorConfiguration, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.VendorConfiguration, error)
	ListSharedWith(ctx context.Context, userID int64) ([]models.VendorConfiguration, error)
	ListAccessible(ctx context.Context, userID int64) ([]models.VendorConfiguration, error)
	// AddShares добавляет пользователей к списку доступа версии (объединение,
	// повторная выдача доступа игнорируется).
	AddShares(ctx context.Context, configurationID int64, userIDs []int64) error
	// SharedUsernames возвращает имена пользователей, которым выдан доступ.
	SharedUsernames(ctx context.Context, configurationID int64) ([]string, error)
	// MarkDeleted помечает версию удаленной; физически версии не удаляются.
	MarkDeleted(ctx context.Context, id int64) error
}

// postgresVendorConfigurationRepository реализует VendorConfigurationRepository для PostgreSQL.
type postgresVendorConfigurationRepository struct {
	db *sqlx.DB
}

// NewPostgresVendorConfigurationRepository создает новый экземпляр репозитория конфигураций.
func NewPostgresVendorConfigurationRepository(db *sqlx.DB) VendorConfigurationRepository {
	return &postgresVendorConfigurationRepository{db: db}
}

// Общая часть SELECT-запросов: версия вместе с именем владельца.
const selectConfiguration = `
SELECT vc.id, vc.vendor_name, vc.version, vc.snapshot, vc.owner_id,
       u.username AS owner_username, vc.parent_version_id, vc.description,
       vc.deleted, vc.created_at, vc.updated_at
FROM vendor_configurations vc
JOIN users u ON u.id = vc.owner_id`

// CreateConfiguration вставляет новую версию конфигурации.
// Номер версии вычисляется в том же INSERT-запросе, а уникальный индекс
// (vendor_name, version) сериализует конкурентные вставки: проигравшая
// транзакция получает нарушение уникальности и повторяет попытку.
func (r *postgresVendorConfigurationRepository) CreateConfiguration(
	ctx context.Context,
	cfg *models.VendorConfiguration,
) error {
	query := `
		INSERT INTO vendor_configurations
			(vendor_name, version, snapshot, owner_id, parent_version_id, description)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2, $3, $4, $5
		FROM vendor_configurations
		WHERE vendor_name = $1
		RETURNING id, version, created_at, updated_at`

	var lastErr error
	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		err := r.db.QueryRowxContext(ctx, query,
			cfg.VendorName, cfg.Snapshot, cfg.OwnerID, cfg.ParentVersionID, cfg.Description,
		).Scan(&cfg.ID, &cfg.Version, &cfg.CreatedAt, &cfg.UpdatedAt)

		if err == nil {
			log.Printf("[VendorRepo] Версия %d (ID: %d) создана для вендора '%s'",
				cfg.Version, cfg.ID, cfg.VendorName)
			return nil
		}

		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			// Конкурентная вставка успела занять номер, пробуем еще раз.
			log.Printf("[VendorRepo] Конфликт номера версии для '%s' (попытка %d/%d)",
				cfg.VendorName, attempt, maxMintAttempts)
			lastErr = err
			continue
		}

		log.Printf("[VendorRepo] Ошибка при создании версии для '%s': %v", cfg.VendorName, err)
		return fmt.Errorf("ошибка выполнения запроса на создание версии: %w", err)
	}

	return fmt.Errorf("не удалось присвоить номер версии для '%s' за %d попыток: %w",
		cfg.VendorName, maxMintAttempts, lastErr)
}

// GetByID находит версию конфигурации по ее ID. Помеченные удаленными
// версии не возвращаются.
func (r *postgresVendorConfigurationRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.VendorConfiguration, error) {
	query := selectConfiguration + ` WHERE vc.id = $1 AND vc.deleted = FALSE`
	var cfg models.VendorConfiguration

	err := r.db.GetContext(ctx, &cfg, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[VendorRepo] Версия с ID %d не найдена", id)
			return nil, ErrConfigurationNotFound
		}
		log.Printf("[VendorRepo] Ошибка при поиске версии ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версии: %w", err)
	}

	return &cfg, nil
}

// ListByVendorName возвращает историю версий линии вендора, доступных
// пользователю, по убыванию номера версии (первой идет последняя версия).
func (r *postgresVendorConfigurationRepository) ListByVendorName(
	ctx context.Context,
	vendorName string,
	userID int64,
) ([]models.VendorConfiguration, error) {
	query := selectConfiguration + `
		WHERE vc.vendor_name = $1 AND vc.deleted = FALSE
		  AND (vc.owner_id = $2 OR EXISTS (
			SELECT 1 FROM vendor_configuration_shares s
			WHERE s.configuration_id = vc.id AND s.user_id = $2))
		ORDER BY vc.version DESC`

	configs := make([]models.VendorConfiguration, 0)
	if err := r.db.SelectContext(ctx, &configs, query, vendorName, userID); err != nil {
		log.Printf("[VendorRepo] Ошибка при получении истории версий '%s': %v", vendorName, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение истории версий: %w", err)
	}

	log.Printf("[VendorRepo] Получено %d версий для вендора '%s'", len(configs), vendorName)
	return configs, nil
}

// ListByOwner возвращает версии, созданные пользователем, сначала новые.
func (r *postgresVendorConfigurationRepository) ListByOwner(
	ctx context.Context,
	ownerID int64,
) ([]models.VendorConfiguration, error) {
	query := selectConfiguration + `
		WHERE vc.owner_id = $1 AND vc.deleted = FALSE
		ORDER BY vc.created_at DESC`

	configs := make([]models.VendorConfiguration, 0)
	if err := r.db.SelectContext(ctx, &configs, query, ownerID); err != nil {
		log.Printf("[VendorRepo] Ошибка при получении версий владельца %d: %v", ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версий владельца: %w", err)
	}
	return configs, nil
}

// ListSharedWith возвращает версии, которыми поделились с пользователем.
func (r *postgresVendorConfigurationRepository) ListSharedWith(
	ctx context.Context,
	userID int64,
) ([]models.VendorConfiguration, error) {
	query := selectConfiguration + `
		JOIN vendor_configuration_shares s ON s.configuration_id = vc.id
		WHERE s.user_id = $1 AND vc.deleted = FALSE
		ORDER BY vc.created_at DESC`

	configs := make([]models.VendorConfiguration, 0)
	if err := r.db.SelectContext(ctx, &configs, query, userID); err != nil {
		log.Printf("[VendorRepo] Ошибка при получении доступных по шарингу версий пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версий: %w", err)
	}
	return configs, nil
}

// ListAccessible возвращает все версии, доступные пользователю:
// собственные и выданные через шаринг.
func (r *postgresVendorConfigurationRepository) ListAccessible(
	ctx context.Context,
	userID int64,
) ([]models.VendorConfiguration, error) {
	query := selectConfiguration + `
		WHERE vc.deleted = FALSE
		  AND (vc.owner_id = $1 OR EXISTS (
			SELECT 1 FROM vendor_configuration_shares s
			WHERE s.configuration_id = vc.id AND s.user_id = $1))
		ORDER BY vc.created_at DESC`

	configs := make([]models.VendorConfiguration, 0)
	if err := r.db.SelectContext(ctx, &configs, query, userID); err != nil {
		log.Printf("[VendorRepo] Ошибка при получении доступных версий пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версий: %w", err)
	}
	return configs, nil
}

// AddShares добавляет записи о доступе. Повторная выдача доступа не ошибка.
func (r *postgresVendorConfigurationRepository) AddShares(
	ctx context.Context,
	configurationID int64,
	userIDs []int64,
) error {
	query := `INSERT INTO vendor_configuration_shares (configuration_id, user_id)
	          SELECT $1, unnest($2::bigint[])
	          ON CONFLICT DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, configurationID, pq.Array(userIDs)); err != nil {
		log.Printf("[VendorRepo] Ошибка при выдаче доступа к версии %d: %v", configurationID, err)
		return fmt.Errorf("ошибка выполнения запроса на выдачу доступа: %w", err)
	}

	log.Printf("[VendorRepo] Доступ к версии %d выдан %d пользователям", configurationID, len(userIDs))
	return nil
}

// SharedUsernames возвращает имена пользователей со списком доступа версии.
func (r *postgresVendorConfigurationRepository) SharedUsernames(
	ctx context.Context,
	configurationID int64,
) ([]string, error) {
	query := `SELECT u.username
	          FROM vendor_configuration_shares s
	          JOIN users u ON u.id = s.user_id
	          WHERE s.configuration_id = $1
	          ORDER BY u.username`

	usernames := make([]string, 0)
	if err := r.db.SelectContext(ctx, &usernames, query, configurationID); err != nil {
		log.Printf("[VendorRepo] Ошибка при получении списка доступа версии %d: %v", configurationID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка доступа: %w", err)
	}
	return usernames, nil
}

// MarkDeleted помечает версию удаленной (soft delete).
func (r *postgresVendorConfigurationRepository) MarkDeleted(ctx context.Context, id int64) error {
	query := `UPDATE vendor_configurations SET deleted = TRUE, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("[VendorRepo] Ошибка при пометке версии %d удаленной: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление версии: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества измененных строк: %w", err)
	}
	if affected == 0 {
		return ErrConfigurationNotFound
	}

	log.Printf("[VendorRepo] Версия %d помечена удаленной", id)
	return nil
}

// Кастомные ошибки репозитория конфигураций.
var (
	ErrConfigurationNotFound = errors.New("версия конфигурации не найдена")
)
