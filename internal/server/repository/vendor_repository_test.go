package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/server/repository"
	"github.com/trekkete/spektr/models"
)

// Вспомогательная функция для создания мока БД и репозитория конфигураций.
func setupVendorRepoMock(t *testing.T) (repository.VendorConfigurationRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresVendorConfigurationRepository(sqlxDB)
	return repo, mock
}

const insertConfigurationQuery = `
		INSERT INTO vendor_configurations
			(vendor_name, version, snapshot, owner_id, parent_version_id, description)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2, $3, $4, $5
		FROM vendor_configurations
		WHERE vendor_name = $1
		RETURNING id, version, created_at, updated_at`

func newTestConfiguration() *models.VendorConfiguration {
	snapshot := models.DefaultSnapshot()
	snapshot.Operator = "tester"
	return &models.VendorConfiguration{
		VendorName:  "acme",
		Snapshot:    snapshot,
		OwnerID:     7,
		Description: "первая версия",
	}
}

func TestCreateConfiguration(t *testing.T) {
	now := time.Now()

	t.Run("Успешное создание первой версии", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)
		cfg := newTestConfiguration()

		rows := sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at"}).
			AddRow(int64(42), 1, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(insertConfigurationQuery)).
			WithArgs(cfg.VendorName, cfg.Snapshot, cfg.OwnerID, nil, cfg.Description).
			WillReturnRows(rows)

		err := repo.CreateConfiguration(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, int64(42), cfg.ID)
		assert.Equal(t, 1, cfg.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повтор после конфликта номера версии", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)
		cfg := newTestConfiguration()

		// Первая попытка проигрывает конкурентной вставке.
		mock.ExpectQuery(regexp.QuoteMeta(insertConfigurationQuery)).
			WithArgs(cfg.VendorName, cfg.Snapshot, cfg.OwnerID, nil, cfg.Description).
			WillReturnError(&pq.Error{Code: "23505"})
		// Вторая попытка получает следующий номер.
		rows := sqlmock.NewRows([]string{"id", "version", "created_at", "updated_at"}).
			AddRow(int64(43), 5, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(insertConfigurationQuery)).
			WithArgs(cfg.VendorName, cfg.Snapshot, cfg.OwnerID, nil, cfg.Description).
			WillReturnRows(rows)

		err := repo.CreateConfiguration(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Исчерпание попыток при постоянных конфликтах", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)
		cfg := newTestConfiguration()

		for i := 0; i < 3; i++ {
			mock.ExpectQuery(regexp.QuoteMeta(insertConfigurationQuery)).
				WithArgs(cfg.VendorName, cfg.Snapshot, cfg.OwnerID, nil, cfg.Description).
				WillReturnError(&pq.Error{Code: "23505"})
		}

		err := repo.CreateConfiguration(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не удалось присвоить номер версии")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Прочая ошибка БД не повторяется", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)
		cfg := newTestConfiguration()

		mock.ExpectQuery(regexp.QuoteMeta(insertConfigurationQuery)).
			WithArgs(cfg.VendorName, cfg.Snapshot, cfg.OwnerID, nil, cfg.Description).
			WillReturnError(sql.ErrConnDone)

		err := repo.CreateConfiguration(context.Background(), cfg)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByID(t *testing.T) {
	now := time.Now()
	columns := []string{
		"id", "vendor_name", "version", "snapshot", "owner_id",
		"owner_username", "parent_version_id", "description",
		"deleted", "created_at", "updated_at",
	}

	t.Run("Версия найдена", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		snapshot := models.DefaultSnapshot()
		snapshot.Operator = "tester"
		raw, err := snapshot.Value()
		require.NoError(t, err)

		rows := sqlmock.NewRows(columns).
			AddRow(int64(42), "acme", 3, raw, int64(7), "owner", nil, "описание", false, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE vc.id = $1 AND vc.deleted = FALSE`)).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		cfg, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "acme", cfg.VendorName)
		assert.Equal(t, 3, cfg.Version)
		assert.Equal(t, "owner", cfg.OwnerUsername)
		assert.Equal(t, "tester", cfg.Snapshot.Operator)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Версия не найдена", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE vc.id = $1 AND vc.deleted = FALSE`)).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		cfg, err := repo.GetByID(context.Background(), 99)
		require.ErrorIs(t, err, repository.ErrConfigurationNotFound)
		assert.Nil(t, cfg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByVendorName(t *testing.T) {
	now := time.Now()
	columns := []string{
		"id", "vendor_name", "version", "snapshot", "owner_id",
		"owner_username", "parent_version_id", "description",
		"deleted", "created_at", "updated_at",
	}

	t.Run("История по убыванию версии", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		snapshot := models.DefaultSnapshot()
		raw, err := snapshot.Value()
		require.NoError(t, err)

		rows := sqlmock.NewRows(columns).
			AddRow(int64(2), "acme", 2, raw, int64(7), "owner", int64(1), "", false, now, now).
			AddRow(int64(1), "acme", 1, raw, int64(7), "owner", nil, "", false, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY vc.version DESC`)).
			WithArgs("acme", int64(7)).
			WillReturnRows(rows)

		configs, err := repo.ListByVendorName(context.Background(), "acme", 7)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, 2, configs[0].Version)
		assert.Equal(t, 1, configs[1].Version)
		require.NotNil(t, configs[0].ParentVersionID)
		assert.Equal(t, int64(1), *configs[0].ParentVersionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустая история", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY vc.version DESC`)).
			WithArgs("unknown", int64(7)).
			WillReturnRows(sqlmock.NewRows(columns))

		configs, err := repo.ListByVendorName(context.Background(), "unknown", 7)
		require.NoError(t, err)
		assert.Empty(t, configs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddShares(t *testing.T) {
	t.Run("Выдача доступа идемпотентна", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT DO NOTHING`)).
			WithArgs(int64(42), pq.Array([]int64{3, 4})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddShares(context.Background(), 42, []int64{3, 4})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSharedUsernames(t *testing.T) {
	repo, mock := setupVendorRepoMock(t)

	rows := sqlmock.NewRows([]string{"username"}).AddRow("alice").AddRow("bob")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM vendor_configuration_shares s`)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	usernames, err := repo.SharedUsernames(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, usernames)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDeleted(t *testing.T) {
	t.Run("Успешная пометка", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE vendor_configurations SET deleted = TRUE`)).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkDeleted(context.Background(), 42)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Версия не существует", func(t *testing.T) {
		repo, mock := setupVendorRepoMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE vendor_configurations SET deleted = TRUE`)).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkDeleted(context.Background(), 99)
		require.ErrorIs(t, err, repository.ErrConfigurationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
