package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/trekkete/spektr/internal/server/repository"
	"github.com/trekkete/spektr/models"
)

// VendorService определяет интерфейс для сервиса версий конфигураций вендоров.
type VendorService interface {
	// CreateConfiguration создает новую неизменяемую версию конфигурации.
	CreateConfiguration(ctx context.Context, userID int64, req *models.VendorConfigurationRequest) (*models.VendorConfiguration, error)
	// GetConfiguration возвращает версию, если она существует и доступна пользователю.
	GetConfiguration(ctx context.Context, userID, id int64) (*models.VendorConfiguration, error)
	// ListVersions возвращает историю версий линии вендора по убыванию номера.
	ListVersions(ctx context.Context, userID int64, vendorName string) ([]models.VendorConfiguration, error)
	ListMyConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error)
	ListSharedConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error)
	ListAccessibleConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error)
	// ShareConfiguration добавляет пользователей к списку доступа версии.
	// Доступно только владельцу; повторная выдача доступа игнорируется.
	ShareConfiguration(ctx context.Context, userID, id int64, usernames []string) error
	// DeleteConfiguration помечает версию удаленной. Доступно только владельцу.
	DeleteConfiguration(ctx context.Context, userID, id int64) error
}

// vendorService реализует логику работы с версиями конфигураций.
var _ VendorService = (*vendorService)(nil) // Проверка соответствия интерфейсу

type vendorService struct {
	vendorRepo repository.VendorConfigurationRepository
	userRepo   repository.UserRepository
}

// NewVendorService создает новый экземпляр сервиса конфигураций.
func NewVendorService(
	vendorRepo repository.VendorConfigurationRepository,
	userRepo repository.UserRepository,
) VendorService {
	return &vendorService{vendorRepo: vendorRepo, userRepo: userRepo}
}

// CreateConfiguration проверяет запрос и создает новую версию.
// Имя вендора обязательно; номер версии присваивает репозиторий.
func (s *vendorService) CreateConfiguration(
	ctx context.Context,
	userID int64,
	req *models.VendorConfigurationRequest,
) (*models.VendorConfiguration, error) {
	vendorName := strings.TrimSpace(req.VendorName)
	if vendorName == "" {
		return nil, ErrInvalidVendorName
	}

	cfg := &models.VendorConfiguration{
		VendorName:      vendorName,
		Snapshot:        req.Snapshot,
		OwnerID:         userID,
		ParentVersionID: req.ParentVersionID,
		Description:     req.Description,
	}

	if err := s.vendorRepo.CreateConfiguration(ctx, cfg); err != nil {
		log.Printf("[VendorService] Ошибка создания версии для '%s': %v", vendorName, err)
		return nil, errors.New("внутренняя ошибка сервера при создании версии")
	}

	log.Printf("[VendorService] Пользователь %d создал версию %d вендора '%s'",
		userID, cfg.Version, cfg.VendorName)
	return cfg, nil
}

// GetConfiguration возвращает версию вместе со списком доступа.
// Недоступные пользователю версии неотличимы от несуществующих.
func (s *vendorService) GetConfiguration(
	ctx context.Context,
	userID, id int64,
) (*models.VendorConfiguration, error) {
	cfg, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConfigurationNotFound) {
			return nil, ErrConfigurationNotFound
		}
		log.Printf("[VendorService] Ошибка получения версии %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при получении версии")
	}

	shared, err := s.vendorRepo.SharedUsernames(ctx, id)
	if err != nil {
		log.Printf("[VendorService] Ошибка получения списка доступа версии %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка доступа")
	}
	cfg.SharedWithUsernames = shared

	if cfg.OwnerID != userID && !s.isSharedWith(ctx, userID, shared) {
		log.Printf("[VendorService] Пользователь %d запросил недоступную версию %d", userID, id)
		return nil, ErrConfigurationNotFound
	}

	return cfg, nil
}

// isSharedWith проверяет, есть ли пользователь в списке доступа.
func (s *vendorService) isSharedWith(ctx context.Context, userID int64, usernames []string) bool {
	if len(usernames) == 0 {
		return false
	}
	users, err := s.userRepo.GetUsersByUsernames(ctx, usernames)
	if err != nil {
		return false
	}
	for _, u := range users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// ListVersions возвращает доступные пользователю версии линии вендора.
// Пустая история не является ошибкой.
func (s *vendorService) ListVersions(
	ctx context.Context,
	userID int64,
	vendorName string,
) ([]models.VendorConfiguration, error) {
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return nil, ErrInvalidVendorName
	}

	configs, err := s.vendorRepo.ListByVendorName(ctx, vendorName, userID)
	if err != nil {
		log.Printf("[VendorService] Ошибка получения истории '%s': %v", vendorName, err)
		return nil, errors.New("внутренняя ошибка сервера при получении истории версий")
	}
	return configs, nil
}

func (s *vendorService) ListMyConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error) {
	configs, err := s.vendorRepo.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("[VendorService] Ошибка получения версий пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении версий")
	}
	return configs, nil
}

func (s *vendorService) ListSharedConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error) {
	configs, err := s.vendorRepo.ListSharedWith(ctx, userID)
	if err != nil {
		log.Printf("[VendorService] Ошибка получения доступных версий пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении версий")
	}
	return configs, nil
}

func (s *vendorService) ListAccessibleConfigurations(ctx context.Context, userID int64) ([]models.VendorConfiguration, error) {
	configs, err := s.vendorRepo.ListAccessible(ctx, userID)
	if err != nil {
		log.Printf("[VendorService] Ошибка получения всех доступных версий пользователя %d: %v", userID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении версий")
	}
	return configs, nil
}

// ShareConfiguration расширяет список доступа версии указанными пользователями.
// Существующий доступ сохраняется, неизвестное имя пользователя приводит к ошибке.
func (s *vendorService) ShareConfiguration(
	ctx context.Context,
	userID, id int64,
	usernames []string,
) error {
	cfg, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConfigurationNotFound) {
			return ErrConfigurationNotFound
		}
		log.Printf("[VendorService] Ошибка получения версии %d для шаринга: %v", id, err)
		return errors.New("внутренняя ошибка сервера при получении версии")
	}
	if cfg.OwnerID != userID {
		log.Printf("[VendorService] Пользователь %d пытается поделиться чужой версией %d", userID, id)
		return ErrNotOwner
	}

	users, err := s.userRepo.GetUsersByUsernames(ctx, usernames)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Printf("[VendorService] Ошибка поиска пользователей для шаринга версии %d: %v", id, err)
		return errors.New("внутренняя ошибка сервера при поиске пользователей")
	}

	// Владельцу доступ выдавать не нужно.
	targetIDs := make([]int64, 0, len(users))
	for _, u := range users {
		if u.ID != userID {
			targetIDs = append(targetIDs, u.ID)
		}
	}
	if len(targetIDs) == 0 {
		return nil
	}

	if err := s.vendorRepo.AddShares(ctx, id, targetIDs); err != nil {
		log.Printf("[VendorService] Ошибка выдачи доступа к версии %d: %v", id, err)
		return errors.New("внутренняя ошибка сервера при выдаче доступа")
	}

	log.Printf("[VendorService] Пользователь %d поделился версией %d с %d пользователями",
		userID, id, len(targetIDs))
	return nil
}

// DeleteConfiguration помечает версию удаленной. Номер версии при этом
// остается занятым и никогда не переиспользуется.
func (s *vendorService) DeleteConfiguration(ctx context.Context, userID, id int64) error {
	cfg, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConfigurationNotFound) {
			return ErrConfigurationNotFound
		}
		log.Printf("[VendorService] Ошибка получения версии %d для удаления: %v", id, err)
		return errors.New("внутренняя ошибка сервера при получении версии")
	}
	if cfg.OwnerID != userID {
		log.Printf("[VendorService] Пользователь %d пытается удалить чужую версию %d", userID, id)
		return ErrNotOwner
	}

	if err := s.vendorRepo.MarkDeleted(ctx, id); err != nil {
		if errors.Is(err, repository.ErrConfigurationNotFound) {
			return ErrConfigurationNotFound
		}
		log.Printf("[VendorService] Ошибка удаления версии %d: %v", id, err)
		return errors.New("внутренняя ошибка сервера при удалении версии")
	}

	log.Printf("[VendorService] Пользователь %d удалил версию %d", userID, id)
	return nil
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidVendorName     = errors.New("имя вендора не может быть пустым")
	ErrConfigurationNotFound = errors.New("версия конфигурации не найдена")
	ErrNotOwner              = errors.New("операция доступна только владельцу версии")
	ErrUserNotFound          = errors.New("пользователь не найден")
)
