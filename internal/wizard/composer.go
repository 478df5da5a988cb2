// Package wizard реализует пошаговый мастер подготовки новой версии
// конфигурации вендора. Все изменения накапливаются в памяти и попадают
// в хранилище только при подтверждении.
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/trekkete/spektr/internal/pcap"
	"github.com/trekkete/spektr/models"
)

// Кастомные ошибки мастера.
var (
	ErrNoPriorRevision = errors.New("у вендора еще нет сохраненных версий")
	ErrMalformedImport = errors.New("не удалось разобрать импортируемые данные")
	ErrUnknownSection  = errors.New("неизвестная секция мастера")
)

// Section задает шаг мастера. Порядок шагов фиксирован.
type Section int

const (
	SectionBasicInfo Section = iota
	SectionCaptivePortal
	SectionRadius
	SectionWalledGarden
	SectionLoginMethods

	sectionCount
)

// SectionTotal возвращает количество шагов мастера.
func SectionTotal() int { return int(sectionCount) }

// String возвращает человекочитаемое имя шага.
func (s Section) String() string {
	switch s {
	case SectionBasicInfo:
		return "Основная информация"
	case SectionCaptivePortal:
		return "Captive-портал"
	case SectionRadius:
		return "RADIUS"
	case SectionWalledGarden:
		return "Walled garden"
	case SectionLoginMethods:
		return "Способы входа"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// VersionStore представляет хранилище версий, с которым работает мастер.
// Реализуется HTTP-клиентом сервера.
type VersionStore interface {
	ListVersions(ctx context.Context, vendorName string) ([]models.VendorConfiguration, error)
	CreateConfiguration(ctx context.Context, req *models.VendorConfigurationRequest) (*models.VendorConfiguration, error)
}

// Composer накапливает содержимое будущей версии конфигурации.
type Composer struct {
	store VersionStore

	vendorName      string
	description     string
	snapshot        models.IntegrationSnapshot
	parentVersionID *int64
	current         Section
}

// NewComposer создает мастер для линии версий указанного вендора.
// Снапшот инициализируется пустыми секциями.
func NewComposer(store VersionStore, vendorName, operator string) *Composer {
	snapshot := models.DefaultSnapshot()
	snapshot.Operator = operator
	return &Composer{
		store:      store,
		vendorName: strings.TrimSpace(vendorName),
		snapshot:   snapshot,
		current:    SectionBasicInfo,
	}
}

// VendorName возвращает имя вендора, для которого готовится версия.
func (c *Composer) VendorName() string { return c.vendorName }

// Description возвращает текущее описание версии.
func (c *Composer) Description() string { return c.description }

// SetDescription задает описание версии.
func (c *Composer) SetDescription(description string) { c.description = description }

// Snapshot возвращает копию текущего состояния снапшота.
func (c *Composer) Snapshot() models.IntegrationSnapshot { return c.snapshot }

// ParentVersionID возвращает ID версии-родителя, если она известна.
func (c *Composer) ParentVersionID() *int64 { return c.parentVersionID }

// Current возвращает текущий шаг мастера.
func (c *Composer) Current() Section { return c.current }

// Next переходит к следующему шагу. На последнем шаге ничего не происходит.
func (c *Composer) Next() Section {
	if c.current < sectionCount-1 {
		c.current++
	}
	return c.current
}

// Previous возвращается к предыдущему шагу. На первом шаге ничего не происходит.
func (c *Composer) Previous() Section {
	if c.current > SectionBasicInfo {
		c.current--
	}
	return c.current
}

// JumpTo переходит к произвольному шагу. Переход всегда допустим.
func (c *Composer) JumpTo(section Section) Section {
	if section >= SectionBasicInfo && section < sectionCount {
		c.current = section
	}
	return c.current
}

// ApplyFieldEdit применяет точечное изменение одного поля секции.
// Изменение проходит через слияние карт: прочие поля секции не затрагиваются.
func (c *Composer) ApplyFieldEdit(section Section, field string, value any) error {
	if section == SectionBasicInfo {
		return c.applyBasicField(field, value)
	}

	existing, err := c.sectionAsMap(section)
	if err != nil {
		return err
	}
	merged := models.MergeSection(existing, map[string]any{field: value})
	return c.setSectionFromMap(section, merged)
}

func (c *Composer) applyBasicField(field string, value any) error {
	text, _ := value.(string)
	switch field {
	case "vendorName":
		c.vendorName = strings.TrimSpace(text)
	case "model":
		c.snapshot.Model = text
	case "firmwareVersion":
		c.snapshot.FirmwareVersion = text
	case "operator":
		c.snapshot.Operator = text
	default:
		return fmt.Errorf("%w: неизвестное поле %q", ErrUnknownSection, field)
	}
	return nil
}

// sectionAsMap сериализует секцию снапшота в карту для слияния.
func (c *Composer) sectionAsMap(section Section) (map[string]any, error) {
	var src any
	switch section {
	case SectionCaptivePortal:
		src = c.snapshot.CaptivePortal
	case SectionRadius:
		src = c.snapshot.Radius
	case SectionWalledGarden:
		src = c.snapshot.WalledGarden
	case SectionLoginMethods:
		src = c.snapshot.LoginMethods
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSection, section)
	}

	raw, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации секции: %w", err)
	}
	result := make(map[string]any)
	if err = json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("ошибка десериализации секции: %w", err)
	}
	return result, nil
}

// setSectionFromMap записывает слитую карту обратно в типизированную секцию.
func (c *Composer) setSectionFromMap(section Section, merged map[string]any) error {
	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("ошибка сериализации секции: %w", err)
	}

	switch section {
	case SectionCaptivePortal:
		target := &models.CaptivePortalConfig{}
		if err = json.Unmarshal(raw, target); err == nil {
			c.snapshot.CaptivePortal = target
		}
	case SectionRadius:
		target := &models.RadiusConfig{}
		if err = json.Unmarshal(raw, target); err == nil {
			c.snapshot.Radius = target
		}
	case SectionWalledGarden:
		target := &models.WalledGardenConfig{}
		if err = json.Unmarshal(raw, target); err == nil {
			c.snapshot.WalledGarden = target
		}
	case SectionLoginMethods:
		target := &models.LoginMethodsConfig{}
		if err = json.Unmarshal(raw, target); err == nil {
			c.snapshot.LoginMethods = target
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownSection, section)
	}
	if err != nil {
		return fmt.Errorf("ошибка применения изменения секции: %w", err)
	}
	return nil
}

// LoadSample заполняет снапшот демонстрационными данными.
// Имя вендора при этом сохраняется.
func (c *Composer) LoadSample() {
	operator := c.snapshot.Operator
	c.snapshot = models.SampleSnapshot()
	c.snapshot.Operator = operator
}

// LoadPreviousRevision загружает последнюю сохраненную версию линии вендора.
// Мастер перенимает снапшот и описание, а загруженная версия становится
// родителем будущей.
func (c *Composer) LoadPreviousRevision(ctx context.Context) error {
	history, err := c.store.ListVersions(ctx, c.vendorName)
	if err != nil {
		return fmt.Errorf("ошибка получения истории версий: %w", err)
	}
	if len(history) == 0 {
		return ErrNoPriorRevision
	}

	// История отсортирована по убыванию номера версии.
	latest := history[0]
	c.snapshot = latest.Snapshot
	c.description = latest.Description
	parentID := latest.ID
	c.parentVersionID = &parentID
	return nil
}

// importProbe различает две формы импорта по наличию ключа snapshot.
type importProbe struct {
	VendorName  string          `json:"vendorName"`
	Description string          `json:"description"`
	Snapshot    json.RawMessage `json:"snapshot"`
}

// ImportSnapshot загружает состояние мастера из JSON-экспорта.
// Принимаются две формы: полная версия конфигурации (различается по наличию
// ключа snapshot, при этом перенимаются имя вендора и описание) и голый снапшот.
func (c *Composer) ImportSnapshot(raw []byte) error {
	var probe importProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	if len(probe.Snapshot) > 0 {
		var snapshot models.IntegrationSnapshot
		if err := json.Unmarshal(probe.Snapshot, &snapshot); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedImport, err)
		}
		c.snapshot = snapshot
		if probe.VendorName != "" {
			c.vendorName = probe.VendorName
		}
		if probe.Description != "" {
			c.description = probe.Description
		}
		return nil
	}

	var snapshot models.IntegrationSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	c.snapshot = snapshot
	return nil
}

// ApplyLogExtraction переносит результат разбора access-лога в секцию
// captive-портала. Непустой redirectionUrl заменяет прежний; обнаруженные
// параметры добавляются, но уже известные имена не перезаписываются.
func (c *Composer) ApplyLogExtraction(result models.LogExtractionResult) {
	if c.snapshot.CaptivePortal == nil {
		c.snapshot.CaptivePortal = &models.CaptivePortalConfig{}
	}
	portal := c.snapshot.CaptivePortal

	if result.RedirectionURL != "" {
		portal.RedirectionURL = result.RedirectionURL
	}
	if len(result.QueryStringParameters) > 0 {
		if portal.QueryStringParameters == nil {
			portal.QueryStringParameters = make(map[string]string, len(result.QueryStringParameters))
		}
		for name, value := range result.QueryStringParameters {
			if _, known := portal.QueryStringParameters[name]; !known {
				portal.QueryStringParameters[name] = value
			}
		}
	}
}

// ApplyPacketExtraction переносит результат декодирования дампа трафика
// в RADIUS-секцию снапшота.
func (c *Composer) ApplyPacketExtraction(resp *models.PcapParseResponse) {
	pcap.ApplyToSnapshot(&c.snapshot, resp)
}

// Commit сохраняет накопленный снапшот как новую версию линии вендора.
// Родителем записывается последняя версия линии, если она есть.
func (c *Composer) Commit(ctx context.Context) (*models.VendorConfiguration, error) {
	if c.parentVersionID == nil {
		history, err := c.store.ListVersions(ctx, c.vendorName)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения истории версий: %w", err)
		}
		if len(history) > 0 {
			parentID := history[0].ID
			c.parentVersionID = &parentID
		}
	}

	req := &models.VendorConfigurationRequest{
		VendorName:      c.vendorName,
		Snapshot:        c.snapshot,
		Description:     c.description,
		ParentVersionID: c.parentVersionID,
	}

	cfg, err := c.store.CreateConfiguration(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения версии: %w", err)
	}
	return cfg, nil
}
