package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Флаги битовой маски walled garden (какими способами вендор умеет открывать доступ).
const (
	WalledGardenByIP         = 1
	WalledGardenByDomain     = 2
	WalledGardenWithWildcard = 4
	WalledGardenByProtocol   = 8
	WalledGardenByPort       = 16
)

// Флаги битовой маски поддерживаемых методов аутентификации по паролю.
const (
	AuthMaskPAP      = 1
	AuthMaskCHAP     = 2
	AuthMaskMSCHAPv2 = 4
)

// Attachment представляет файл, приложенный к секции снапшота.
// Содержимое хранится в объектном хранилище по ключу ObjectKey;
// поле Content заполняется только при экспорте/импорте конфигурации.
type Attachment struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType,omitempty"`
	ObjectKey   string    `json:"objectKey,omitempty"`
	Content     []byte    `json:"content,omitempty"`
	Size        int64     `json:"size,omitempty"`
	UploadDate  time.Time `json:"uploadDate,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CaptivePortalConfig описывает поведение captive-портала вендора.
// Все поля опциональны: отсутствие значения означает "неизвестно".
type CaptivePortalConfig struct {
	RedirectionURL        string            `json:"redirectionUrl,omitempty"`
	LoginURL              string            `json:"loginUrl,omitempty"`
	LogoutURL             string            `json:"logoutUrl,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	// Маппинг обнаруженных имен параметров на стандартные имена словаря.
	QueryStringMapping map[string]string `json:"queryStringMapping,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	Attachments        []Attachment      `json:"attachments,omitempty"`
}

// RadiusConfig описывает поведение вендора на уровне протокола RADIUS.
// Булевы поля заданы указателями: nil означает "неизвестно", а не "false".
type RadiusConfig struct {
	AccessRequest            string            `json:"accessRequest,omitempty"`
	AccountingStart          string            `json:"accountingStart,omitempty"`
	AccountingUpdate         string            `json:"accountingUpdate,omitempty"`
	AccountingStop           string            `json:"accountingStop,omitempty"`
	AuthAttributes           map[string]string `json:"authAttributes,omitempty"`
	AcctAttributes           map[string]string `json:"acctAttributes,omitempty"`
	SupportCoa               *bool             `json:"supportCoa,omitempty"`
	PacketSource             string            `json:"packetSource,omitempty"`
	AuthenticationMask       *int              `json:"authenticationMask,omitempty"`
	SupportMacAuthentication *bool             `json:"supportMacAuthentication,omitempty"`
	SupportRoaming           *bool             `json:"supportRoaming,omitempty"`
	Notes                    string            `json:"notes,omitempty"`
	Attachments              []Attachment      `json:"attachments,omitempty"`
}

// WalledGardenConfig описывает политику walled garden вендора.
type WalledGardenConfig struct {
	Mask        *int         `json:"mask,omitempty"`
	WelcomePage *bool        `json:"welcomePage,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// LoginMethodsConfig описывает поддерживаемые вендором способы входа.
type LoginMethodsConfig struct {
	SupportHTTPS    *bool        `json:"supportHttps,omitempty"`
	SupportLogout   *bool        `json:"supportLogout,omitempty"`
	SupportMailSurf *bool        `json:"supportMailSurf,omitempty"`
	SupportSmsSurf  *bool        `json:"supportSmsSurf,omitempty"`
	SupportSocial   *bool        `json:"supportSocial,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty"`
}

// IntegrationSnapshot описывает структурированное содержимое одной версии конфигурации вендора.
type IntegrationSnapshot struct {
	Operator        string               `json:"operator,omitempty"`
	Timestamp       int64                `json:"timestamp,omitempty"` // Unix-время в миллисекундах
	Model           string               `json:"model,omitempty"`
	FirmwareVersion string               `json:"firmwareVersion,omitempty"`
	CaptivePortal   *CaptivePortalConfig `json:"captivePortal,omitempty"`
	Radius          *RadiusConfig        `json:"radius,omitempty"`
	WalledGarden    *WalledGardenConfig  `json:"walledGarden,omitempty"`
	LoginMethods    *LoginMethodsConfig  `json:"loginMethods,omitempty"`
}

// Value сериализует снапшот в JSON для записи в колонку jsonb.
func (s IntegrationSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan десериализует снапшот из колонки jsonb.
func (s *IntegrationSnapshot) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = IntegrationSnapshot{}
		return nil
	default:
		return errors.New("неподдерживаемый тип данных для IntegrationSnapshot")
	}
}

// DefaultSnapshot возвращает пустой снапшот с инициализированными секциями.
func DefaultSnapshot() IntegrationSnapshot {
	return IntegrationSnapshot{
		Timestamp:     time.Now().UnixMilli(),
		CaptivePortal: &CaptivePortalConfig{},
		Radius:        &RadiusConfig{},
		WalledGarden:  &WalledGardenConfig{},
		LoginMethods:  &LoginMethodsConfig{},
	}
}

// SampleSnapshot возвращает фиксированный пример заполненного снапшота.
// Используется мастером ревизий как подсказка по структуре данных.
func SampleSnapshot() IntegrationSnapshot {
	return IntegrationSnapshot{
		Operator:        "admin",
		Timestamp:       time.Now().UnixMilli(),
		Model:           "Model-X100",
		FirmwareVersion: "1.0.0",
		CaptivePortal: &CaptivePortalConfig{
			RedirectionURL: "https://portal.example.com",
			LoginURL:       "https://portal.example.com/login",
			LogoutURL:      "https://portal.example.com/logout",
			QueryStringParameters: map[string]string{
				"client_mac": "MAC",
				"client_ip":  "IP",
			},
			Notes: "Пример конфигурации captive-портала",
		},
		Radius: &RadiusConfig{
			AccessRequest:            "RADIUS Access-Request sample",
			AccountingStart:          "RADIUS Accounting-Start sample",
			SupportMacAuthentication: BoolPtr(true),
			SupportRoaming:           BoolPtr(false),
			Notes:                    "Пример конфигурации RADIUS",
		},
		WalledGarden: &WalledGardenConfig{
			Mask:        IntPtr(WalledGardenByIP | WalledGardenByDomain),
			WelcomePage: BoolPtr(true),
		},
		LoginMethods: &LoginMethodsConfig{
			SupportHTTPS:  BoolPtr(true),
			SupportLogout: BoolPtr(true),
			SupportSocial: BoolPtr(true),
		},
	}
}

// MergeSection выполняет неглубокое слияние патча в секцию снапшота.
// Ключи патча перекрывают существующие значения, отсутствующие в патче
// ключи остаются нетронутыми. Исходные карты не модифицируются.
func MergeSection(existing, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(patch))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// BoolPtr возвращает указатель на переданное булево значение.
func BoolPtr(b bool) *bool { return &b }

// IntPtr возвращает указатель на переданное целое значение.
func IntPtr(i int) *int { return &i }
