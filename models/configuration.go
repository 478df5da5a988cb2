package models

import "time"

// VendorConfiguration представляет одну неизменяемую версию конфигурации вендора.
// Версии с одним VendorName образуют линию версий (lineage); номер версии
// строго возрастает внутри линии и назначается хранилищем при создании.
type VendorConfiguration struct {
	ID              int64               `db:"id" json:"id"`
	VendorName      string              `db:"vendor_name" json:"vendorName"`
	Version         int                 `db:"version" json:"version"`
	Snapshot        IntegrationSnapshot `db:"snapshot" json:"snapshot"`
	OwnerID         int64               `db:"owner_id" json:"ownerId"`
	OwnerUsername   string              `db:"owner_username" json:"ownerUsername"`
	ParentVersionID *int64              `db:"parent_version_id" json:"parentVersionId,omitempty"`
	// Имена пользователей, которым выдан доступ на чтение. Заполняется отдельным
	// запросом, меняется только явной операцией шаринга.
	SharedWithUsernames []string  `db:"-" json:"sharedWithUsernames"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
	Description         string    `db:"description" json:"description,omitempty"`
	Deleted             bool      `db:"deleted" json:"-"`
}

// VendorConfigurationRequest представляет тело запроса на создание новой версии.
type VendorConfigurationRequest struct {
	VendorName      string              `json:"vendorName"`
	Snapshot        IntegrationSnapshot `json:"snapshot"`
	Description     string              `json:"description,omitempty"`
	ParentVersionID *int64              `json:"parentVersionId,omitempty"`
}

// ShareConfigurationRequest представляет тело запроса на шаринг версии.
type ShareConfigurationRequest struct {
	ConfigurationID int64    `json:"configurationId"`
	Usernames       []string `json:"usernames"`
}
