package model

import "time"

// SettingModel mirrors the 'settings' table. Rows are singletons keyed by
// their unique name.
type SettingModel struct {
	Name      string `gorm:"type:varchar(64);primary_key"`
	IsEnabled bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
