// Package model defines database models for persistence layer.
package model

import "time"

// SettingModel represents the settings table: key-value snapshots with
// last-write-wins semantics.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
