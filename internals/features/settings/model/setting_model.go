package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel is the singleton configuration row. The cutoffs are a reserved
// extension point for the scorer; they are editable but not yet consumed by
// the scoring rules.
type SettingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AttendanceCutoff float64   `gorm:"default:75" json:"attendance_cutoff"`
	MarksCutoff      float64   `gorm:"default:40" json:"marks_cutoff"`
	FeeDelayDays     int       `gorm:"default:30" json:"fee_delay_days"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the table name in line with the database schema
func (SettingModel) TableName() string {
	return "settings"
}
