package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramUsage holds monthly aggregate counters for one program.
// Month is always the first day of the month; one row per (program, month).
type ProgramUsage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_program_usage_month" json:"program_id"`
	Program   Program   `gorm:"foreignKey:ProgramID" json:"program,omitempty"`

	Month time.Time `gorm:"not null;uniqueIndex:idx_program_usage_month" json:"month"`

	Views         int `gorm:"default:0" json:"views"`
	Starts        int `gorm:"default:0" json:"starts"`
	Completions   int `gorm:"default:0" json:"completions"`
	PointsAwarded int `gorm:"default:0" json:"points_awarded"`
}

func (u *ProgramUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
