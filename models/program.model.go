package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Program is a tenant brand that owns activities and usage stats
type Program struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Handle string    `gorm:"uniqueIndex;not null" json:"handle"` // URL-safe, globally unique
	Name   string    `gorm:"not null" json:"name"`

	PerkProgramID string `gorm:"not null" json:"perk_program_id"` // program id in the Perk rewards ledger
	ApiKey        string `gorm:"not null" json:"api_key"`

	Branding     datatypes.JSON `gorm:"type:jsonb" json:"branding"`
	CustomDomain *string        `json:"custom_domain,omitempty"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	Settings     datatypes.JSON `gorm:"type:jsonb" json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Activities []Activity `gorm:"foreignKey:ProgramID" json:"activities,omitempty"`
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
