package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the customer identity row shared by orders and QC appointments.
type Profile struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;not null"`
	FullName  *string   `gorm:"column:full_name"`
	Phone     *string   `gorm:"column:phone"`
	Role      string    `gorm:"column:role;not null;default:'customer'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string { return "profiles" }

// DisplayName returns the trimmed full name, or "" when none is stored.
func (p *Profile) DisplayName() string {
	if p == nil || p.FullName == nil {
		return ""
	}
	return strings.TrimSpace(*p.FullName)
}
