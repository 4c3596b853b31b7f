package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/espressolab/storefront-backend/pkg/enums"
)

// Notification is the append-only audit row written after a notification email goes out.
type Notification struct {
	ID          uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	UserID      *uuid.UUID             `gorm:"column:user_id;type:uuid"`
	Type        enums.NotificationType `gorm:"column:type;type:text;not null"`
	Title       string                 `gorm:"column:title;type:text;not null"`
	Message     string                 `gorm:"column:message;type:text;not null"`
	ReferenceID uuid.UUID              `gorm:"column:reference_id;type:uuid;not null"`
	EmailSent   bool                   `gorm:"column:email_sent;not null;default:false"`
	IsRead      bool                   `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(*gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
