package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QCAppointment schedules an inspection for a customer's order.
type QCAppointment struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"column:user_id;type:uuid;not null"`
	OrderID     *uuid.UUID `gorm:"column:order_id;type:uuid"`
	Status      string     `gorm:"column:status;not null"`
	ScheduledAt *time.Time `gorm:"column:scheduled_at"`
	Profile     *Profile   `gorm:"foreignKey:UserID;references:ID"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (QCAppointment) TableName() string { return "qc_appointments" }

// QCReport is the outcome of an inspection.
type QCReport struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	AppointmentID uuid.UUID      `gorm:"column:appointment_id;type:uuid;not null"`
	OrderID       uuid.UUID      `gorm:"column:order_id;type:uuid;not null"`
	Passed        bool           `gorm:"column:passed;not null"`
	OverallRating *int           `gorm:"column:overall_rating"`
	OverallNotes  *string        `gorm:"column:overall_notes"`
	ImageURLs     pq.StringArray `gorm:"column:images_urls;type:text[]"`
	Appointment   *QCAppointment `gorm:"foreignKey:AppointmentID;references:ID"`
	Order         *Order         `gorm:"foreignKey:OrderID;references:ID"`
	Answers       []QCAnswer     `gorm:"foreignKey:ReportID;references:ID"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (QCReport) TableName() string { return "qc_reports" }

// QCAnswer is an inspector's response to one checklist question.
type QCAnswer struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ReportID     uuid.UUID `gorm:"column:report_id;type:uuid;not null"`
	QuestionText string    `gorm:"column:question_text;not null"`
	AnswerValue  *string   `gorm:"column:answer_value"`
	Rating       *int      `gorm:"column:rating"`
	Notes        *string   `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (QCAnswer) TableName() string { return "qc_answers" }
