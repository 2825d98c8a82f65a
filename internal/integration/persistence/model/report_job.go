// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/domain/entity"
)

// ReportJobModel represents the report_queue table in the database.
type ReportJobModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	SessionID      string       `gorm:"type:varchar(20);not null"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	Subject        string       `gorm:"type:varchar(500);not null"`
	ReportMarkdown string       `gorm:"type:text;not null"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending'"`
	Attempts       int          `gorm:"not null;default:0"`
	LastError      string       `gorm:"type:text"`
	CreatedAt      time.Time    `gorm:"not null"`
	UpdatedAt      time.Time    `gorm:"not null"`
	SentAt         sql.NullTime `gorm:"type:timestamptz"`
}

// TableName returns the table name for the ReportJobModel.
func (ReportJobModel) TableName() string {
	return "report_queue"
}

// ToEntity converts a ReportJobModel to a domain ReportJob entity.
func (m *ReportJobModel) ToEntity() *entity.ReportJob {
	var sentAt *time.Time
	if m.SentAt.Valid {
		sentAt = &m.SentAt.Time
	}

	return &entity.ReportJob{
		ID:             m.ID,
		SessionID:      m.SessionID,
		To:             m.RecipientEmail,
		Subject:        m.Subject,
		ReportMarkdown: m.ReportMarkdown,
		Status:         entity.ReportJobStatus(m.Status),
		Attempts:       m.Attempts,
		LastError:      m.LastError,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		SentAt:         sentAt,
	}
}

// ReportJobModelFromEntity converts a domain ReportJob entity to a ReportJobModel.
func ReportJobModelFromEntity(job *entity.ReportJob) *ReportJobModel {
	sentAt := sql.NullTime{}
	if job.SentAt != nil {
		sentAt = sql.NullTime{Time: *job.SentAt, Valid: true}
	}

	return &ReportJobModel{
		ID:             job.ID,
		SessionID:      job.SessionID,
		RecipientEmail: job.To,
		Subject:        job.Subject,
		ReportMarkdown: job.ReportMarkdown,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		LastError:      job.LastError,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
		SentAt:         sentAt,
	}
}
