package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finova/backend/internal/domain/entity"
)

// InteractionModel represents the interactions table in the database. Only
// masked, aggregate-friendly fields are stored; raw message text never
// reaches this table.
type InteractionModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MaskedSessionID string         `gorm:"type:varchar(20);not null;index"`
	Intent          string         `gorm:"type:varchar(20);not null;index"`
	Sentiment       string         `gorm:"type:varchar(10);not null"`
	UserType        string         `gorm:"type:varchar(20)"`
	GoalTags        pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the InteractionModel.
func (InteractionModel) TableName() string {
	return "interactions"
}

// ToEntity converts an InteractionModel to a domain Interaction entity.
func (m *InteractionModel) ToEntity() *entity.Interaction {
	return &entity.Interaction{
		ID:              m.ID,
		MaskedSessionID: m.MaskedSessionID,
		Intent:          entity.Intent(m.Intent),
		Sentiment:       entity.Sentiment(m.Sentiment),
		UserType:        entity.UserType(m.UserType),
		GoalTags:        []string(m.GoalTags),
		CreatedAt:       m.CreatedAt,
	}
}

// InteractionModelFromEntity converts a domain Interaction entity to an InteractionModel.
func InteractionModelFromEntity(interaction *entity.Interaction) *InteractionModel {
	return &InteractionModel{
		ID:              interaction.ID,
		MaskedSessionID: interaction.MaskedSessionID,
		Intent:          string(interaction.Intent),
		Sentiment:       string(interaction.Sentiment),
		UserType:        string(interaction.UserType),
		GoalTags:        pq.StringArray(interaction.GoalTags),
		CreatedAt:       interaction.CreatedAt,
	}
}
