package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	"github.com/finova/backend/internal/integration/persistence/model"
)

// interactionRepository implements the adapter.InteractionLogRepository interface.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository instance.
func NewInteractionRepository(db *gorm.DB) adapter.InteractionLogRepository {
	return &interactionRepository{
		db: db,
	}
}

// Record stores one interaction.
func (r *interactionRepository) Record(ctx context.Context, interaction *entity.Interaction) error {
	interactionModel := model.InteractionModelFromEntity(interaction)
	result := r.db.WithContext(ctx).Create(interactionModel)
	return result.Error
}

// CountByIntent returns the number of recorded interactions per intent.
func (r *interactionRepository) CountByIntent(ctx context.Context) (map[entity.Intent]int64, error) {
	var rows []struct {
		Intent string
		Count  int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.InteractionModel{}).
		Select("intent, count(*) as count").
		Group("intent").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[entity.Intent]int64, len(rows))
	for _, row := range rows {
		counts[entity.Intent(row.Intent)] = row.Count
	}
	return counts, nil
}
