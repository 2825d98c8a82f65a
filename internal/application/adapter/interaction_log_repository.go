package adapter

import (
	"context"

	"github.com/finova/backend/internal/domain/entity"
)

// InteractionLogRepository persists privacy-masked interaction records.
type InteractionLogRepository interface {
	// Record stores one interaction.
	Record(ctx context.Context, interaction *entity.Interaction) error

	// CountByIntent returns the number of recorded interactions per intent.
	CountByIntent(ctx context.Context) (map[entity.Intent]int64, error)
}
