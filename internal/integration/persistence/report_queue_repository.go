package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/integration/persistence/model"
)

// reportQueueRepository implements the adapter.ReportQueueRepository interface.
type reportQueueRepository struct {
	db *gorm.DB
}

// NewReportQueueRepository creates a new report queue repository instance.
func NewReportQueueRepository(db *gorm.DB) adapter.ReportQueueRepository {
	return &reportQueueRepository{
		db: db,
	}
}

// Enqueue stores a new pending job.
func (r *reportQueueRepository) Enqueue(ctx context.Context, job *entity.ReportJob) error {
	jobModel := model.ReportJobModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeQueueFailure,
			"failed to enqueue report job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs returns up to limit pending jobs, oldest first.
func (r *reportQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error) {
	var models []model.ReportJobModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.ReportJobPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReportJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}
	return jobs, nil
}

// Update persists job state changes.
func (r *reportQueueRepository) Update(ctx context.Context, job *entity.ReportJob) error {
	jobModel := model.ReportJobModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	return result.Error
}

// FindByID retrieves a job by ID.
func (r *reportQueueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReportJob, error) {
	var jobModel model.ReportJobModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("report job %s not found", id)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}
