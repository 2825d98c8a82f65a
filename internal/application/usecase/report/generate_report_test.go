package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/usecase/health"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo(sessions ...*entity.Session) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
	for _, s := range sessions {
		repo.sessions[s.ID] = s
	}
	return repo
}

func (r *fakeSessionRepo) Save(_ context.Context, session *entity.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	sess, ok := r.sessions[id]
	if !ok {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionNotFound,
			"session not found",
			domainerror.ErrSessionNotFound,
		)
	}
	return sess, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

type fakeReportQueue struct {
	jobs       []*entity.ReportJob
	enqueueErr error
}

func (q *fakeReportQueue) Enqueue(_ context.Context, job *entity.ReportJob) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeReportQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.ReportJob, error) {
	var pending []*entity.ReportJob
	for _, job := range q.jobs {
		if job.Status == entity.ReportJobPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *fakeReportQueue) Update(context.Context, *entity.ReportJob) error { return nil }

func (q *fakeReportQueue) FindByID(_ context.Context, id uuid.UUID) (*entity.ReportJob, error) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, errors.New("job not found")
}

func testCalculator() *health.Calculator {
	return health.NewCalculator(valueobject.AdvisorRules{
		EmergencyFundMonths:    6,
		TargetSavingsRate:      0.20,
		GoalCountForFullMarks:  5,
		DefaultBudgetThreshold: 0.10,
		BudgetThresholds:       map[string]float64{"Housing": 0.30},
	})
}

func sessionWithProfile() *entity.Session {
	sess := entity.NewSession()
	sess.Profile = &entity.Profile{
		Name:            "Alex",
		AnnualIncome:    decimal.NewFromInt(60000),
		SavingsBalance:  decimal.NewFromInt(18000),
		MonthlyExpenses: decimal.NewFromInt(3000),
		Goals:           []string{"retirement", "house"},
	}
	sess.Expenses = []*entity.Expense{
		entity.NewExpense("Housing", decimal.NewFromInt(1400), ""),
		entity.NewExpense("Food", decimal.NewFromInt(400), ""),
	}
	return sess
}

func TestGenerateReport(t *testing.T) {
	sess := sessionWithProfile()
	uc := NewGenerateReportUseCase(newFakeSessionRepo(sess), testCalculator())

	out, err := uc.Execute(context.Background(), GenerateReportInput{SessionID: sess.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Financial Report",
		"Name: Alex",
		"Financial Health Score",
		"Emergency fund",
		"Housing: 1400.00",
		"## Recommendations",
	} {
		if !strings.Contains(out.Markdown, want) {
			t.Errorf("report missing %q:\n%s", want, out.Markdown)
		}
	}
	if out.Score == nil || out.Score.Total <= 0 {
		t.Errorf("expected a computed score, got %+v", out.Score)
	}
}

func TestGenerateReportRequiresProfile(t *testing.T) {
	sess := entity.NewSession()
	uc := NewGenerateReportUseCase(newFakeSessionRepo(sess), testCalculator())

	_, err := uc.Execute(context.Background(), GenerateReportInput{SessionID: sess.ID})
	if !errors.Is(err, domainerror.ErrReportNeedsProfile) {
		t.Errorf("error = %v, want ErrReportNeedsProfile", err)
	}
}

func TestQueueReportEmail(t *testing.T) {
	sess := sessionWithProfile()
	repo := newFakeSessionRepo(sess)
	queue := &fakeReportQueue{}
	uc := NewQueueReportEmailUseCase(NewGenerateReportUseCase(repo, testCalculator()), repo, queue)

	out, err := uc.Execute(context.Background(), QueueReportEmailInput{SessionID: sess.ID, To: "alex@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.ID != out.JobID {
		t.Errorf("JobID = %v, want %v", out.JobID, job.ID)
	}
	if job.Status != entity.ReportJobPending {
		t.Errorf("Status = %v, want pending", job.Status)
	}
	if job.To != "alex@example.com" {
		t.Errorf("To = %q", job.To)
	}
	if job.SessionID != sess.MaskedID() {
		t.Errorf("SessionID = %q, want the masked form %q", job.SessionID, sess.MaskedID())
	}
	if !strings.Contains(job.ReportMarkdown, "# Financial Report") {
		t.Error("job should carry the rendered report")
	}
}

func TestQueueReportEmailRejectsBadRecipient(t *testing.T) {
	sess := sessionWithProfile()
	repo := newFakeSessionRepo(sess)
	uc := NewQueueReportEmailUseCase(NewGenerateReportUseCase(repo, testCalculator()), repo, &fakeReportQueue{})

	for _, to := range []string{"", "not-an-email", "missing@domain@twice"} {
		_, err := uc.Execute(context.Background(), QueueReportEmailInput{SessionID: sess.ID, To: to})
		if !errors.Is(err, domainerror.ErrInvalidRecipient) {
			t.Errorf("recipient %q: error = %v, want ErrInvalidRecipient", to, err)
		}
	}
}

func TestQueueReportEmailQueueFailure(t *testing.T) {
	sess := sessionWithProfile()
	repo := newFakeSessionRepo(sess)
	queue := &fakeReportQueue{enqueueErr: errors.New("db down")}
	uc := NewQueueReportEmailUseCase(NewGenerateReportUseCase(repo, testCalculator()), repo, queue)

	_, err := uc.Execute(context.Background(), QueueReportEmailInput{SessionID: sess.ID, To: "alex@example.com"})
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeQueueFailure {
		t.Errorf("error = %v, want RPT queue failure", err)
	}
}
