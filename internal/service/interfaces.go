package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/importer"
)

// TimerService is the session engine: it owns the idle/running state of
// one timer and keeps it in step with the store.
type TimerService interface {
	Resume(ctx context.Context) (app.TimerStatus, error)
	Start(ctx context.Context) (*domain.Session, error)
	Stop(ctx context.Context) (*domain.Session, error)
	Elapsed() time.Duration
	Status() app.TimerStatus
}

// ReportService folds stored sessions into duration summaries.
type ReportService interface {
	Summarize(ctx context.Context, req app.SummaryRequest) (*app.SummaryResponse, error)
	Today(ctx context.Context, loc *time.Location) (*app.SummaryResponse, error)
}

// SessionService manages stored sessions outside the timer lifecycle.
type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Resolve(ctx context.Context, ref string) (*domain.Session, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Session, error)
	Delete(ctx context.Context, ref string) (*domain.Session, error)
}

type ImportService interface {
	ImportLegacy(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportLegacyDocument(ctx context.Context, doc *importer.LegacyDocument) (*app.ImportResult, error)
}

var (
	_ app.TimerUseCase        = (TimerService)(nil)
	_ app.SummaryUseCase      = (ReportService)(nil)
	_ app.ImportLegacyUseCase = (ImportService)(nil)
)
