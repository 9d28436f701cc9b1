package app

import (
	"context"
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
)

type TimerUseCase interface {
	Resume(ctx context.Context) (TimerStatus, error)
	Start(ctx context.Context) (*domain.Session, error)
	Stop(ctx context.Context) (*domain.Session, error)
	Elapsed() time.Duration
	Status() TimerStatus
}

type SummaryUseCase interface {
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

type ImportResult struct {
	Imported int
	Skipped  int
	Open     int
}

type ImportLegacyUseCase interface {
	ImportLegacy(ctx context.Context, filePath string) (*ImportResult, error)
}
