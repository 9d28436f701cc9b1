package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/db"
	"github.com/alexanderramin/gktimer/internal/importer"
	"github.com/alexanderramin/gktimer/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService returns an importer that writes legacy sessions in a
// single transaction. Sessions whose ID is already stored are skipped, so
// running the import twice is harmless.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportLegacy(ctx context.Context, filePath string) (*app.ImportResult, error) {
	doc, err := importer.LoadLegacyDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading legacy file: %w", err)
	}
	return s.ImportLegacyDocument(ctx, doc)
}

func (s *importService) ImportLegacyDocument(ctx context.Context, doc *importer.LegacyDocument) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"sessions": len(doc.Sessions)}
	defer func() { observe(ctx, s.observer, "import-legacy", startedAt, err, fields) }()

	if errs := importer.ValidateLegacyDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	sessions := importer.Convert(doc)

	res := &app.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		for _, session := range sessions {
			_, getErr := repo.GetByID(ctx, session.ID)
			if getErr == nil {
				res.Skipped++
				continue
			}
			if !errors.Is(getErr, repository.ErrNotFound) {
				return getErr
			}

			if insertErr := repo.Insert(ctx, session); insertErr != nil {
				if errors.Is(insertErr, repository.ErrActiveSessionExists) {
					return app.NewError(app.ErrCodeActiveSessionExists,
						fmt.Sprintf("legacy session %s is running but the timer is already running", session.ID), insertErr)
				}
				return insertErr
			}
			res.Imported++
			if session.IsActive() {
				res.Open++
			}
		}
		return nil
	})
	if err != nil {
		if app.ErrorCodeOf(err) == "" {
			err = app.PersistenceError("importing legacy sessions", err)
		}
		return nil, err
	}

	fields["imported"] = res.Imported
	fields["skipped"] = res.Skipped
	return res, nil
}
