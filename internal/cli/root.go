package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
	"github.com/alexanderramin/gktimer/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and display settings used by CLI commands.
type App struct {
	Timer    service.TimerService
	Reports  service.ReportService
	Sessions service.SessionService
	Import   service.ImportService

	Clock      domain.Clock
	Location   *time.Location
	Clock24h   bool
	LegacyFile string

	// IsInteractive reports whether stdin is a terminal. Prompts are only
	// shown when it returns true.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh confirmation form.
	Confirm func(title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now().In(a.location())
	}
	return a.Clock.Now().In(a.location())
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return confirmPrompt(title)
}

// NewRootCmd creates the top-level "gktimer" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gktimer",
		Short:         "Track work sessions and see where the time went",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(a),
		newStopCmd(a),
		newStatusCmd(a),
		newWatchCmd(a),
		newTodayCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newSessionCmd(a),
		newImportCmd(a),
	)

	return root
}

// ErrorMessage turns a command error into the line printed by main.
func ErrorMessage(err error) string {
	switch app.ErrorCodeOf(err) {
	case app.ErrCodeActiveSessionExists:
		return "a timer is already running; use `gktimer stop` to end it"
	case app.ErrCodeNoActiveSession:
		return "no timer is running; use `gktimer start` to begin one"
	case app.ErrCodeInvalidRange:
		var e *app.Error
		errors.As(err, &e)
		return "invalid range: " + e.Message
	}
	switch {
	case errors.Is(err, repository.ErrAmbiguousID):
		return fmt.Sprintf("%v; use more characters of the id", err)
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Sprintf("%v; see `gktimer session list`", err)
	}
	return err.Error()
}
