package domain

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportCSV  ExportFormat = "csv"
)

// ValidExportFormats is the canonical set of accepted export format strings.
var ValidExportFormats = map[string]bool{
	"json": true, "yaml": true, "csv": true,
}
