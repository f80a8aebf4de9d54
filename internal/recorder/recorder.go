package recorder

import "EuriborChart/internal/model"

// Recorder persists run diagnostics for later inspection.
type Recorder interface {
	RecordRun(sum *model.RunSummary) error
	Close() error
}
