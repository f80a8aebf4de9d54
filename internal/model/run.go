package model

import "time"

// RunSummary captures diagnostics for one report generation run.
type RunSummary struct {
	RunID      string
	WindowDays int
	Start      time.Time
	End        time.Time
	Counts     [NumTenors]int // loaded observations per tenor
	OutputPath string
	Elapsed    time.Duration
}
