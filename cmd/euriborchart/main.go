package main

import (
	"bytes"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"EuriborChart/internal/calculator"
	"EuriborChart/internal/chart"
	"EuriborChart/internal/config"
	"EuriborChart/internal/loader"
	"EuriborChart/internal/model"
	"EuriborChart/internal/recorder"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] euriborchart starting...")

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	windowDays := windowArg(os.Args[1:], cfg.Average.DefaultWindowDays)
	runID := uuid.NewString()
	started := time.Now()
	log.Printf("[INFO] run %s: averaging window %d days", runID, windowDays)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	log.Println("[INFO] reading CSV files...")
	set, err := loader.LoadAll(cfg.Data.Dir, cfg.FileNames())
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	log.Printf("[INFO] calculating average rates for the forward period of %d days...", windowDays)
	avg, err := calculator.CalculateAverageRates(set, windowDays)
	if err != nil {
		log.Fatalf("[FATAL] average rates: %v", err)
	}

	log.Println("[INFO] creating chart...")
	traces := chart.BuildTraces(set, avg, windowDays)

	// Render into memory first so a template failure leaves no partial file.
	var buf bytes.Buffer
	if err := chart.Render(&buf, traces, windowDays); err != nil {
		log.Fatalf("[FATAL] render chart: %v", err)
	}
	if err := os.WriteFile(cfg.Output.HTMLPath, buf.Bytes(), 0644); err != nil {
		log.Fatalf("[FATAL] write %s: %v", cfg.Output.HTMLPath, err)
	}

	sum := &model.RunSummary{
		RunID:      runID,
		WindowDays: windowDays,
		Start:      avg.Start,
		End:        avg.Day(avg.Len() - 1),
		OutputPath: cfg.Output.HTMLPath,
		Elapsed:    time.Since(started),
	}
	for _, t := range model.AllTenors {
		sum.Counts[t] = len(set[t])
	}
	if err := rec.RecordRun(sum); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}

	log.Printf("[INFO] chart created successfully: %s", cfg.Output.HTMLPath)
}

// windowArg returns the first positional argument as a day count. Absent or
// non-numeric values fall back to the default.
func windowArg(args []string, def int) int {
	if len(args) == 0 {
		return def
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return def
	}
	return n
}
