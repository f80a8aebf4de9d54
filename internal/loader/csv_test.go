package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"EuriborChart/internal/model"
)

// writeCSV writes a Bundesbank-style file: 9 metadata lines, then the given rows.
func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteString("metadata line,ignored\n")
	}
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "rates.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestLoadParsesRates(t *testing.T) {
	path := writeCSV(t,
		"2024-01-01,3.5",
		"2024-01-02,3.6",
		"2024-01-03,3.7",
	)
	series, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(series))
	}
	if !series[0].Date.Equal(date(t, "2024-01-01")) || series[0].Rate != 3.5 {
		t.Errorf("unexpected first observation: %+v", series[0])
	}
	if series[2].Rate != 3.7 {
		t.Errorf("unexpected last rate: %v", series[2].Rate)
	}
}

func TestLoadCarriesForwardLastValidRate(t *testing.T) {
	path := writeCSV(t,
		"2024-01-01,1.0",
		"2024-01-02,.",
		"2024-01-03,",
		"2024-01-04,No value available",
		"2024-01-05,garbage",
		"2024-01-08,2.0",
	)
	series, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1.0, 1.0, 1.0, 1.0, 1.0, 2.0}
	if len(series) != len(want) {
		t.Fatalf("expected %d observations, got %d", len(want), len(series))
	}
	for i, w := range want {
		if series[i].Rate != w {
			t.Errorf("observation %d: expected rate %v, got %v", i, w, series[i].Rate)
		}
	}
}

func TestLoadDropsRowsBeforeFirstValidRate(t *testing.T) {
	path := writeCSV(t,
		"2024-01-01,.",
		"2024-01-02,no value",
		"2024-01-03,2.5",
	)
	series, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(series))
	}
	if !series[0].Date.Equal(date(t, "2024-01-03")) {
		t.Errorf("unexpected date: %v", series[0].Date)
	}
}

func TestLoadSkipsShortLinesWithoutTouchingState(t *testing.T) {
	path := writeCSV(t,
		"2024-01-01,4.0",
		"lonely field",
		"2024-01-02,.",
	)
	series, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(series))
	}
	if series[1].Rate != 4.0 {
		t.Errorf("expected carried-forward rate 4.0, got %v", series[1].Rate)
	}
}

func TestLoadIgnoresExtraColumns(t *testing.T) {
	path := writeCSV(t, "2024-01-01,2.75,some,extra,columns")
	series, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 || series[0].Rate != 2.75 {
		t.Fatalf("unexpected result: %+v", series)
	}
}

func TestLoadMalformedDateIsParseError(t *testing.T) {
	path := writeCSV(t,
		"2024-01-01,1.0",
		"2024-13-40,1.1",
	)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestLoadMissingFileIsFileError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrFile) {
		t.Errorf("expected ErrFile, got %v", err)
	}
}

func TestLoadEmptyResultIsEmptyDataError(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"preamble only", nil},
		{"all sentinels", []string{"2024-01-01,.", "2024-01-02,no value"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCSV(t, tc.rows...)
			_, err := Load(path)
			if !errors.Is(err, ErrEmpty) {
				t.Errorf("expected ErrEmpty, got %v", err)
			}
		})
	}
}

func TestLoadAllFillsEveryTenorInOrder(t *testing.T) {
	dir := t.TempDir()
	var names [model.NumTenors]string
	for _, tn := range model.AllTenors {
		name := tn.Spec().Code + ".csv"
		content := "p1\np2\np3\np4\np5\np6\np7\np8\np9\n2024-01-01," +
			"1." + strings.Repeat("0", int(tn)+1) + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		names[tn] = name
	}

	set, err := LoadAll(dir, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tn := range model.AllTenors {
		if len(set[tn]) != 1 {
			t.Errorf("tenor %s: expected 1 observation, got %d", tn, len(set[tn]))
		}
	}
}

func TestLoadAllAbortsOnFirstMissingFile(t *testing.T) {
	dir := t.TempDir()
	var names [model.NumTenors]string
	for _, tn := range model.AllTenors {
		names[tn] = tn.Spec().Code + ".csv"
	}
	// Only the 1w file exists; loading must fail on the 1m file.
	content := strings.Repeat("meta\n", 9) + "2024-01-01,1.0\n"
	if err := os.WriteFile(filepath.Join(dir, names[model.Tenor1W]), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := LoadAll(dir, names)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrFile) {
		t.Errorf("expected ErrFile, got %v", err)
	}
	if !strings.Contains(err.Error(), names[model.Tenor1M]) {
		t.Errorf("error should name the offending file, got %v", err)
	}
}
