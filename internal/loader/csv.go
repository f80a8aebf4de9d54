package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"EuriborChart/internal/model"
)

// Error kinds, distinguishable with errors.Is.
var (
	ErrFile  = errors.New("file unreadable")
	ErrParse = errors.New("parse failure")
	ErrEmpty = errors.New("no usable observations")
)

// Bundesbank CSV exports carry 9 lines of metadata before the data rows.
const preambleLines = 9

const dateLayout = "2006-01-02"

// Load parses one fixed-layout Bundesbank CSV file into a Series.
// Missing rates (".", empty, "no value") and unparsable rates reuse the last
// valid rate; rows before the first valid rate are dropped.
func Load(path string) (model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrFile, path, err)
	}
	defer f.Close()

	series, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

func parse(r io.Reader) (model.Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var series model.Series
	var lastValid float64
	var haveValid bool

	for line := 0; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line+1, err)
		}
		if line < preambleLines {
			continue
		}
		if len(record) < 2 {
			continue
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad date %q", ErrParse, line+1, record[0])
		}

		raw := strings.TrimSpace(record[1])
		if isSentinel(raw) {
			if haveValid {
				series = append(series, model.Observation{Date: date, Rate: lastValid})
			}
			continue
		}
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if haveValid {
				series = append(series, model.Observation{Date: date, Rate: lastValid})
			}
			continue
		}
		lastValid, haveValid = rate, true
		series = append(series, model.Observation{Date: date, Rate: rate})
	}

	if len(series) == 0 {
		return nil, ErrEmpty
	}
	return series, nil
}

func isSentinel(s string) bool {
	return s == "." || s == "" || strings.Contains(strings.ToLower(s), "no value")
}
