package calculator

import (
	"fmt"
	"time"

	"EuriborChart/internal/model"
)

// CalculateAverageRates computes, for every calendar day from the earliest to
// the latest observation date across all tenors, a forward realized average
// rate per tenor.
//
// For a day d and a tenor with nominal period P, the series is sampled at
// d, d+P, d+2P, ... within a window of windowDays days (shrunk near the end of
// the data so it never looks past it). Each sampled rate is weighted by the
// number of days it nominally covers, clipped at the data horizon. A day with
// no sampled observation averages to exactly 0.0.
func CalculateAverageRates(set model.SeriesSet, windowDays int) (*model.AveragedSeries, error) {
	for _, t := range model.AllTenors {
		if len(set[t]) == 0 {
			return nil, fmt.Errorf("series %s is empty", t)
		}
	}

	start, end := dateSpan(set)

	var lookups [model.NumTenors]map[time.Time]float64
	for _, t := range model.AllTenors {
		lookups[t] = make(map[time.Time]float64, len(set[t]))
		for _, obs := range set[t] {
			lookups[t][obs.Date] = obs.Rate
		}
	}

	values := make([][model.NumTenors]float64, 0, daysBetween(start, end)+1)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		var row [model.NumTenors]float64

		remaining := daysBetween(d, end) + 1
		window := windowDays
		if remaining < window {
			window = remaining
		}
		limit := d.AddDate(0, 0, window-1)

		for _, t := range model.AllTenors {
			period := t.PeriodDays()
			sum := 0.0
			totalDays := 0

			for c := d; !c.After(limit); c = c.AddDate(0, 0, period) {
				rate, ok := lookups[t][c]
				if !ok {
					continue
				}
				weight := period
				if left := daysBetween(c, end) + 1; left < weight {
					weight = left
				}
				sum += rate * float64(weight)
				totalDays += weight
			}

			if totalDays > 0 {
				row[t] = sum / float64(totalDays)
			}
		}

		values = append(values, row)
	}

	return &model.AveragedSeries{
		Start:    start,
		Values:   values,
		TimeMark: end.AddDate(0, 0, -windowDays),
	}, nil
}

// dateSpan returns the earliest first-observation date and the latest
// last-observation date across all tenors. All series must be non-empty.
func dateSpan(set model.SeriesSet) (start, end time.Time) {
	for i, s := range set {
		first := s[0].Date
		last := s[len(s)-1].Date
		if i == 0 || first.Before(start) {
			start = first
		}
		if i == 0 || last.After(end) {
			end = last
		}
	}
	return start, end
}

// daysBetween returns whole calendar days from a to b. Dates are parsed at
// UTC midnight, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
