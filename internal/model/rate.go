package model

import "time"

// Observation is a single dated rate quote. Immutable once created.
type Observation struct {
	Date time.Time
	Rate float64 // percentage points, e.g. 3.25
}

// Series is the ordered daily history for one tenor, non-decreasing by date.
// It is built once by the loader and never mutated afterwards.
type Series []Observation

// First returns the earliest observation, or false for an empty series.
func (s Series) First() (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[0], true
}

// Last returns the latest observation, or false for an empty series.
func (s Series) Last() (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[len(s)-1], true
}

// SeriesSet holds one loaded Series per tenor, indexed by Tenor.
type SeriesSet [NumTenors]Series

// AveragedSeries holds one forward realized average value per tenor for every
// calendar day from Start through Start+len(Values)-1 days, inclusive.
type AveragedSeries struct {
	Start    time.Time
	Values   [][NumTenors]float64
	TimeMark time.Time // end date minus the averaging window
}

// Len returns the number of covered calendar days.
func (a *AveragedSeries) Len() int {
	return len(a.Values)
}

// Day returns the calendar date of row i.
func (a *AveragedSeries) Day(i int) time.Time {
	return a.Start.AddDate(0, 0, i)
}
