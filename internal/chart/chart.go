package chart

import (
	"fmt"
	"math"

	"EuriborChart/internal/model"
)

// Trace is one chart trace expressed as a library-agnostic nested map. The
// template injects its JSON serialization verbatim.
type Trace map[string]any

const dateLayout = "2006-01-02"

// BuildTraces produces, per tenor, a solid line for the averaged series and a
// dotted line for the raw daily observations, followed by a vertical marker at
// the averaged time mark spanning zero to the highest raw rate.
func BuildTraces(set model.SeriesSet, avg *model.AveragedSeries, windowDays int) []Trace {
	traces := make([]Trace, 0, 2*model.NumTenors+1)

	avgDates := make([]string, avg.Len())
	for i := range avgDates {
		avgDates[i] = avg.Day(i).Format(dateLayout)
	}

	for _, t := range model.AllTenors {
		spec := t.Spec()

		avgRates := make([]float64, avg.Len())
		for i, row := range avg.Values {
			avgRates[i] = row[t]
		}
		traces = append(traces, Trace{
			"x":    avgDates,
			"y":    avgRates,
			"type": "scattergl",
			"mode": "lines",
			"name": fmt.Sprintf("%s (%dd rlz avg)", spec.Label, windowDays),
			"line": map[string]any{
				"color": spec.Color,
				"width": 2,
			},
		})

		dailyDates := make([]string, len(set[t]))
		dailyRates := make([]float64, len(set[t]))
		for i, obs := range set[t] {
			dailyDates[i] = obs.Date.Format(dateLayout)
			dailyRates[i] = obs.Rate
		}
		traces = append(traces, Trace{
			"x":    dailyDates,
			"y":    dailyRates,
			"type": "scattergl",
			"mode": "lines",
			"name": fmt.Sprintf("%s (daily value)", spec.Label),
			"line": map[string]any{
				"color": spec.Color,
				"width": 1,
				"dash":  "dot",
			},
		})
	}

	mark := avg.TimeMark.Format(dateLayout)
	traces = append(traces, Trace{
		"x":    []string{mark, mark},
		"y":    []float64{0, maxRate(set)},
		"type": "scatter",
		"mode": "lines",
		"name": "Full forward data end point",
		"line": map[string]any{
			"color": "gray",
			"width": 1,
			"dash":  "dash",
		},
		"showlegend": true,
	})

	return traces
}

// maxRate returns the highest raw rate across all tenors.
func maxRate(set model.SeriesSet) float64 {
	max := math.Inf(-1)
	for _, series := range set {
		for _, obs := range series {
			if obs.Rate > max {
				max = obs.Rate
			}
		}
	}
	return max
}
