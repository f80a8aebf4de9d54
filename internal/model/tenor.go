package model

// Tenor identifies one Euribor instrument term. The iteration order of
// AllTenors is fixed and significant throughout the pipeline.
type Tenor int

const (
	Tenor1W Tenor = iota
	Tenor1M
	Tenor3M
	Tenor6M
	Tenor12M
)

// NumTenors is the number of tracked Euribor tenors.
const NumTenors = 5

// AllTenors lists every tenor in pipeline order, shortest term first.
var AllTenors = [NumTenors]Tenor{Tenor1W, Tenor1M, Tenor3M, Tenor6M, Tenor12M}

// TenorSpec holds the fixed properties of one tenor.
type TenorSpec struct {
	PeriodDays int    // nominal reset period in days
	Label      string // display label, e.g. "3m"
	Color      string // chart line color
	Code       string // Bundesbank series code, e.g. "M03"
}

var tenorSpecs = [NumTenors]TenorSpec{
	{PeriodDays: 7, Label: "1w", Color: "#1f77b4", Code: "W01"},
	{PeriodDays: 30, Label: "1m", Color: "#ff7f0e", Code: "M01"},
	{PeriodDays: 90, Label: "3m", Color: "#2ca02c", Code: "M03"},
	{PeriodDays: 180, Label: "6m", Color: "#d62728", Code: "M06"},
	{PeriodDays: 360, Label: "12m", Color: "#9467bd", Code: "M12"},
}

// Spec returns the fixed properties of the tenor.
func (t Tenor) Spec() TenorSpec {
	return tenorSpecs[t]
}

// PeriodDays returns the tenor's nominal reset period in days.
func (t Tenor) PeriodDays() int {
	return tenorSpecs[t].PeriodDays
}

func (t Tenor) String() string {
	return tenorSpecs[t].Label
}
