package loader

import (
	"fmt"
	"log"
	"path/filepath"

	"EuriborChart/internal/model"
)

// LoadAll loads one series per tenor from dir, in tenor order, aborting on the
// first failure. names must hold one filename per tenor, in the same order.
func LoadAll(dir string, names [model.NumTenors]string) (model.SeriesSet, error) {
	var set model.SeriesSet
	for _, t := range model.AllTenors {
		path := filepath.Join(dir, names[t])
		log.Printf("[INFO] reading %s...", path)

		series, err := Load(path)
		if err != nil {
			return model.SeriesSet{}, fmt.Errorf("load %s series: %w", t, err)
		}

		first, _ := series.First()
		last, _ := series.Last()
		log.Printf("[INFO] %s: %d records, %s (%.3f) .. %s (%.3f)",
			t, len(series),
			first.Date.Format(dateLayout), first.Rate,
			last.Date.Format(dateLayout), last.Rate)

		set[t] = series
	}
	return set, nil
}
