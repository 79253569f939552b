package emission

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/model"
)

// ErrUnmatchedFactor is returned by Strict when a report contains entries
// whose discriminant matched no catalog factor.
var ErrUnmatchedFactor = eris.New("emission: unmatched emission factor")

// Aggregate computes every entry of every category and returns the totals and
// the per-category detail breakdown. Details keep insertion order and drop
// non-positive contributions; totals sum all contributions. Aggregate does not
// modify entries and returns the same report for the same input.
func (c *Calculator) Aggregate(entries model.Entries) model.Report {
	report := model.Report{
		Details: make(map[model.Category][]model.Detail, len(model.Categories())),
	}

	for _, cat := range model.Categories() {
		var sum float64
		details := []model.Detail{}
		for i, item := range entries.Items(cat) {
			d := c.Calculate(item)
			sum += d.CO2e
			if d.CO2e > 0 {
				details = append(details, d)
			}

			if r := c.resolve(item); r.looked && !r.found {
				report.Unmatched = append(report.Unmatched, model.Miss{Category: cat, Index: i, Key: r.key})
			}
		}
		report.Details[cat] = details
		report.Totals.Set(cat, sum)
		report.Totals.GrandTotal += sum
	}

	return report
}

// Strict returns ErrUnmatchedFactor wrapped with the offending keys when the
// report recorded any catalog miss.
func Strict(report model.Report) error {
	if len(report.Unmatched) == 0 {
		return nil
	}
	keys := make([]string, 0, len(report.Unmatched))
	for _, m := range report.Unmatched {
		keys = append(keys, fmt.Sprintf("%s[%d] %q", m.Category, m.Index, m.Key))
	}
	return eris.Wrapf(ErrUnmatchedFactor, "%s", strings.Join(keys, ", "))
}

// Series is the chart grouping of one category: labels in first-seen order and
// their summed contributions.
type Series struct {
	Category model.Category     `json:"category"`
	Labels   []string           `json:"labels"`
	Values   map[string]float64 `json:"values"`
}

// ChartSeries groups the detail breakdown by label for stacked charts.
// Categories without details are omitted.
func ChartSeries(report model.Report) []Series {
	var out []Series
	for _, cat := range model.Categories() {
		details := report.Details[cat]
		if len(details) == 0 {
			continue
		}
		s := Series{Category: cat, Values: make(map[string]float64, len(details))}
		for _, d := range details {
			if _, ok := s.Values[d.Label]; !ok {
				s.Labels = append(s.Labels, d.Label)
			}
			s.Values[d.Label] += d.CO2e
		}
		out = append(out, s)
	}
	return out
}
