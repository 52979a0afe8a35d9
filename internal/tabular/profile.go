package tabular

// ColumnProfile summarizes one column of a dataset.
type ColumnProfile struct {
	Name        string  `json:"name"`
	NonEmpty    int     `json:"non_empty"`
	MissingPct  float64 `json:"missing_pct"`
	Distinct    int     `json:"distinct"`
	SingleValue string  `json:"single_value,omitempty"`
}

// Profile is a data-quality summary of a dataset: per-column fill rates and
// columns carrying a single repeated value, which are candidates for
// constant mappings instead of column mappings.
type Profile struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Profile computes the data-quality summary for the dataset.
func (d *Dataset) Profile() Profile {
	p := Profile{
		RowCount:    len(d.Rows),
		ColumnCount: len(d.Headers),
		Columns:     make([]ColumnProfile, 0, len(d.Headers)),
	}
	for _, h := range d.Headers {
		cp := ColumnProfile{Name: h}
		values := make(map[string]struct{})
		for _, row := range d.Rows {
			v := row.Get(h)
			if v == "" {
				continue
			}
			cp.NonEmpty++
			values[v] = struct{}{}
		}
		cp.Distinct = len(values)
		if len(d.Rows) > 0 {
			cp.MissingPct = 100 * float64(len(d.Rows)-cp.NonEmpty) / float64(len(d.Rows))
		}
		if cp.Distinct == 1 && cp.NonEmpty == len(d.Rows) {
			for v := range values {
				cp.SingleValue = v
			}
		}
		p.Columns = append(p.Columns, cp)
	}
	return p
}
