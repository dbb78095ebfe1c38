package listview

import (
	"github.com/dmitrijs2005/geeksadmin/internal/client/export"
)

// Table is a rendered page: the record id followed by the configured
// columns.
type Table struct {
	Header []string
	Rows   [][]string
}

func (v *View[R]) Table() Table {
	t := Table{Header: append([]string{"ID"}, v.labels()...)}
	for _, r := range v.Visible() {
		row := make([]string, 0, len(v.cfg.Columns)+1)
		row = append(row, v.cfg.ID(r))
		for _, c := range v.cfg.Columns {
			if c.Display != nil {
				row = append(row, c.Display(r))
			} else {
				row = append(row, c.Value(r))
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Export renders every filtered row, not only the visible page.
func (v *View[R]) Export() export.Blob {
	filtered := v.Filtered()
	rows := make([][]string, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, v.values(r))
	}
	return export.NewBlob(v.cfg.ExportName, v.labels(), rows)
}

func (v *View[R]) labels() []string {
	out := make([]string, len(v.cfg.Columns))
	for i, c := range v.cfg.Columns {
		out[i] = c.Label
	}
	return out
}

func (v *View[R]) values(r R) []string {
	out := make([]string, len(v.cfg.Columns))
	for i, c := range v.cfg.Columns {
		out[i] = c.Value(r)
	}
	return out
}
