package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/geeksadmin/internal/client/export"
	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
)

// renderTable writes t as aligned columns. Empty cells show as N/A.
func renderTable(w io.Writer, t listview.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			c = strings.Join(strings.Fields(c), " ")
			if c == "" {
				c = export.Missing
			}
			cells[i] = c
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
