package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"
)

// export saves every filtered row of the current screen to each sink.
func (a *App) export(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}

	blob := s.Export()
	for _, sink := range a.sinks {
		where, err := sink.Save(ctx, blob)
		if err != nil {
			return fmt.Errorf("export %s: %w", blob.Name, err)
		}
		a.log.Info(ctx, "exported", "screen", s.Name(), "to", where)
		fmt.Fprintln(a.out, "Exported to", where)
	}
	return nil
}

// Stats prints the dashboard counters. The date range of the current
// screen applies when one is open.
func (a *App) Stats(ctx context.Context) error {
	from, to := a.dateRange()
	st, err := a.stats.Summary(ctx, a.ac, from, to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Geekers\t%d\n", st.GeekerCount)
	fmt.Fprintf(tw, "Seekers\t%d\n", st.SeekerCount)
	fmt.Fprintf(tw, "Accepted requests\t%d\n", st.AcceptedCount)
	fmt.Fprintf(tw, "Pending requests\t%d\n", st.PendingCount)
	return tw.Flush()
}

func (a *App) dateRange() (from, to time.Time) {
	if a.current == nil {
		return time.Time{}, time.Time{}
	}
	f := a.current.Filters()
	return f.From, f.To
}
