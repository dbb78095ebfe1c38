package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

var errNoScreen = errors.New("no screen selected, use 'screen <name>'")

func (a *App) screen() (listview.Screen, error) {
	if a.current == nil {
		return nil, errNoScreen
	}
	return a.current, nil
}

func (a *App) listScreens() {
	for _, name := range a.registry.Names() {
		mark := " "
		if a.current != nil && a.current.Name() == name {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, name)
	}
}

// openScreen makes the named screen current and loads it. A screen keeps
// its filters when reopened.
func (a *App) openScreen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: screen <name>")
	}
	s, ok := a.registry.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown screen %q, see 'screens'", args[0])
	}
	a.current = s

	f := s.Filters()
	if f.PageSize == 0 {
		f.PageSize = a.config.PageSize
	}
	return a.fetch(ctx, s, f)
}

func (a *App) fetch(ctx context.Context, s listview.Screen, f models.FilterState) error {
	if err := s.Load(ctx, a.ac, f); err != nil {
		return err
	}
	return a.show()
}

func (a *App) load(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	f := s.Filters()
	f.Page = 0
	return a.fetch(ctx, s, f)
}

// setDate changes the from/to bound used by the next load.
func (a *App) setDate(which string, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <YYYY-MM-DD|->", which)
	}

	value := args[0]
	if value == "-" {
		value = ""
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return fmt.Errorf("bad date %q, want YYYY-MM-DD", args[0])
	}

	f := s.Filters()
	if which == "from" {
		f.From = d
	} else {
		f.To = d
	}
	s.SetFilters(f)
	fmt.Fprintln(a.out, "Filter set, use 'load' to fetch.")
	return nil
}

func (a *App) setFilter(args []string, set func(f *models.FilterState, v string)) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: <value|->")
	}

	value := args[0]
	if value == "-" {
		value = ""
	}
	f := s.Filters()
	set(&f, value)
	s.SetFilters(f)
	fmt.Fprintln(a.out, "Filter set, use 'load' to fetch.")
	return nil
}

// find narrows the loaded rows without a request.
func (a *App) find(args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	f := s.Filters()
	f.SetQuery(strings.Join(args, " "))
	s.SetFilters(f)
	return a.show()
}

func (a *App) page(ctx context.Context, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	n, err := positiveArg(args, "page <n>")
	if err != nil {
		return err
	}

	f := s.Filters()
	if pages := listview.PageCount(s.Total(), f.PageSize); pages > 0 && n > pages {
		return fmt.Errorf("page %d out of range, %d pages", n, pages)
	}
	f.Page = n - 1
	if s.ServerPaging() {
		return a.fetch(ctx, s, f)
	}
	s.SetFilters(f)
	return a.show()
}

func (a *App) size(ctx context.Context, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	n, err := positiveArg(args, "size <n>")
	if err != nil {
		return err
	}

	f := s.Filters()
	f.PageSize = n
	f.Page = 0
	if s.ServerPaging() {
		return a.fetch(ctx, s, f)
	}
	s.SetFilters(f)
	return a.show()
}

func positiveArg(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("usage: %s, n >= 1", usage)
	}
	return n, nil
}

// show prints the visible page of the current screen.
func (a *App) show() error {
	s, err := a.screen()
	if err != nil {
		return err
	}

	if err := s.LastError(); err != nil {
		fmt.Fprintf(a.out, "Last load failed (%v), showing previous rows.\n", err)
	}

	t := s.Table()
	if len(t.Rows) == 0 {
		fmt.Fprintln(a.out, "No records.")
	} else if err := renderTable(a.out, t); err != nil {
		return err
	}

	f := s.Filters()
	total := s.Total()
	if pages := listview.PageCount(total, f.PageSize); pages > 0 {
		fmt.Fprintf(a.out, "Page %d of %d, %d records\n", f.Page+1, pages, total)
	} else {
		fmt.Fprintf(a.out, "%d records\n", total)
	}
	return nil
}
