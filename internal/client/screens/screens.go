// Package screens declares every admin screen as a configuration of
// listview.View and collects them in a Registry for the console.
package screens

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
)

const (
	Categories          = "categories"
	Subcategories       = "subcategories"
	SubcategoriesLegacy = "subcategories-legacy"
	Geeks               = "geeks"
	GeeksReferral       = "geeks-referral"
	Requests            = "requests"
	Logins              = "logins"
	Banners             = "banners"
)

// Display layouts.
const (
	dayLayout     = "02-01-2006"
	dayTimeLayout = "02-01-2006 - 15:04"
	requestLayout = "02 Jan 2006, 03:04 PM"
)

type Options struct {
	Client client.Client
	Log    logging.Logger
	// Location timestamps are shown in. Defaults to time.Local.
	Location *time.Location
}

func (o Options) format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}

// Registry holds one instance of every screen.
type Registry struct {
	screens map[string]listview.Screen
	order   []string
}

func New(opts Options) *Registry {
	r := &Registry{screens: map[string]listview.Screen{}}
	r.add(Categories, NewCategories(opts))
	r.add(Subcategories, NewSubcategories(opts))
	r.add(SubcategoriesLegacy, NewSubcategoriesLegacy(opts))
	r.add(Geeks, NewGeeks(opts))
	r.add(GeeksReferral, NewGeeksReferral(opts))
	r.add(Requests, NewRequests(opts))
	r.add(Logins, NewLogins(opts))
	r.add(Banners, NewBanners(opts))
	return r
}

func (r *Registry) add(name string, s listview.Screen) {
	r.screens[name] = s
	r.order = append(r.order, name)
}

// Names lists the screens in menu order.
func (r *Registry) Names() []string { return slices.Clone(r.order) }

func (r *Registry) Get(name string) (listview.Screen, bool) {
	s, ok := r.screens[name]
	return s, ok
}
