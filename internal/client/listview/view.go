package listview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
)

// View holds the fetched collection of one screen and its filter state.
// It is safe for concurrent use.
type View[R any] struct {
	cfg    Config[R]
	client client.Client
	log    logging.Logger

	mu       sync.Mutex
	rows     []R
	total    int
	filters  models.FilterState
	seq      uint64
	inflight int
	lastErr  error
	pending  string

	resync func(ctx context.Context, ac models.AuthContext, f models.FilterState) error
}

// New returns an empty view. It panics when cfg lacks Decode or ID.
func New[R any](cfg Config[R], c client.Client, log logging.Logger) *View[R] {
	if cfg.Decode == nil || cfg.ID == nil {
		panic("listview: config " + cfg.Name + " needs Decode and ID")
	}
	if cfg.Query == nil {
		cfg.Query = func(f models.FilterState) url.Values { return f.DateParams() }
	}
	return &View[R]{
		cfg:    cfg,
		client: c,
		log:    log.With("screen", cfg.Name),
	}
}

func (v *View[R]) Name() string       { return v.cfg.Name }
func (v *View[R]) ServerPaging() bool { return v.cfg.ServerPaging }
func (v *View[R]) Fields() []Field    { return slices.Clone(v.cfg.Fields) }
func (v *View[R]) CanCreate() bool    { return v.cfg.CreatePath != "" && v.cfg.Encode != nil }
func (v *View[R]) CanUpdate() bool    { return v.cfg.UpdatePath != nil && v.cfg.Encode != nil }
func (v *View[R]) CanDelete() bool    { return v.cfg.DeletePath != nil }
func (v *View[R]) CanUpload() bool    { return v.cfg.UploadPath != nil }

// Load fetches the collection for filters and makes filters the view's
// filter state. On failure the previous rows stay in place and the error
// is kept in LastError. When a newer Load was issued meanwhile, the
// response is dropped and ErrSuperseded returned.
func (v *View[R]) Load(ctx context.Context, ac models.AuthContext, filters models.FilterState) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.filters = filters
	v.inflight++
	v.mu.Unlock()

	rows, total, err := v.fetch(ctx, ac, filters)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inflight--

	if seq != v.seq {
		v.log.Debug(ctx, "dropping stale load", "seq", seq, "latest", v.seq)
		return ErrSuperseded
	}
	if err != nil {
		v.lastErr = err
		return err
	}

	v.rows = rows
	v.total = total
	v.lastErr = nil
	v.log.Debug(ctx, "loaded", "rows", len(rows), "total", total)
	return nil
}

func (v *View[R]) fetch(ctx context.Context, ac models.AuthContext, f models.FilterState) ([]R, int, error) {
	if err := client.Authorize(ac); err != nil {
		return nil, 0, err
	}

	q := v.cfg.Query(f)
	if v.cfg.ServerPaging && f.PageSize > 0 {
		q.Set("limit", strconv.Itoa(f.PageSize))
		q.Set("offset", strconv.Itoa(f.Page*f.PageSize))
	}

	var body json.RawMessage
	if err := v.client.Get(ctx, ac, v.cfg.ListPath, q, &body); err != nil {
		v.log.Warn(ctx, "load failed", "error", err)
		return nil, 0, fmt.Errorf("load %s: %w", v.cfg.Name, err)
	}

	rows, total, err := v.cfg.Decode(body)
	if err != nil {
		v.log.Warn(ctx, "decode failed", "error", err)
		return nil, 0, fmt.Errorf("decode %s: %w", v.cfg.Name, err)
	}
	return rows, total, nil
}

// SetResync replaces the load run after a mutation. Screens that wrap a
// View and extend Load pass their own Load here.
func (v *View[R]) SetResync(fn func(ctx context.Context, ac models.AuthContext, f models.FilterState) error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resync = fn
}

// reload resynchronizes after a mutation. Failures are logged only.
func (v *View[R]) reload(ctx context.Context, ac models.AuthContext) {
	v.mu.Lock()
	load := v.resync
	f := v.filters
	v.mu.Unlock()
	if load == nil {
		load = v.Load
	}

	err := load(ctx, ac, f)
	if err != nil && !errors.Is(err, ErrSuperseded) {
		v.log.Warn(ctx, "resync failed", "error", err)
	}
}

func (v *View[R]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inflight > 0
}

// LastError is the error of the latest applied Load, nil after a success.
func (v *View[R]) LastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

func (v *View[R]) Filters() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// SetFilters changes the local filter state without fetching.
func (v *View[R]) SetFilters(f models.FilterState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = f
}

// Rows returns a copy of the fetched collection.
func (v *View[R]) Rows() []R {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.rows)
}

// Filtered is the collection narrowed by the current query.
func (v *View[R]) Filtered() []R {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(Filter(v.rows, v.filters.Query, v.cfg.Searchable))
}

// Visible is the page of filtered rows to display. With server paging
// the fetched rows already are the page.
func (v *View[R]) Visible() []R {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := Filter(v.rows, v.filters.Query, v.cfg.Searchable)
	if v.cfg.ServerPaging || v.filters.PageSize <= 0 {
		return slices.Clone(rows)
	}
	return slices.Clone(Paginate(rows, v.filters.Page, v.filters.PageSize))
}

// Total is the row count pagination is based on.
func (v *View[R]) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cfg.Totals == ServerTotals {
		return v.total
	}
	return len(Filter(v.rows, v.filters.Query, v.cfg.Searchable))
}

func (v *View[R]) find(id string) (R, int) {
	for i, r := range v.rows {
		if v.cfg.ID(r) == id {
			return r, i
		}
	}
	var zero R
	return zero, -1
}
