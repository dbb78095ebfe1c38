package screens

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
	"golang.org/x/sync/errgroup"
)

// parentIndex resolves main category names for sub-category rows.
type parentIndex struct {
	mu    sync.RWMutex
	names map[string]string
}

func (p *parentIndex) reset(rows []models.Category) {
	names := make(map[string]string, len(rows))
	for _, c := range rows {
		names[c.ID] = c.Name
	}
	p.mu.Lock()
	p.names = names
	p.mu.Unlock()
}

// name returns "" for unknown ids; exports render that as N/A.
func (p *parentIndex) name(id string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.names[id]
}

func (p *parentIndex) has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.names[id]
	return ok
}

// SubcategoryScreen is a sub-category view paired with the main category
// view its parent references resolve against.
type SubcategoryScreen struct {
	*listview.View[models.Category]
	parents *listview.View[models.Category]
	index   *parentIndex
	log     logging.Logger
}

// Load fetches sub-categories and their parents concurrently. A failed
// parent load is logged and leaves the previous parent names in place.
func (s *SubcategoryScreen) Load(ctx context.Context, ac models.AuthContext, f models.FilterState) error {
	var g errgroup.Group
	g.Go(func() error {
		return s.View.Load(ctx, ac, f)
	})
	g.Go(func() error {
		err := s.parents.Load(ctx, ac, models.FilterState{})
		switch {
		case err == nil:
			s.index.reset(s.parents.Rows())
		case !errors.Is(err, listview.ErrSuperseded):
			s.log.Warn(ctx, "parent categories not loaded", "error", err)
		}
		return nil
	})
	return g.Wait()
}

// Parents returns the main categories a sub-category may reference.
func (s *SubcategoryScreen) Parents() []models.Category {
	return s.parents.Rows()
}

func subcategoryColumns(opts Options, idx *parentIndex) []listview.Column[models.Category] {
	return []listview.Column[models.Category]{
		{Label: "Main Category", Value: func(c models.Category) string { return idx.name(c.ParentID) }},
		{Label: "Sub Category", Value: func(c models.Category) string { return c.Name }},
		{Label: "Image", Value: func(c models.Category) string { return c.ImageURL }},
		{Label: "Created At", Value: func(c models.Category) string { return opts.format(c.CreatedAt, dayLayout) }},
	}
}

func parentValidator(idx *parentIndex, field string) func(models.Draft) error {
	return func(d models.Draft) error {
		if !idx.has(d.Get(field)) {
			return listview.Invalid(field, "no such main category")
		}
		return nil
	}
}

func newSubcategoryScreen(opts Options, cfg listview.Config[models.Category], parents listview.Config[models.Category], idx *parentIndex) *SubcategoryScreen {
	s := &SubcategoryScreen{
		View:    listview.New(cfg, opts.Client, opts.Log),
		parents: listview.New(parents, opts.Client, opts.Log),
		index:   idx,
		log:     opts.Log.With("screen", cfg.Name),
	}
	// mutations refresh the parent names too
	s.View.SetResync(s.Load)
	return s
}

func decodeOneCategory(body []byte) (models.Category, error) {
	var resp struct {
		Data     *apiCategory `json:"data"`
		Category *apiCategory `json:"category"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Category{}, err
	}
	switch {
	case resp.Data != nil:
		return resp.Data.model(), nil
	case resp.Category != nil:
		return resp.Category.model(), nil
	}
	return models.Category{}, errors.New("response carries no category")
}

// NewSubcategories is the sub-category screen backed by
// /categories/subcategories, referencing parents by categoryId.
func NewSubcategories(opts Options) *SubcategoryScreen {
	idx := &parentIndex{}

	parents := categoryConfig(opts)
	parents.Name = Subcategories + "-parents"

	cfg := listview.Config[models.Category]{
		Name:     Subcategories,
		ListPath: "/categories/subcategories",
		Query:    noQuery,
		Decode: func(body []byte) ([]models.Category, int, error) {
			var resp struct {
				Data []apiCategory `json:"data"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return nil, 0, err
			}
			rows := categoryModels(resp.Data)
			return rows, len(rows), nil
		},
		ID:         categoryID,
		Searchable: func(c models.Category) []string { return []string{c.Name, idx.name(c.ParentID)} },
		Columns:    subcategoryColumns(opts, idx),
		Fields: []listview.Field{
			{Name: "name", Label: "Sub-category name", Required: true},
			{Name: "categoryId", Label: "Main category id", Required: true},
			{Name: "imageUrl", Label: "Image URL"},
		},
		Validate: parentValidator(idx, "categoryId"),
		Encode: func(d models.Draft) any {
			return map[string]string{"name": d.Get("name"), "imageUrl": d.Get("imageUrl"), "categoryId": d.Get("categoryId")}
		},
		ToDraft: func(c models.Category) models.Draft {
			return models.Draft{Fields: map[string]string{"name": c.Name, "imageUrl": c.ImageURL, "categoryId": c.ParentID}}
		},
		CreatePath: "/categories/subcategory",
		UpdatePath: func(id string) string { return "/categories/" + url.PathEscape(id) },
		DecodeOne:  decodeOneCategory,
		DeletePath: func(id string) string { return "/event-category/" + url.PathEscape(id) },
		UploadPath: func(id string, c models.Category) (string, error) {
			if id == "" {
				return "", listview.Invalid("id", "required")
			}
			if c.ParentID == "" {
				return "", listview.Invalid("categoryId", "sub-category has no main category")
			}
			return "/upload/subCategory/" + url.PathEscape(c.ParentID) + "/" + url.PathEscape(id), nil
		},
		UploadField: "image",
		ExportName:  "SubCategories.csv",
	}

	return newSubcategoryScreen(opts, cfg, parents, idx)
}

// NewSubcategoriesLegacy is the older sub-category screen: rows come from
// /categories and reference parents by mainCategoryId.
func NewSubcategoriesLegacy(opts Options) *SubcategoryScreen {
	idx := &parentIndex{}

	parents := categoryConfig(opts)
	parents.Name = SubcategoriesLegacy + "-parents"
	parents.Decode = decodeLegacyCategories(false)

	cfg := listview.Config[models.Category]{
		Name:       SubcategoriesLegacy,
		ListPath:   "/categories",
		Query:      noQuery,
		Decode:     decodeLegacyCategories(true),
		ID:         categoryID,
		Searchable: func(c models.Category) []string { return []string{c.Name} },
		Columns:    subcategoryColumns(opts, idx),
		Fields: []listview.Field{
			{Name: "name", Label: "Sub-category name", Required: true},
			{Name: "mainCategoryId", Label: "Main category id", Required: true},
			{Name: "imageUrl", Label: "Image URL"},
		},
		Validate: parentValidator(idx, "mainCategoryId"),
		Encode: func(d models.Draft) any {
			return map[string]string{"name": d.Get("name"), "imageUrl": d.Get("imageUrl"), "mainCategoryId": d.Get("mainCategoryId")}
		},
		ToDraft: func(c models.Category) models.Draft {
			return models.Draft{Fields: map[string]string{"name": c.Name, "imageUrl": c.ImageURL, "mainCategoryId": c.ParentID}}
		},
		CreatePath: "/categories",
		UpdatePath: func(id string) string { return "/categories/" + url.PathEscape(id) },
		DecodeOne:  decodeOneCategory,
		DeletePath: func(id string) string { return "/event-category/" + url.PathEscape(id) },
		ExportName: "SubCategories.csv",
	}

	return newSubcategoryScreen(opts, cfg, parents, idx)
}

// decodeLegacyCategories accepts {categories: [...]}, {category: [...]}
// or a bare array. With subOnly set, rows without a main category are
// dropped.
func decodeLegacyCategories(subOnly bool) func([]byte) ([]models.Category, int, error) {
	return func(body []byte) ([]models.Category, int, error) {
		var list []apiCategory
		if err := json.Unmarshal(body, &list); err != nil {
			var resp struct {
				Categories []apiCategory `json:"categories"`
				Category   []apiCategory `json:"category"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return nil, 0, err
			}
			list = resp.Categories
			if list == nil {
				list = resp.Category
			}
		}

		rows := make([]models.Category, 0, len(list))
		for _, c := range list {
			m := c.model()
			if subOnly && m.ParentID == "" {
				continue
			}
			rows = append(rows, m)
		}
		return rows, len(rows), nil
	}
}
