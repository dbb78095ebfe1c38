package screens

import (
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

func (c apiCategory) model() models.Category {
	created := c.CreatedAt.Time
	if created.IsZero() {
		created = c.UpdatedAt.Time
	}
	parent := c.MainCategoryID
	if parent == "" {
		parent = c.CategoryID
	}
	return models.Category{
		ID:        string(c.ID),
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		CreatedAt: created,
		ParentID:  string(parent),
	}
}

func categoryModels(in []apiCategory) []models.Category {
	out := make([]models.Category, 0, len(in))
	for _, c := range in {
		out = append(out, c.model())
	}
	return out
}

func decodeCategories(body []byte) ([]models.Category, int, error) {
	var resp struct {
		Categories []apiCategory `json:"categories"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, err
	}
	rows := categoryModels(resp.Categories)
	return rows, len(rows), nil
}

func categoryID(c models.Category) string { return c.ID }

func noQuery(models.FilterState) url.Values { return url.Values{} }

func categoryConfig(opts Options) listview.Config[models.Category] {
	return listview.Config[models.Category]{
		Name:       Categories,
		ListPath:   "/categories",
		Query:      noQuery,
		Decode:     decodeCategories,
		ID:         categoryID,
		Searchable: func(c models.Category) []string { return []string{c.Name} },
		Columns: []listview.Column[models.Category]{
			{Label: "Category Name", Value: func(c models.Category) string { return c.Name }},
			{Label: "Image", Value: func(c models.Category) string { return c.ImageURL }},
			{Label: "Created At", Value: func(c models.Category) string { return opts.format(c.CreatedAt, dayLayout) }},
		},
		Fields: []listview.Field{
			{Name: "name", Label: "Category name", Required: true},
			{Name: "imageUrl", Label: "Image URL"},
		},
		Encode: func(d models.Draft) any {
			return map[string]string{"name": d.Get("name"), "imageUrl": d.Get("imageUrl")}
		},
		ToDraft: func(c models.Category) models.Draft {
			return models.Draft{Fields: map[string]string{"name": c.Name, "imageUrl": c.ImageURL}}
		},
		CreatePath: "/categories",
		UpdatePath: func(id string) string { return "/categories/" + url.PathEscape(id) },
		DecodeOne:  decodeOneCategory,
		DeletePath: func(id string) string { return "/event-category/" + url.PathEscape(id) },
		UploadPath: func(id string, _ models.Category) (string, error) {
			if id == "" {
				return "", listview.Invalid("id", "required")
			}
			return "/upload/category/" + url.PathEscape(id), nil
		},
		UploadField: "image",
		ExportName:  "Categories.csv",
	}
}

// NewCategories is the main category screen.
func NewCategories(opts Options) *listview.View[models.Category] {
	return listview.New(categoryConfig(opts), opts.Client, opts.Log)
}
