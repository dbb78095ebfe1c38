package screens

import (
	"encoding/json"
	"net/url"
	"path"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

// bannerFileName is the last path segment of a banner URL.
func bannerFileName(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(raw)
}

func decodeBanners(body []byte) ([]models.Banner, int, error) {
	var urls []string
	if err := json.Unmarshal(body, &urls); err != nil {
		return nil, 0, err
	}
	rows := make([]models.Banner, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, models.Banner{ID: bannerFileName(u), URL: u})
	}
	return rows, len(rows), nil
}

// NewBanners manages the internal banner images. Uploads take several
// files at once and are not tied to a record.
func NewBanners(opts Options) *listview.View[models.Banner] {
	return listview.New(listview.Config[models.Banner]{
		Name:       Banners,
		ListPath:   "/upload/internal",
		Query:      noQuery,
		Decode:     decodeBanners,
		ID:         func(b models.Banner) string { return b.ID },
		Searchable: func(b models.Banner) []string { return []string{b.URL} },
		Columns: []listview.Column[models.Banner]{
			{Label: "Image URL", Value: func(b models.Banner) string { return b.URL }},
		},
		DeletePath: func(id string) string { return "/upload/internal/" + url.PathEscape(id) },
		UploadPath: func(string, models.Banner) (string, error) {
			return "/upload/internal", nil
		},
		UploadField: "images",
		ExportName:  "InnerBanners.csv",
	}, opts.Client, opts.Log)
}
