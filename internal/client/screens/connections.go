package screens

import (
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

func (c apiConnection) model() models.Connection {
	name := c.Geeker.Profile.DisplayName
	if name == "" {
		name = models.Profile{FirstName: c.Geeker.FirstName, LastName: c.Geeker.LastName}.FullName()
	}
	return models.Connection{
		ID:          string(c.ID),
		GeekerName:  name,
		Email:       c.Geeker.Email,
		Category:    c.Geeker.Profile.Category.Name,
		Subcategory: c.Geeker.Profile.Subcategory.Name,
		Comment:     c.Comment,
		CreatedAt:   c.CreatedAt.Time,
	}
}

func decodeConnections(body []byte) ([]models.Connection, int, error) {
	var resp struct {
		Connections []apiConnection `json:"connections"`
		TotalCount  int             `json:"totalCount"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, err
	}
	rows := make([]models.Connection, 0, len(resp.Connections))
	for _, c := range resp.Connections {
		rows = append(rows, c.model())
	}
	return rows, resp.TotalCount, nil
}

// NewRequests is the pending connection request report. The server pages
// and counts; limit and offset come from the filter state.
func NewRequests(opts Options) *listview.View[models.Connection] {
	return listview.New(listview.Config[models.Connection]{
		Name:     Requests,
		ListPath: "/connections",
		Query: func(f models.FilterState) url.Values {
			q := f.DateParams()
			q.Set("connection_status", "pending")
			q.Set("sortBy", "createdAt")
			q.Set("sortOrder", "asc")
			if f.CategoryID != "" {
				q.Set("categoryId", f.CategoryID)
			}
			return q
		},
		Decode:       decodeConnections,
		ID:           func(c models.Connection) string { return c.ID },
		Searchable:   func(c models.Connection) []string { return []string{c.GeekerName, c.Email} },
		Totals:       listview.ServerTotals,
		ServerPaging: true,
		Columns: []listview.Column[models.Connection]{
			{Label: "Name", Value: func(c models.Connection) string { return c.GeekerName }},
			{Label: "Email", Value: func(c models.Connection) string { return c.Email }},
			{Label: "Category", Value: func(c models.Connection) string { return c.Category }},
			{Label: "Subcategory", Value: func(c models.Connection) string { return c.Subcategory }},
			{Label: "Comment", Value: func(c models.Connection) string { return c.Comment }},
			{Label: "Date", Value: func(c models.Connection) string { return opts.format(c.CreatedAt, requestLayout) }},
		},
		ExportName: "Raised_Request_Reports.csv",
	}, opts.Client, opts.Log)
}
