package listview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Field  string
	Files  []string
}

// fakeAPI implements client.Client over handler funcs returning JSON text.
type fakeAPI struct {
	mu    sync.Mutex
	calls []call

	get    func(path string, q url.Values) (string, error)
	send   func(method, path string, body any) (string, error)
	upload func(path, field string, files []string) error
}

func (f *fakeAPI) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) Get(_ context.Context, _ models.AuthContext, path string, q url.Values, out any) error {
	f.record(call{Method: "GET", Path: path, Query: q})
	if f.get == nil {
		return fmt.Errorf("unexpected GET %s", path)
	}
	body, err := f.get(path, q)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (f *fakeAPI) Send(_ context.Context, _ models.AuthContext, method, path string, body, out any) error {
	f.record(call{Method: method, Path: path, Body: body})
	if f.send == nil {
		return fmt.Errorf("unexpected %s %s", method, path)
	}
	resp, err := f.send(method, path, body)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (f *fakeAPI) Upload(_ context.Context, _ models.AuthContext, path, field string, files []models.Upload, _ any) error {
	names := make([]string, len(files))
	for i, u := range files {
		names[i] = u.Name
	}
	f.record(call{Method: "POST", Path: path, Field: field, Files: names})
	if f.upload == nil {
		return fmt.Errorf("unexpected upload %s", path)
	}
	return f.upload(path, field, names)
}

func decode(body string, out any) error {
	if out == nil || strings.TrimSpace(body) == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}
