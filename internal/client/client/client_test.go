package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ac = models.AuthContext{Token: "opaque-token"}

func newTestClient(t *testing.T, h http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL, 2*time.Second, logging.Discard())
	require.NoError(t, err)
	return c, srv
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com", time.Second, logging.Discard())
	assert.Error(t, err)
	_, err = NewHTTPClient("://", time.Second, logging.Discard())
	assert.Error(t, err)
}

func TestGet_HeadersQueryAndDecode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/profiles/search", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		assert.Equal(t, "*/*", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeader))
		assert.Equal(t, "geeker", r.URL.Query().Get("user_type"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("startDate"))
		_, _ = io.WriteString(w, `{"data":[{"id":"1"}]}`)
	})

	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	q := url.Values{"user_type": {"geeker"}, "startDate": {"2024-01-01"}}
	require.NoError(t, c.Get(context.Background(), ac, "/profiles/search", q, &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "1", out.Data[0].ID)
}

func TestGet_BasePathIsKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories", r.URL.Path)
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api/v1", time.Second, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, c.Get(context.Background(), ac, "/categories", nil, nil))
}

func TestSend_EncodesJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"name": "Sports"}, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"category":{"id":"c1","name":"Sports"}}`)
	})

	var out struct {
		Category struct {
			ID string `json:"id"`
		} `json:"category"`
	}
	err := c.Send(context.Background(), ac, http.MethodPost, "/categories", map[string]string{"name": "Sports"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "c1", out.Category.ID)
}

func TestSend_EmptyResponseBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/event-category/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	var out map[string]any
	require.NoError(t, c.Send(context.Background(), ac, http.MethodDelete, "/event-category/7", nil, &out))
	assert.Nil(t, out)
}

func TestUpload_Multipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Filename)
		assert.Equal(t, "b.png", files[1].Filename)

		f, err := files[1].Open()
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "BBB", string(data))
		w.WriteHeader(http.StatusOK)
	})

	files := []models.Upload{
		{Name: "a.png", Content: strings.NewReader("AAA")},
		{Name: "b.png", Content: strings.NewReader("BBB")},
	}
	require.NoError(t, c.Upload(context.Background(), ac, "/upload/internal", "images", files, nil))
}

func TestDo_UnauthorizedBeforeIO(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	err := c.Get(context.Background(), models.AuthContext{}, "/categories", nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	err = c.Get(context.Background(), models.AuthContext{Token: mintToken(t, time.Now().Add(-time.Minute))}, "/categories", nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	assert.Zero(t, hits.Load())
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{"401", http.StatusUnauthorized, `{"message":"jwt expired"}`, common.ErrUnauthorized, "jwt expired"},
		{"403", http.StatusForbidden, ``, common.ErrUnauthorized, "forbidden"},
		{"404", http.StatusNotFound, `{"error":"no such category"}`, common.ErrRequestFailed, "no such category"},
		{"422", http.StatusUnprocessableEntity, `not json`, common.ErrRequestFailed, "unprocessable entity"},
		{"500", http.StatusInternalServerError, `{"message":"db down"}`, common.ErrUnavailable, "db down"},
		{"503", http.StatusServiceUnavailable, ``, common.ErrUnavailable, "service unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Get(context.Background(), ac, "/categories", nil, &struct{}{})
			require.ErrorIs(t, err, tt.want)

			var serr *StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.Code)
			assert.Equal(t, tt.message, serr.Message)
		})
	}
}

func TestDo_MalformedBodyIsRequestFailed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"categories": [`)
	})

	var out map[string]any
	err := c.Get(context.Background(), ac, "/categories", nil, &out)
	require.ErrorIs(t, err, common.ErrRequestFailed)
	assert.True(t, common.IsNetwork(err))
}

func TestDo_TransportErrorIsUnavailable(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := c.Get(context.Background(), ac, "/categories", nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDo_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release); srv.Close() })

	c, err := NewHTTPClient(srv.URL, 50*time.Millisecond, logging.Discard())
	require.NoError(t, err)

	err = c.Get(context.Background(), ac, "/categories", nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_CanceledIsNotUnavailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, ac, "/categories", nil, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, common.ErrUnavailable)
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c, err := NewHTTPClient("http://localhost", 0, logging.Discard(), WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Same(t, hc, c.http)
}
