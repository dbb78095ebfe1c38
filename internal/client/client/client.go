package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 16 << 20

type Client interface {
	// Get decodes the JSON response of GET path?query into out.
	Get(ctx context.Context, ac models.AuthContext, path string, query url.Values, out any) error
	// Send issues method with body encoded as JSON. body and out may be nil.
	Send(ctx context.Context, ac models.AuthContext, method, path string, body, out any) error
	// Upload posts files as multipart/form-data under field.
	Upload(ctx context.Context, ac models.AuthContext, path, field string, files []models.Upload, out any) error
}

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Get(ctx context.Context, ac models.AuthContext, path string, query url.Values, out any) error {
	return c.do(ctx, ac, http.MethodGet, path, query, nil, "", out)
}

func (c *HTTPClient) Send(ctx context.Context, ac models.AuthContext, method, path string, body, out any) error {
	var (
		r  io.Reader
		ct string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		r, ct = bytes.NewReader(data), "application/json"
	}
	return c.do(ctx, ac, method, path, nil, r, ct, out)
}

func (c *HTTPClient) Upload(ctx context.Context, ac models.AuthContext, path, field string, files []models.Upload, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := mw.CreateFormFile(field, f.Name)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}
	return c.do(ctx, ac, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), out)
}

func (c *HTTPClient) do(ctx context.Context, ac models.AuthContext, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if err := Authorize(ac); err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+ac.Token)
	req.Header.Set("Accept", "*/*")
	req.Header.Set(common.RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	log.Debug(ctx, "api request", "query", u.RawQuery)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "api transport error", "error", err)
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error(ctx, "read api response", "error", err)
		return mapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := newStatusError(resp.StatusCode, data)
		if resp.StatusCode >= 500 {
			log.Error(ctx, "api server error", "status", resp.StatusCode, "message", serr.Message)
		} else {
			log.Warn(ctx, "api request rejected", "status", resp.StatusCode, "message", serr.Message)
		}
		return serr
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode, "bytes", len(data))

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(ctx, "undecodable api response", "error", err)
		return fmt.Errorf("decode %s response: %w: %w", path, common.ErrRequestFailed, err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
}
