package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStats(t *testing.T, h http.HandlerFunc) *StatsService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := client.NewHTTPClient(srv.URL, time.Second, logging.Discard())
	require.NoError(t, err)
	return NewStatsService(c)
}

func TestStats_Summary(t *testing.T) {
	svc := newStats(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/stats", r.URL.Path)
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("startDate"))
		assert.False(t, r.URL.Query().Has("endDate"))
		_, _ = io.WriteString(w, `{"data":{"geekerCount":12,"seekerCount":30,"acceptedCount":4,"pendingCount":9}}`)
	})

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.Summary(context.Background(), models.AuthContext{Token: "t"}, from, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, models.Stats{GeekerCount: 12, SeekerCount: 30, AcceptedCount: 4, PendingCount: 9}, got)
}

func TestStats_Summary_Errors(t *testing.T) {
	svc := newStats(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := svc.Summary(context.Background(), models.AuthContext{}, time.Time{}, time.Time{})
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Summary(context.Background(), models.AuthContext{Token: "t"}, time.Time{}, time.Time{})
	require.ErrorIs(t, err, common.ErrUnavailable)
}
