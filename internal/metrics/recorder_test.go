package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subfeed/internal/domain"
	"subfeed/internal/service"
)

func TestRecorder_ChannelFailed(t *testing.T) {
	r := NewRecorder(nil)

	r.ChannelFailed("A", fmt.Errorf("%w: channel A: timeout", service.ErrSourceUnavailable))
	r.ChannelFailed("B", fmt.Errorf("%w: persist: conn reset", service.ErrStore))
	r.ChannelFailed("C", fmt.Errorf("%w: persist: deadlock", service.ErrStore))
	r.ChannelFailed("D", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.channelFailures.WithLabelValues("source")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.channelFailures.WithLabelValues("store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.channelFailures.WithLabelValues("other")))
}

func TestRecorder_BatchCompleted(t *testing.T) {
	r := NewRecorder(nil)
	startedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	r.ItemDropped("v1", service.ErrDetailFetch)
	r.BatchCompleted(&domain.SyncResult{NewItemCount: 2, FailedChannels: 1, StartedAt: startedAt, Duration: 3 * time.Second})
	r.BatchCompleted(&domain.SyncResult{NewItemCount: 5, StartedAt: startedAt.Add(time.Hour)})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.droppedItems))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.batches))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.newItems))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.failedChannels))
	assert.Equal(t, float64(startedAt.Add(time.Hour).Unix()), testutil.ToFloat64(r.lastSync))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(nil)
	r.BatchCompleted(&domain.SyncResult{NewItemCount: 1})

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "subfeed_new_items_total 1")
	assert.Contains(t, string(body), "subfeed_sync_batches_total 1")
}
