package youtube

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subfeed/internal/domain"
)

func channelListing(t *testing.T) http.Handler {
	pages := map[string]ChannelVideosResponse{
		"": {
			Videos: []Video{
				{VideoID: "v5", Published: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC).Unix()},
				{VideoID: "v4", Published: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC).Unix()},
			},
			Continuation: "p2",
		},
		"p2": {
			Videos: []Video{
				{VideoID: "v3", Published: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC).Unix()},
				{VideoID: "v2", Published: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC).Unix()},
			},
			Continuation: "p3",
		},
		"p3": {
			Videos: []Video{
				{VideoID: "v1", Published: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Unix()},
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/channels/UCalpha/videos", func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Query().Get("continuation")]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeJSON(t, w, page)
	})
	return mux
}

func ids(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestChannelPager_WalksContinuations(t *testing.T) {
	s := newTestSource(t, channelListing(t))
	pager := s.ChannelPager("UCalpha", time.Time{})
	ctx := context.Background()

	var got [][]string
	for {
		cards, err := pager.NextPage(ctx)
		require.NoError(t, err)
		if len(cards) == 0 {
			break
		}
		got = append(got, ids(cards))
	}

	assert.Equal(t, [][]string{{"v5", "v4"}, {"v3", "v2"}, {"v1"}}, got)
}

func TestChannelPager_StopsAtLowerBound(t *testing.T) {
	s := newTestSource(t, channelListing(t))
	pager := s.ChannelPager("UCalpha", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := pager.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"v5", "v4"}, ids(first))

	second, err := pager.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"v3"}, ids(second))
	assert.Equal(t, domain.CardVideo, second[0].Kind)
	assert.Equal(t, domain.ChannelID("UCalpha"), second[0].Video.ChannelID)

	third, err := pager.NextPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestChannelPager_Error(t *testing.T) {
	s := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	cards, err := s.ChannelPager("UCalpha", time.Time{}).NextPage(context.Background())
	require.Error(t, err)
	assert.Nil(t, cards)
}
