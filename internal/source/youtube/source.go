package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"golang.org/x/time/rate"

	"subfeed/internal/domain"
	"subfeed/internal/service"
)

var (
	_ service.ContentSource = (*Source)(nil)
	_ service.Pager         = (*ChannelPager)(nil)
)

const (
	SourceID  = "youtube"
	userAgent = "subfeed/1.0"
)

// Config holds YouTube source configuration.
type Config struct {
	FeedURL        string
	APIURL         string
	Timeout        time.Duration
	RateLimit      float64
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Source reads channel uploads from the public Atom feed and video details from an
// Invidious-compatible API. All requests share one rate limiter.
type Source struct {
	httpClient     *http.Client
	parser         *gofeed.Parser
	feedURL        string
	apiURL         string
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Source {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		parser:         gofeed.NewParser(),
		feedURL:        cfg.FeedURL,
		apiURL:         strings.TrimRight(cfg.APIURL, "/"),
		limiter:        rate.NewLimiter(limit, 1),
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
		now:            time.Now,
	}
}

// FetchLatestItems returns the newest uploads of a channel, most recent first.
//
// The Atom feed carries exact publish times. When it cannot be read, the first page of the
// API channel listing is used instead; its publish times are estimates.
func (s *Source) FetchLatestItems(ctx context.Context, channelID domain.ChannelID) ([]domain.Item, error) {
	items, feedErr := s.fetchFeed(ctx, channelID)
	if feedErr == nil {
		return items, nil
	}

	s.logger.Warn("channel feed unavailable, reading channel listing",
		"channel_id", channelID,
		"error", feedErr,
	)

	page, err := s.fetchChannelPage(ctx, channelID, "")
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, errors.Join(feedErr, err))
	}

	items = make([]domain.Item, 0, len(page.Videos))
	for _, v := range page.Videos {
		items = append(items, s.toItem(v, channelID))
	}
	return items, nil
}

// FetchDetail returns the full record of a single video.
func (s *Source) FetchDetail(ctx context.Context, itemID domain.ItemID) (*domain.Item, error) {
	endpoint := fmt.Sprintf("%s/api/v1/videos/%s", s.apiURL, url.PathEscape(string(itemID)))

	var v Video
	if err := s.getJSON(ctx, endpoint, &v); err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", itemID, err)
	}

	item := s.toItem(v, domain.ChannelID(v.AuthorID))
	item.ID = itemID
	description := v.Description
	item.Description = &description
	views, likes, dislikes := v.ViewCount, v.LikeCount, v.DislikeCount
	item.ViewCount = &views
	item.LikeCount = &likes
	item.DislikeCount = &dislikes

	return &item, nil
}

// FetchChannel reads the channel's title and image from its uploads feed.
func (s *Source) FetchChannel(ctx context.Context, channelID domain.ChannelID) (*domain.Channel, error) {
	feed, err := s.readFeed(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	return feedChannel(feed, channelID), nil
}

func (s *Source) readFeed(ctx context.Context, channelID domain.ChannelID) (*gofeed.Feed, error) {
	endpoint := s.feedURL + "?channel_id=" + url.QueryEscape(string(channelID))

	var feed *gofeed.Feed
	err := s.retry(ctx, func() error {
		body, err := s.get(ctx, endpoint, "application/atom+xml")
		if err != nil {
			return err
		}
		defer body.Close()

		parsed, err := s.parser.Parse(body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parse feed: %w", err))
		}
		feed = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (s *Source) fetchFeed(ctx context.Context, channelID domain.ChannelID) ([]domain.Item, error) {
	feed, err := s.readFeed(ctx, channelID)
	if err != nil {
		return nil, err
	}

	channel := feedChannel(feed, channelID)
	retrievedAt := s.now()
	items := make([]domain.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		id := entryVideoID(entry)
		if id == "" || entry.PublishedParsed == nil {
			s.logger.Warn("skipping feed entry", "channel_id", channelID, "guid", entry.GUID)
			continue
		}

		item := domain.Item{
			ID:             domain.ItemID(id),
			ChannelID:      channelID,
			Title:          entry.Title,
			PublishedAt:    entry.PublishedParsed.UTC(),
			PublishedExact: true,
			ThumbnailURL:   mediaAttr(entry, "thumbnail", "url"),
			Channel:        channel,
			RetrievedAt:    retrievedAt,
		}
		if views, err := strconv.ParseInt(mediaAttr(entry, "statistics", "views"), 10, 64); err == nil {
			item.ViewCount = &views
		}
		items = append(items, item)
	}

	s.logger.Debug("fetched channel feed", "channel_id", channelID, "entries", len(items))

	return items, nil
}

func (s *Source) fetchChannelPage(ctx context.Context, channelID domain.ChannelID, continuation string) (*ChannelVideosResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/channels/%s/videos", s.apiURL, url.PathEscape(string(channelID)))
	if continuation != "" {
		endpoint += "?continuation=" + url.QueryEscape(continuation)
	}

	var page ChannelVideosResponse
	if err := s.getJSON(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("fetch channel page: %w", err)
	}

	s.logger.Debug("fetched channel page",
		"channel_id", channelID,
		"videos", len(page.Videos),
		"has_more", page.Continuation != "",
	)

	return &page, nil
}

func (s *Source) getJSON(ctx context.Context, endpoint string, out any) error {
	return s.retry(ctx, func() error {
		body, err := s.get(ctx, endpoint, "application/json")
		if err != nil {
			return err
		}
		defer body.Close()

		if err := json.NewDecoder(body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	})
}

func (s *Source) get(ctx context.Context, endpoint, accept string) (io.ReadCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		statusErr := &StatusError{Code: resp.StatusCode, URL: endpoint}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	return resp.Body, nil
}

func (s *Source) retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialBackoff
	b.MaxInterval = s.maxBackoff
	b.MaxElapsedTime = 0

	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			return op()
		},
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.maxAttempts-1)), ctx),
		func(err error, wait time.Duration) {
			s.logger.Warn("request failed, retrying",
				"attempt", attempt,
				"backoff", wait,
				"error", err,
			)
		},
	)
}

func (s *Source) toItem(v Video, channelID domain.ChannelID) domain.Item {
	item := domain.Item{
		ID:          domain.ItemID(v.VideoID),
		ChannelID:   channelID,
		Title:       v.Title,
		Duration:    v.LengthSeconds,
		RetrievedAt: s.now(),
	}
	if v.Published > 0 {
		item.PublishedAt = time.Unix(v.Published, 0).UTC()
	}
	if len(v.VideoThumbnails) > 0 {
		item.ThumbnailURL = v.VideoThumbnails[0].URL
	}
	if v.Author != "" {
		item.Channel = &domain.Channel{ID: channelID, Title: v.Author}
	}
	return item
}

func feedChannel(feed *gofeed.Feed, channelID domain.ChannelID) *domain.Channel {
	ch := &domain.Channel{ID: channelID, Title: feed.Title}
	if ch.Title == "" && feed.Author != nil {
		ch.Title = feed.Author.Name
	}
	if feed.Image != nil {
		ch.ThumbnailURL = feed.Image.URL
	}
	return ch
}

func entryVideoID(entry *gofeed.Item) string {
	if yt, ok := entry.Extensions["yt"]; ok {
		if ids := yt["videoId"]; len(ids) > 0 && ids[0].Value != "" {
			return ids[0].Value
		}
	}
	return strings.TrimPrefix(entry.GUID, "yt:video:")
}

// mediaAttr reads an attribute of a media:group descendant, e.g. media:thumbnail@url.
func mediaAttr(entry *gofeed.Item, name, attr string) string {
	media, ok := entry.Extensions["media"]
	if !ok {
		return ""
	}
	for _, group := range media["group"] {
		if v := findAttr(group.Children, name, attr); v != "" {
			return v
		}
	}
	return ""
}

func findAttr(children map[string][]ext.Extension, name, attr string) string {
	for _, e := range children[name] {
		if v := e.Attrs[attr]; v != "" {
			return v
		}
	}
	for _, list := range children {
		for _, e := range list {
			if v := findAttr(e.Children, name, attr); v != "" {
				return v
			}
		}
	}
	return ""
}
