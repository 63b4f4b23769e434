package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"subfeed/internal/domain"
)

func (s *SyncServiceTestSuite) TestEnrich_KeepsExactTimestamp() {
	ctx := context.Background()
	channel := &domain.Channel{ID: "A", Title: "Alpha"}
	candidate := video("A", "v1", s.now.Add(-time.Hour), true)

	description := "full description"
	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(&domain.Item{
		ID:          candidate.ID,
		Title:       candidate.Title,
		Description: &description,
		PublishedAt: s.now.Add(-24 * time.Hour),
		Duration:    312,
	}, nil)

	item, err := s.service.enrich(ctx, candidate, channel)

	s.Require().NoError(err)
	s.True(item.PublishedExact)
	s.True(candidate.PublishedAt.Equal(item.PublishedAt))
	s.Equal(312, item.Duration)
	s.Equal(&description, item.Description)
	s.Equal(domain.ChannelID("A"), item.ChannelID)
	s.Same(channel, item.Channel)
}

func (s *SyncServiceTestSuite) TestEnrich_ApproximateCandidateTakesDetailTimestamp() {
	ctx := context.Background()
	candidate := video("A", "v1", s.now.Add(-time.Hour), false)
	detailAt := s.now.Add(-90 * time.Minute)

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(&domain.Item{
		ID:             candidate.ID,
		PublishedAt:    detailAt,
		PublishedExact: true,
	}, nil)

	item, err := s.service.enrich(ctx, candidate, nil)

	s.Require().NoError(err)
	s.True(item.PublishedExact)
	s.True(detailAt.Equal(item.PublishedAt))
	s.Equal(candidate.Title, item.Title)
	s.Nil(item.Channel)
}

func (s *SyncServiceTestSuite) TestEnrich_DetailError() {
	ctx := context.Background()
	candidate := video("A", "v1", s.now, true)

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(nil, errors.New("sign in to confirm your age"))

	_, err := s.service.enrich(ctx, candidate, nil)

	s.ErrorIs(err, ErrDetailFetch)
	s.Contains(err.Error(), "v1")
}

func (s *SyncServiceTestSuite) TestEnrich_EmptyDetail() {
	ctx := context.Background()
	candidate := video("A", "v1", s.now, true)

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(nil, nil)

	_, err := s.service.enrich(ctx, candidate, nil)

	s.ErrorIs(err, ErrDetailFetch)
}

func (s *SyncServiceTestSuite) TestEnrich_KeepsCandidateThumbnail() {
	candidate := video("A", "v1", s.now, true)
	candidate.ThumbnailURL = "https://img/v1.jpg"

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(&domain.Item{ID: candidate.ID}, nil)

	item, err := s.service.enrich(context.Background(), candidate, nil)

	s.Require().NoError(err)
	s.Equal("https://img/v1.jpg", item.ThumbnailURL)
}

func (s *SyncServiceTestSuite) TestEnrich_UntitledCacheTakesListedChannel() {
	cached := &domain.Channel{ID: "A", Subscribed: true}
	candidate := video("A", "v1", s.now, true)
	candidate.Channel = &domain.Channel{ID: "A", Title: "Alpha"}

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(&domain.Item{ID: candidate.ID}, nil)

	item, err := s.service.enrich(context.Background(), candidate, cached)

	s.Require().NoError(err)
	s.Require().NotNil(item.Channel)
	s.Equal("Alpha", item.Channel.Title)
	s.True(item.Channel.Subscribed)
	s.Empty(cached.Title)
}

func (s *SyncServiceTestSuite) TestEnrich_TitledCacheWinsOverListing() {
	cached := &domain.Channel{ID: "A", Title: "Alpha (cached)"}
	candidate := video("A", "v1", s.now, true)
	candidate.Channel = &domain.Channel{ID: "A", Title: "Alpha"}

	s.source.EXPECT().FetchDetail(gomock.Any(), candidate.ID).Return(&domain.Item{ID: candidate.ID}, nil)

	item, err := s.service.enrich(context.Background(), candidate, cached)

	s.Require().NoError(err)
	s.Same(cached, item.Channel)
}
