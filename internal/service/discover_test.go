package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"subfeed/internal/domain"
)

func (s *SyncServiceTestSuite) TestDiscover_StopsAtFirstKnownAndCorrectsTimestamp() {
	ctx := context.Background()
	t0 := s.now.Add(-72 * time.Hour)
	t1 := s.now.Add(-70 * time.Hour)

	v2 := video("A", "v2", s.now.Add(-time.Hour), true)
	v1 := video("A", "v1", t1, true)
	v3 := video("A", "v3", s.now.Add(-96*time.Hour), true)

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return([]domain.Item{v2, v1, v3}, nil)
	s.store.EXPECT().UpdateTimestamp(gomock.Any(), domain.ItemID("v1"), t1).Return(nil)

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{"v1": t0})

	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal(domain.ItemID("v2"), candidates[0].ID)
}

func (s *SyncServiceTestSuite) TestDiscover_FirstItemKnown() {
	ctx := context.Background()
	t0 := s.now.Add(-time.Hour)

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return([]domain.Item{
		video("A", "v1", t0, true),
		video("A", "v0", s.now.Add(-2*time.Hour), true),
	}, nil)

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{"v1": t0})

	s.NoError(err)
	s.Empty(candidates)
}

func (s *SyncServiceTestSuite) TestDiscover_ApproximateTimestampIsNotCorrected() {
	ctx := context.Background()
	stored := s.now.Add(-72 * time.Hour)

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return([]domain.Item{
		video("A", "v1", s.now.Add(-48*time.Hour), false),
	}, nil)

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{"v1": stored})

	s.NoError(err)
	s.Empty(candidates)
}

func (s *SyncServiceTestSuite) TestDiscover_CorrectionFailureStillStops() {
	ctx := context.Background()
	t1 := s.now.Add(-5 * time.Hour)

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return([]domain.Item{
		video("A", "v2", s.now.Add(-time.Hour), true),
		video("A", "v1", t1, true),
		video("A", "v0", s.now.Add(-9*time.Hour), true),
	}, nil)
	s.store.EXPECT().UpdateTimestamp(gomock.Any(), domain.ItemID("v1"), t1).Return(errors.New("connection reset"))

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{"v1": s.now.Add(-6 * time.Hour)})

	s.NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal(domain.ItemID("v2"), candidates[0].ID)
}

func (s *SyncServiceTestSuite) TestDiscover_AllUnknown() {
	ctx := context.Background()
	items := []domain.Item{
		video("A", "v3", s.now.Add(-time.Hour), true),
		video("A", "v2", s.now.Add(-2*time.Hour), false),
		video("A", "v1", s.now.Add(-3*time.Hour), true),
	}

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return(items, nil)

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{"other": s.now})

	s.NoError(err)
	s.Equal(items, candidates)
}

func (s *SyncServiceTestSuite) TestDiscover_SourceError() {
	ctx := context.Background()

	s.source.EXPECT().FetchLatestItems(gomock.Any(), domain.ChannelID("A")).Return(nil, errors.New("channel terminated"))
	s.observer.EXPECT().ChannelFailed(domain.ChannelID("A"), gomock.Any())

	candidates, err := s.service.discover(ctx, "A", map[domain.ItemID]time.Time{})

	s.ErrorIs(err, ErrSourceUnavailable)
	s.Contains(err.Error(), "channel terminated")
	s.Empty(candidates)
}
