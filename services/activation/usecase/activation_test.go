package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/activation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*ActivationUC, *mocks.MockActivationRepo, *mocks.MockOnboardingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockActivationRepo(ctrl)
	gw := mocks.NewMockOnboardingGW(ctrl)
	uc := NewActivationUC(&models.Config{Activation: models.ActivationConfig{RankedPageSize: 10}}, repo, gw)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, gw
}

func openRegion(quota int) *models.Region {
	return &models.Region{ID: "region-1", Name: "Central", ActiveQuota: quota, Status: models.RegionStatusOpen}
}

func entry(applicant string, score int64, offset time.Duration) models.ActivationQueueEntry {
	return models.ActivationQueueEntry{
		ID:            "entry-" + applicant,
		ApplicantID:   applicant,
		RegionID:      "region-1",
		PriorityScore: score,
		AddedAt:       fixedNow.Add(offset),
	}
}

func promoted(e models.ActivationQueueEntry, _ time.Time) *models.DriverProfile {
	return &models.DriverProfile{ID: e.ApplicantID, RegionID: e.RegionID, Status: models.DriverStatusActive}
}

func TestEnqueue_Success(t *testing.T) {
	// Arrange
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.ActivationQueueEntry) error {
			assert.Equal(t, "app-1", e.ApplicantID)
			assert.Equal(t, int64(5), e.PriorityScore)
			assert.Equal(t, fixedNow, e.AddedAt)
			assert.NotEmpty(t, e.ID)
			return nil
		})

	// Act
	got, err := uc.Enqueue(context.Background(), "app-1", "region-1", 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "region-1", got.RegionID)
}

func TestEnqueue_Duplicate(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(models.ErrDuplicateEntry)

	_, err := uc.Enqueue(context.Background(), "app-1", "region-1", 5)

	assert.ErrorIs(t, err, models.ErrDuplicateEntry)
}

func TestEnqueue_UnknownRegion(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "nowhere").Return(nil, models.ErrRegionNotFound)

	_, err := uc.Enqueue(context.Background(), "app-1", "nowhere", 5)

	assert.ErrorIs(t, err, models.ErrRegionNotFound)
}

func TestEnqueue_MissingApplicant(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.Enqueue(context.Background(), " ", "region-1", 5)

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestHasCapacity(t *testing.T) {
	tests := []struct {
		name      string
		region    *models.Region
		occupancy int
		want      bool
	}{
		{"free slot", openRegion(2), 1, true},
		{"full", openRegion(2), 2, false},
		{"paused", &models.Region{ActiveQuota: 5, Status: models.RegionStatusPaused}, 0, false},
		{"closed", &models.Region{ActiveQuota: 5, Status: models.RegionStatusClosed}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTestUC(t)
			repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(tt.region, nil)
			repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(tt.occupancy, nil)

			got, err := uc.HasCapacity(context.Background(), "region-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapacity(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(5), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(3, nil)
	repo.EXPECT().QueueLength(gomock.Any(), "region-1").Return(7, nil)

	got, err := uc.Capacity(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Equal(t, 3, got.Occupancy)
	assert.Equal(t, 2, got.Available)
	assert.Equal(t, 7, got.Queued)
}

func TestTryPromote_PriorityThenArrivalOrder(t *testing.T) {
	// Arrange
	uc, repo, gw := newTestUC(t)
	a := entry("A", 10, 1*time.Second)
	b := entry("B", 10, 2*time.Second)
	c := entry("C", 20, 3*time.Second)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(3), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{c, a, b}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), gomock.Any(), "region-1").Return(nil).Times(3)

	var order []string
	repo.EXPECT().Promote(gomock.Any(), gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, e models.ActivationQueueEntry, now time.Time) (*models.DriverProfile, error) {
			order = append(order, e.ApplicantID)
			return promoted(e, now), nil
		}).Times(3)

	// Act
	result, err := uc.TryPromote(context.Background(), "region-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, order)
	assert.Equal(t, []string{"C", "A", "B"}, result.Promoted)
	assert.Empty(t, result.Skipped)
}

func TestTryPromote_StopsAtQuota(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	a1 := entry("A1", 5, time.Second)
	a2 := entry("A2", 9, 2*time.Second)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{a2, a1}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "A2", "region-1").Return(nil)
	repo.EXPECT().Promote(gomock.Any(), a2, fixedNow).Return(promoted(a2, fixedNow), nil)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"A2"}, result.Promoted)
}

func TestTryPromote_SkipsFailedPrerequisites(t *testing.T) {
	// Arrange
	uc, repo, gw := newTestUC(t)
	top := entry("top", 50, 0)
	next := entry("next", 40, 0)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{top, next}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "top", "region-1").
		Return(errors.Join(models.ErrPrerequisitesNotMet, errors.New("document expired")))
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "next", "region-1").Return(nil)
	repo.EXPECT().Promote(gomock.Any(), next, fixedNow).Return(promoted(next, fixedNow), nil)

	// Act
	result, err := uc.TryPromote(context.Background(), "region-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, result.Promoted)
	assert.Equal(t, []string{"top"}, result.Skipped)
}

func TestTryPromote_PagesPastSkippedEntries(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	uc.cfg.Activation.RankedPageSize = 1
	top := entry("top", 50, 0)
	next := entry("next", 40, 0)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(2), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	gomock.InOrder(
		repo.EXPECT().ListRanked(gomock.Any(), "region-1", 1, 0).Return([]models.ActivationQueueEntry{top}, nil),
		repo.EXPECT().ListRanked(gomock.Any(), "region-1", 1, 1).Return([]models.ActivationQueueEntry{next}, nil),
		repo.EXPECT().ListRanked(gomock.Any(), "region-1", 1, 1).Return(nil, nil),
	)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "top", "region-1").Return(models.ErrPrerequisitesNotMet)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "next", "region-1").Return(nil)
	repo.EXPECT().Promote(gomock.Any(), next, fixedNow).Return(promoted(next, fixedNow), nil)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, result.Promoted)
	assert.Equal(t, []string{"top"}, result.Skipped)
}

func TestTryPromote_LostRaceStops(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	e := entry("A", 1, 0)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{e}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "A", "region-1").Return(nil)
	repo.EXPECT().Promote(gomock.Any(), e, fixedNow).Return(nil, models.ErrCapacityExceeded)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Empty(t, result.Promoted)
	assert.Empty(t, result.Skipped)
}

func TestTryPromote_EntryTakenConcurrently(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	gone := entry("gone", 9, 0)
	next := entry("next", 5, 0)

	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{gone, next}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), gomock.Any(), "region-1").Return(nil).Times(2)
	repo.EXPECT().Promote(gomock.Any(), gone, fixedNow).Return(nil, models.ErrEntryNotFound)
	repo.EXPECT().Promote(gomock.Any(), next, fixedNow).Return(promoted(next, fixedNow), nil)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, result.Promoted)
	assert.Empty(t, result.Skipped)
}

func TestTryPromote_NoCapacityIsNoop(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(1, nil)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Empty(t, result.Promoted)
}

func TestTryPromote_EmptyQueueIsNoop(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(3), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return(nil, nil)

	result, err := uc.TryPromote(context.Background(), "region-1")

	require.NoError(t, err)
	assert.Empty(t, result.Promoted)
	assert.Empty(t, result.Skipped)
}

func TestTryPromote_OnboardingDown(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	e := entry("A", 1, 0)
	repo.EXPECT().GetRegion(gomock.Any(), "region-1").Return(openRegion(1), nil)
	repo.EXPECT().Occupancy(gomock.Any(), "region-1").Return(0, nil)
	repo.EXPECT().ListRanked(gomock.Any(), "region-1", 10, 0).Return([]models.ActivationQueueEntry{e}, nil)
	gw.EXPECT().CheckPrerequisites(gomock.Any(), "A", "region-1").Return(errors.New("connection refused"))

	_, err := uc.TryPromote(context.Background(), "region-1")

	assert.Error(t, err)
}

func TestDeactivateDriver(t *testing.T) {
	t.Run("active driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		repo.EXPECT().DeactivateDriver(gomock.Any(), "drv-1", fixedNow).
			Return(&models.DriverProfile{ID: "drv-1", RegionID: "region-1", Status: models.DriverStatusInactive}, nil)

		profile, err := uc.DeactivateDriver(context.Background(), "drv-1")

		require.NoError(t, err)
		assert.Equal(t, models.DriverStatusInactive, profile.Status)
	})

	t.Run("busy driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		repo.EXPECT().DeactivateDriver(gomock.Any(), "drv-1", fixedNow).Return(nil, models.ErrDriverBusy)

		_, err := uc.DeactivateDriver(context.Background(), "drv-1")

		assert.ErrorIs(t, err, models.ErrDriverBusy)
	})
}

func TestPositionAndMaintenance(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().GetPosition(gomock.Any(), "app-1").
		Return(&models.QueuePosition{ApplicantID: "app-1", Rank: 2, RegionName: "Central", TotalInRegion: 3}, nil)
	repo.EXPECT().UpdatePriority(gomock.Any(), "app-1", "region-1", int64(99)).Return(nil)
	repo.EXPECT().DeleteEntry(gomock.Any(), "app-1", "region-1").Return(models.ErrEntryNotFound)

	position, err := uc.Position(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, 2, position.Rank)

	assert.NoError(t, uc.UpdatePriority(context.Background(), "app-1", "region-1", 99))
	assert.ErrorIs(t, uc.Withdraw(context.Background(), "app-1", "region-1"), models.ErrEntryNotFound)
}
