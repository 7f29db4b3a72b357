package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/kurir/internal/pkg/models"
	activationmocks "github.com/piresc/kurir/services/activation/mocks"
	assignmentmocks "github.com/piresc/kurir/services/assignment/mocks"
	availabilitymocks "github.com/piresc/kurir/services/availability/mocks"
	batchingmocks "github.com/piresc/kurir/services/batching/mocks"
	"github.com/piresc/kurir/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	activation   *activationmocks.MockActivationUC
	availability *availabilitymocks.MockAvailabilityUC
	assignment   *assignmentmocks.MockAssignmentUC
	batching     *batchingmocks.MockBatchingUC
	gw           *mocks.MockDispatchGW
}

func newTestUC(t *testing.T) (*DispatchUC, testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		activation:   activationmocks.NewMockActivationUC(ctrl),
		availability: availabilitymocks.NewMockAvailabilityUC(ctrl),
		assignment:   assignmentmocks.NewMockAssignmentUC(ctrl),
		batching:     batchingmocks.NewMockBatchingUC(ctrl),
		gw:           mocks.NewMockDispatchGW(ctrl),
	}
	uc := NewDispatchUC(&models.Config{}, deps.activation, deps.availability, deps.assignment,
		deps.batching, deps.gw, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:            "order-1",
		RegionID:      "region-1",
		Status:        models.OrderStatusPending,
		DispatchState: models.DispatchStatePending,
	}
}

func readyEvent() models.OrderReadyEvent {
	return models.OrderReadyEvent{OrderID: "order-1", RegionID: "region-1"}
}

func TestHandleOrderReady_OffersWhenNothingFolds(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	offer := &models.OrderAssignment{ID: "asg-1", OrderID: "order-1", DriverID: "driver-1"}

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(pendingOrder(), nil)
	deps.batching.EXPECT().TryAbsorb(ctx, gomock.Any()).Return(nil, nil)
	deps.assignment.EXPECT().Dispatch(ctx, "order-1").Return(offer, nil)

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	require.NoError(t, err)
	assert.Equal(t, offer, outcome.Offer)
	assert.Nil(t, outcome.Batch)
	assert.False(t, outcome.Unassignable)
	assert.Equal(t, models.DispatchStateOffering, outcome.Order.DispatchState)
}

func TestHandleOrderReady_FoldsOntoBusyDriver(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	driverID := "driver-1"
	absorbed := &models.Absorption{
		Order: models.Order{ID: "order-1", Status: models.OrderStatusAssigned, DispatchState: models.DispatchStateCommitted, DriverID: &driverID},
		Batch: models.BatchedDelivery{
			ID:       "batch-1",
			DriverID: "driver-1",
			Status:   models.BatchStatusInProgress,
			Route:    models.OptimizedRoute{Stops: []models.RouteStop{{OrderID: "order-0"}, {OrderID: "order-1"}}},
		},
		Assignment: models.OrderAssignment{ID: "asg-9", OrderID: "order-1", DriverID: "driver-1", Payout: 6.2},
	}

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(pendingOrder(), nil)
	deps.batching.EXPECT().TryAbsorb(ctx, gomock.Any()).Return(absorbed, nil)
	deps.gw.EXPECT().PublishAssignmentAccepted(ctx, models.AssignmentAcceptedEvent{
		AssignmentID: "asg-9",
		OrderID:      "order-1",
		DriverID:     "driver-1",
		Payout:       6.2,
		Batched:      true,
		AcceptedAt:   fixedNow,
	}).Return(nil)
	deps.gw.EXPECT().PublishBatchUpdated(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.BatchUpdatedEvent) error {
			assert.Equal(t, "batch-1", event.BatchID)
			assert.Len(t, event.Stops, 2)
			return nil
		})

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	require.NoError(t, err)
	require.NotNil(t, outcome.Batch)
	assert.Equal(t, "batch-1", outcome.Batch.ID)
	assert.Nil(t, outcome.Offer)
	require.NotNil(t, outcome.Order.DriverID)
	assert.Equal(t, "driver-1", *outcome.Order.DriverID)
}

func TestHandleOrderReady_Unassignable(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(pendingOrder(), nil)
	deps.batching.EXPECT().TryAbsorb(ctx, gomock.Any()).Return(nil, nil)
	deps.assignment.EXPECT().Dispatch(ctx, "order-1").Return(nil, models.ErrNoCandidatesAvailable)

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	require.NoError(t, err)
	assert.True(t, outcome.Unassignable)
	assert.Equal(t, models.DispatchStateUnassignable, outcome.Order.DispatchState)
}

func TestHandleOrderReady_BatchingErrorFallsBackToOffer(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(pendingOrder(), nil)
	deps.batching.EXPECT().TryAbsorb(ctx, gomock.Any()).Return(nil, errors.New("redis down"))
	deps.assignment.EXPECT().Dispatch(ctx, "order-1").Return(&models.OrderAssignment{ID: "asg-1"}, nil)

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	require.NoError(t, err)
	assert.NotNil(t, outcome.Offer)
}

func TestHandleOrderReady_Redelivery(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	order := pendingOrder()
	order.DispatchState = models.DispatchStateOffering

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(order, nil)

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	require.NoError(t, err)
	assert.Nil(t, outcome.Offer)
	assert.Equal(t, models.DispatchStateOffering, outcome.Order.DispatchState)
}

func TestHandleOrderReady_DispatchFails(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	deps.assignment.EXPECT().RegisterOrder(ctx, readyEvent()).Return(pendingOrder(), nil)
	deps.batching.EXPECT().TryAbsorb(ctx, gomock.Any()).Return(nil, nil)
	deps.assignment.EXPECT().Dispatch(ctx, "order-1").Return(nil, dbErr)

	outcome, err := uc.HandleOrderReady(ctx, readyEvent())

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, outcome)
}

func TestHandleOrderCanceled(t *testing.T) {
	t.Run("accepted delivery gets a compensating intent", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()
		canceled := &models.OrderAssignment{ID: "asg-1", OrderID: "order-1", DriverID: "driver-1", Payout: 5}

		deps.assignment.EXPECT().Cancel(ctx, "order-1", "customer").
			Return(&models.CancelResult{Canceled: canceled, DriverReleased: true}, nil)
		deps.gw.EXPECT().PublishDeliveryCanceled(ctx, models.DeliveryCanceledIntent{
			AssignmentID: "asg-1",
			OrderID:      "order-1",
			DriverID:     "driver-1",
			Payout:       5,
			Reason:       "customer",
			CanceledAt:   fixedNow,
		}).Return(nil)
		deps.batching.EXPECT().RemoveOrder(ctx, "driver-1", "order-1").Return(nil, nil)

		result, err := uc.HandleOrderCanceled(ctx, models.OrderCanceledEvent{OrderID: "order-1", Reason: "customer"})

		require.NoError(t, err)
		assert.True(t, result.DriverReleased)
	})

	t.Run("offered order only withdraws", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()

		deps.assignment.EXPECT().Cancel(ctx, "order-1", "restaurant").
			Return(&models.CancelResult{Withdrawn: &models.OrderAssignment{ID: "asg-1"}}, nil)

		result, err := uc.HandleOrderCanceled(ctx, models.OrderCanceledEvent{OrderID: "order-1", Reason: "restaurant"})

		require.NoError(t, err)
		assert.NotNil(t, result.Withdrawn)
	})
}

func TestHandleOrderPickedUp_RecomputesBatch(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	batch := &models.BatchedDelivery{ID: "batch-1", DriverID: "driver-1"}

	deps.assignment.EXPECT().MarkPickedUp(ctx, "order-1", "driver-1").Return(&models.Order{ID: "order-1"}, nil)
	deps.batching.EXPECT().Recompute(ctx, "driver-1").Return(batch, nil)
	deps.gw.EXPECT().PublishBatchUpdated(ctx, gomock.Any()).Return(nil)

	order, err := uc.HandleOrderPickedUp(ctx, models.OrderPickedUpEvent{OrderID: "order-1", DriverID: "driver-1"})

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestHandleDeliveryCompleted(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.assignment.EXPECT().CompleteDelivery(ctx, "order-1", "driver-1").Return(&models.CompletionResult{
		Assignment:     models.OrderAssignment{ID: "asg-1", Payout: 7.5},
		DriverReleased: true,
	}, nil)
	deps.gw.EXPECT().PublishDeliveryCompleted(ctx, models.DeliveryCompletedIntent{
		AssignmentID: "asg-1",
		OrderID:      "order-1",
		DriverID:     "driver-1",
		Payout:       7.5,
		CompletedAt:  fixedNow,
	}).Return(errors.New("nsqd down"))
	deps.batching.EXPECT().RemoveOrder(ctx, "driver-1", "order-1").Return(nil, models.ErrBatchNotFound)

	result, err := uc.HandleDeliveryCompleted(ctx, models.DeliveryCompletedEvent{OrderID: "order-1", DriverID: "driver-1"})

	require.NoError(t, err)
	assert.True(t, result.DriverReleased)
}

func TestHandleOfferResponse(t *testing.T) {
	t.Run("accept publishes", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()
		responded := fixedNow.Add(-10 * time.Second)

		deps.assignment.EXPECT().Accept(ctx, "asg-1", "driver-1").Return(&models.AcceptResult{
			Assignment: models.OrderAssignment{ID: "asg-1", OrderID: "order-1", DriverID: "driver-1", RespondedAt: &responded},
		}, nil)
		deps.gw.EXPECT().PublishAssignmentAccepted(ctx, models.AssignmentAcceptedEvent{
			AssignmentID: "asg-1",
			OrderID:      "order-1",
			DriverID:     "driver-1",
			AcceptedAt:   responded,
		}).Return(nil)

		err := uc.HandleOfferResponse(ctx, models.OfferResponseEvent{AssignmentID: "asg-1", DriverID: "driver-1", Accepted: true})

		assert.NoError(t, err)
	})

	t.Run("stale accept is dropped", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()

		deps.assignment.EXPECT().Accept(ctx, "asg-1", "driver-1").Return(nil, models.ErrStaleAssignment)

		err := uc.HandleOfferResponse(ctx, models.OfferResponseEvent{AssignmentID: "asg-1", DriverID: "driver-1", Accepted: true})

		assert.NoError(t, err)
	})

	t.Run("reject by another driver", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()

		deps.assignment.EXPECT().Reject(ctx, "asg-1", "driver-2").Return(nil, models.ErrNotAssignee)

		err := uc.HandleOfferResponse(ctx, models.OfferResponseEvent{AssignmentID: "asg-1", DriverID: "driver-2"})

		assert.ErrorIs(t, err, models.ErrNotAssignee)
	})
}

func TestAcceptOffer_RequiresIDs(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.AcceptOffer(context.Background(), "", "driver-1")

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSweepExpiredOffers(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	storeErr := errors.New("deadlock detected")

	deps.assignment.EXPECT().DueOffers(ctx, defaultSweepBatch).Return([]string{"asg-1", "asg-2", "asg-3"}, nil)
	deps.assignment.EXPECT().Expire(ctx, "asg-1").Return(&models.OfferResolution{}, nil)
	deps.assignment.EXPECT().Expire(ctx, "asg-2").Return(nil, models.ErrStaleAssignment)
	deps.assignment.EXPECT().Expire(ctx, "asg-3").Return(nil, storeErr)

	handled, err := uc.SweepExpiredOffers(ctx)

	assert.Equal(t, 2, handled)
	assert.ErrorIs(t, err, storeErr)
}

func TestHandleDriverStatus(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	pos := &models.Position{Location: models.Location{Latitude: 1, Longitude: 1}}

	deps.availability.EXPECT().SetOnline(ctx, "driver-1", pos).Return(&models.DriverProfile{ID: "driver-1", IsAvailable: true}, nil)
	deps.availability.EXPECT().SetOffline(ctx, "driver-1").Return(&models.DriverProfile{ID: "driver-1"}, nil)
	deps.assignment.EXPECT().WithdrawDriverOffers(ctx, "driver-1", models.WithdrawReasonDriverOffline).
		Return([]models.OrderAssignment{{ID: "asg-1", OrderID: "order-1", DriverID: "driver-1"}}, nil)

	online, err := uc.HandleDriverStatus(ctx, models.DriverStatusEvent{DriverID: "driver-1", Online: true, Position: pos})
	require.NoError(t, err)
	assert.True(t, online.IsAvailable)

	offline, err := uc.HandleDriverStatus(ctx, models.DriverStatusEvent{DriverID: "driver-1"})
	require.NoError(t, err)
	assert.False(t, offline.IsAvailable)

	_, err = uc.HandleDriverStatus(ctx, models.DriverStatusEvent{Online: true})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestHandleDriverDeactivated_PromotesIntoFreedSlot(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.activation.EXPECT().DeactivateDriver(ctx, "driver-1").
		Return(&models.DriverProfile{ID: "driver-1", RegionID: "region-1", Status: models.DriverStatusInactive}, nil)
	deps.availability.EXPECT().Evict(ctx, "driver-1", "region-1").Return(errors.New("redis timeout"))
	deps.assignment.EXPECT().WithdrawDriverOffers(ctx, "driver-1", models.WithdrawReasonDriverDeactivated).
		Return(nil, errors.New("db down"))
	deps.activation.EXPECT().TryPromote(ctx, "region-1").Return(&models.PromotionResult{
		RegionID: "region-1",
		Promoted: []string{"app-1"},
		Skipped:  []string{"app-0"},
	}, nil)
	deps.gw.EXPECT().PublishDriverActivated(ctx, models.DriverActivatedEvent{
		DriverID: "app-1", RegionID: "region-1", At: fixedNow,
	}).Return(nil)

	result, err := uc.HandleDriverDeactivated(ctx, "driver-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"app-1"}, result.Promoted)
}

func TestHandleDriverStatus_OfflineFailureKeepsOffers(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.availability.EXPECT().SetOffline(ctx, "driver-1").Return(nil, models.ErrNotActiveDriver)

	_, err := uc.HandleDriverStatus(ctx, models.DriverStatusEvent{DriverID: "driver-1"})

	assert.ErrorIs(t, err, models.ErrNotActiveDriver)
}

func TestHandleDriverDeactivated_Busy(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.activation.EXPECT().DeactivateDriver(ctx, "driver-1").Return(nil, models.ErrDriverBusy)

	_, err := uc.HandleDriverDeactivated(ctx, "driver-1")

	assert.ErrorIs(t, err, models.ErrDriverBusy)
}

func TestHandleApplicantReady(t *testing.T) {
	t.Run("promotion failure does not fail enqueue", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()
		entry := &models.ActivationQueueEntry{ApplicantID: "app-1", RegionID: "region-1", PriorityScore: 3}

		deps.activation.EXPECT().Enqueue(ctx, "app-1", "region-1", int64(3)).Return(entry, nil)
		deps.activation.EXPECT().TryPromote(ctx, "region-1").Return(nil, errors.New("lock timeout"))

		got, err := uc.HandleApplicantReady(ctx, models.ApplicantReadyEvent{ApplicantID: "app-1", RegionID: "region-1", PriorityScore: 3})

		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("partial promotion still announces", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()

		deps.activation.EXPECT().Enqueue(ctx, "app-2", "region-1", int64(1)).
			Return(&models.ActivationQueueEntry{ApplicantID: "app-2"}, nil)
		deps.activation.EXPECT().TryPromote(ctx, "region-1").
			Return(&models.PromotionResult{RegionID: "region-1", Promoted: []string{"app-2"}}, errors.New("onboarding timeout"))
		deps.gw.EXPECT().PublishDriverActivated(ctx, gomock.Any()).Return(nil)

		_, err := uc.HandleApplicantReady(ctx, models.ApplicantReadyEvent{ApplicantID: "app-2", RegionID: "region-1", PriorityScore: 1})

		assert.NoError(t, err)
	})

	t.Run("duplicate", func(t *testing.T) {
		uc, deps := newTestUC(t)
		ctx := context.Background()

		deps.activation.EXPECT().Enqueue(ctx, "app-1", "region-1", int64(0)).Return(nil, models.ErrDuplicateEntry)

		_, err := uc.HandleApplicantReady(ctx, models.ApplicantReadyEvent{ApplicantID: "app-1", RegionID: "region-1"})

		assert.ErrorIs(t, err, models.ErrDuplicateEntry)
	})
}

func TestWithdrawApplicant(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.activation.EXPECT().Withdraw(ctx, "app-1", "region-1").Return(nil)
	deps.activation.EXPECT().TryPromote(ctx, "region-1").Return(&models.PromotionResult{RegionID: "region-1"}, nil)

	assert.NoError(t, uc.WithdrawApplicant(ctx, "app-1", "region-1"))
}
