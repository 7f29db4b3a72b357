package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
	activationuc "github.com/piresc/kurir/services/activation/usecase"
	assignmentrepo "github.com/piresc/kurir/services/assignment/repository"
	assignmentuc "github.com/piresc/kurir/services/assignment/usecase"
	availabilityrepo "github.com/piresc/kurir/services/availability/repository"
	availabilityuc "github.com/piresc/kurir/services/availability/usecase"
	batchinguc "github.com/piresc/kurir/services/batching/usecase"
	"github.com/piresc/kurir/services/dispatch/gateway"
)

// world is an in-memory stand-in for Postgres. Every method holds the lock
// for its whole body, so each call behaves like one serialisable
// transaction.
type world struct {
	mu          sync.Mutex
	regions     map[string]models.Region
	entries     map[string]models.ActivationQueueEntry
	drivers     map[string]models.DriverProfile
	orders      map[string]models.Order
	assignments map[string]models.OrderAssignment
	batches     map[string]models.BatchedDelivery

	// beforeSaveBatch runs ahead of every SaveBatch, outside the lock
	beforeSaveBatch func()
}

func newWorld() *world {
	return &world{
		regions:     make(map[string]models.Region),
		entries:     make(map[string]models.ActivationQueueEntry),
		drivers:     make(map[string]models.DriverProfile),
		orders:      make(map[string]models.Order),
		assignments: make(map[string]models.OrderAssignment),
		batches:     make(map[string]models.BatchedDelivery),
	}
}

func (w *world) addRegion(r models.Region) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.regions[r.ID] = r
}

func (w *world) order(id string) models.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orders[id]
}

func (w *world) driver(id string) models.DriverProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.drivers[id]
}

func (w *world) assignmentsFor(orderID string) []models.OrderAssignment {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []models.OrderAssignment
	for _, a := range w.assignments {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Attempt < out[j].Attempt })
	return out
}

func (w *world) batchOf(driverID string) (models.BatchedDelivery, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.batches {
		if b.DriverID == driverID {
			return copyBatch(b), true
		}
	}
	return models.BatchedDelivery{}, false
}

// regions

func (w *world) GetRegion(ctx context.Context, regionID string) (*models.Region, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r, ok := w.regions[regionID]
	if !ok {
		return nil, models.ErrRegionNotFound
	}
	return &r, nil
}

func (w *world) FindRegionByGeohash(ctx context.Context, prefixes []string) (*models.Region, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var best *models.Region
	for _, r := range w.regions {
		for _, p := range prefixes {
			if r.GeoPrefix == p && (best == nil || len(r.GeoPrefix) > len(best.GeoPrefix)) {
				found := r
				best = &found
			}
		}
	}
	if best == nil {
		return nil, models.ErrRegionNotFound
	}
	return best, nil
}

// activation

func (w *world) occupancy(regionID string) int {
	n := 0
	for _, d := range w.drivers {
		if d.RegionID == regionID && d.Status.OccupiesSlot() {
			n++
		}
	}
	return n
}

func (w *world) Occupancy(ctx context.Context, regionID string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.occupancy(regionID), nil
}

func (w *world) QueueLength(ctx context.Context, regionID string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ranked(regionID)), nil
}

func (w *world) ranked(regionID string) []models.ActivationQueueEntry {
	var out []models.ActivationQueueEntry
	for _, e := range w.entries {
		if e.RegionID == regionID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Outranks(out[j]) })
	return out
}

func (w *world) InsertEntry(ctx context.Context, entry *models.ActivationQueueEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range w.entries {
		if e.ApplicantID == entry.ApplicantID && e.RegionID == entry.RegionID {
			return models.ErrDuplicateEntry
		}
	}
	w.entries[entry.ID] = *entry
	return nil
}

func (w *world) GetPosition(ctx context.Context, applicantID string) (*models.QueuePosition, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var earliest *models.ActivationQueueEntry
	for _, e := range w.entries {
		if e.ApplicantID != applicantID {
			continue
		}
		if earliest == nil || e.AddedAt.Before(earliest.AddedAt) {
			found := e
			earliest = &found
		}
	}
	if earliest == nil {
		return nil, models.ErrEntryNotFound
	}

	ranked := w.ranked(earliest.RegionID)
	position := &models.QueuePosition{
		ApplicantID:   applicantID,
		RegionID:      earliest.RegionID,
		RegionName:    w.regions[earliest.RegionID].Name,
		TotalInRegion: len(ranked),
	}
	for i, e := range ranked {
		if e.ID == earliest.ID {
			position.Rank = i + 1
		}
	}
	return position, nil
}

func (w *world) ListRanked(ctx context.Context, regionID string, limit, offset int) ([]models.ActivationQueueEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ranked := w.ranked(regionID)
	if offset >= len(ranked) {
		return nil, nil
	}
	ranked = ranked[offset:]
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (w *world) findEntry(applicantID, regionID string) (models.ActivationQueueEntry, bool) {
	for _, e := range w.entries {
		if e.ApplicantID == applicantID && e.RegionID == regionID {
			return e, true
		}
	}
	return models.ActivationQueueEntry{}, false
}

func (w *world) UpdatePriority(ctx context.Context, applicantID, regionID string, score int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.findEntry(applicantID, regionID)
	if !ok {
		return models.ErrEntryNotFound
	}
	e.PriorityScore = score
	w.entries[e.ID] = e
	return nil
}

func (w *world) DeleteEntry(ctx context.Context, applicantID, regionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.findEntry(applicantID, regionID)
	if !ok {
		return models.ErrEntryNotFound
	}
	delete(w.entries, e.ID)
	return nil
}

func (w *world) Promote(ctx context.Context, entry models.ActivationQueueEntry, now time.Time) (*models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	region, ok := w.regions[entry.RegionID]
	if !ok {
		return nil, models.ErrRegionNotFound
	}
	if !region.HasCapacity(w.occupancy(entry.RegionID)) {
		return nil, models.ErrCapacityExceeded
	}
	if _, ok := w.entries[entry.ID]; !ok {
		return nil, models.ErrEntryNotFound
	}
	if existing, ok := w.drivers[entry.ApplicantID]; ok && existing.Status.OccupiesSlot() {
		return nil, models.ErrDuplicateEntry
	}

	delete(w.entries, entry.ID)
	activatedAt := now
	driver := models.DriverProfile{
		ID:          entry.ApplicantID,
		RegionID:    entry.RegionID,
		Status:      models.DriverStatusActive,
		ActivatedAt: &activatedAt,
		UpdatedAt:   now,
	}
	w.drivers[driver.ID] = driver
	return &driver, nil
}

func (w *world) DeactivateDriver(ctx context.Context, driverID string, now time.Time) (*models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.drivers[driverID]
	if !ok {
		return nil, models.ErrDriverNotFound
	}
	switch d.Status {
	case models.DriverStatusBusy:
		return nil, models.ErrDriverBusy
	case models.DriverStatusInactive:
		return &d, nil
	}
	d.Status = models.DriverStatusInactive
	d.IsAvailable = false
	d.UpdatedAt = now
	w.drivers[driverID] = d
	return &d, nil
}

// availability

func (w *world) GetDriver(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.drivers[driverID]
	if !ok {
		return nil, models.ErrDriverNotFound
	}
	return &d, nil
}

func (w *world) GetDrivers(ctx context.Context, driverIDs []string) (map[string]models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]models.DriverProfile, len(driverIDs))
	for _, id := range driverIDs {
		if d, ok := w.drivers[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

func (w *world) ListOnline(ctx context.Context, regionID string, status models.DriverStatus) ([]models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []models.DriverProfile
	for _, d := range w.drivers {
		if d.RegionID == regionID && d.Status == status && d.IsAvailable && !d.Position.Timestamp.IsZero() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (w *world) missingOrInactive(driverID string) error {
	if _, ok := w.drivers[driverID]; !ok {
		return models.ErrDriverNotFound
	}
	return models.ErrNotActiveDriver
}

func (w *world) SetAvailability(ctx context.Context, driverID string, online bool, now time.Time) (*models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.drivers[driverID]
	if !ok || d.Status != models.DriverStatusActive {
		return nil, w.missingOrInactive(driverID)
	}
	d.IsAvailable = online
	d.UpdatedAt = now
	w.drivers[driverID] = d
	return &d, nil
}

func (w *world) UpdatePosition(ctx context.Context, driverID string, position models.Position, now time.Time) (*models.DriverProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	d, ok := w.drivers[driverID]
	if !ok || !d.Status.OccupiesSlot() {
		return nil, w.missingOrInactive(driverID)
	}
	if position.Timestamp.IsZero() {
		position.Timestamp = now
	}
	d.Position = position
	d.UpdatedAt = now
	w.drivers[driverID] = d
	return &d, nil
}

// assignment

func (w *world) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.orders[order.ID]; ok {
		return &existing, false, nil
	}
	stored := *order
	w.orders[order.ID] = stored
	return &stored, true, nil
}

func (w *world) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o, ok := w.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return &o, nil
}

func (w *world) liveOffer(orderID string) (models.OrderAssignment, bool) {
	for _, a := range w.assignments {
		if a.OrderID == orderID && a.Status == models.AssignmentStatusOffered {
			return a, true
		}
	}
	return models.OrderAssignment{}, false
}

func (w *world) MarkUnassignable(ctx context.Context, orderID string, now time.Time) (*models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o, ok := w.orders[orderID]
	if !ok || o.Status != models.OrderStatusPending || !o.DispatchState.Offerable() {
		return nil, models.ErrOrderNotDispatchable
	}
	if _, live := w.liveOffer(orderID); live {
		return nil, models.ErrOrderNotDispatchable
	}
	o.Status = models.OrderStatusUnassignable
	o.DispatchState = models.DispatchStateUnassignable
	o.UpdatedAt = now
	w.orders[orderID] = o
	return &o, nil
}

func (w *world) GetAssignment(ctx context.Context, assignmentID string) (*models.OrderAssignment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, ok := w.assignments[assignmentID]
	if !ok {
		return nil, models.ErrAssignmentNotFound
	}
	return &a, nil
}

func (w *world) ListOfferedDrivers(ctx context.Context, orderID string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, a := range w.assignments {
		if _, dup := seen[a.DriverID]; a.OrderID == orderID && !dup {
			seen[a.DriverID] = struct{}{}
			out = append(out, a.DriverID)
		}
	}
	return out, nil
}

func (w *world) ListOverdueOffers(ctx context.Context, now time.Time, limit int) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var due []models.OrderAssignment
	for _, a := range w.assignments {
		if a.Status == models.AssignmentStatusOffered && !a.ExpiresAt.After(now) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ExpiresAt.Before(due[j].ExpiresAt) })
	var ids []string
	for i := 0; i < len(due) && i < limit; i++ {
		ids = append(ids, due[i].ID)
	}
	return ids, nil
}

func (w *world) CreateOffer(ctx context.Context, assignment *models.OrderAssignment) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.drivers[assignment.DriverID]
	if !ok {
		return models.ErrDriverNotFound
	}
	if d.Status != models.DriverStatusActive || !d.IsAvailable {
		return models.ErrDriverUnavailable
	}
	o, ok := w.orders[assignment.OrderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	if o.Status != models.OrderStatusPending || !o.DispatchState.Offerable() {
		return models.ErrOrderNotDispatchable
	}
	if _, live := w.liveOffer(o.ID); live {
		return models.ErrOfferOutstanding
	}

	assignment.Attempt = o.OfferAttempts + 1
	assignment.Status = models.AssignmentStatusOffered
	assignment.CreatedAt = assignment.OfferedAt
	assignment.UpdatedAt = assignment.OfferedAt
	w.assignments[assignment.ID] = *assignment

	o.DispatchState = models.DispatchStateOffering
	o.OfferAttempts++
	o.UpdatedAt = assignment.OfferedAt
	w.orders[o.ID] = o
	return nil
}

func (w *world) Accept(ctx context.Context, assignmentID, driverID string, now time.Time) (*models.AcceptResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, ok := w.assignments[assignmentID]
	if !ok {
		return nil, models.ErrAssignmentNotFound
	}
	if a.DriverID != driverID {
		return nil, models.ErrNotAssignee
	}
	if a.Status != models.AssignmentStatusOffered || a.ExpiredAt(now) {
		return nil, models.ErrStaleAssignment
	}
	d, ok := w.drivers[driverID]
	if !ok {
		return nil, models.ErrDriverNotFound
	}
	if d.Status != models.DriverStatusActive || !d.IsAvailable {
		return nil, models.ErrDriverUnavailable
	}
	o := w.orders[a.OrderID]
	if o.Status != models.OrderStatusPending || !o.DispatchState.Offerable() {
		return nil, models.ErrStaleAssignment
	}

	responded := now
	a.Status = models.AssignmentStatusAccepted
	a.RespondedAt = &responded
	a.UpdatedAt = now
	w.assignments[a.ID] = a

	d.Status = models.DriverStatusBusy
	d.UpdatedAt = now
	w.drivers[driverID] = d

	assignee := driverID
	o.Status = models.OrderStatusAssigned
	o.DispatchState = models.DispatchStateCommitted
	o.DriverID = &assignee
	o.UpdatedAt = now
	w.orders[o.ID] = o

	result := &models.AcceptResult{Assignment: a, Order: o}
	result.Withdrawn = w.withdrawOffers(driverID, now)
	return result, nil
}

func (w *world) WithdrawDriverOffers(ctx context.Context, driverID string, now time.Time) ([]models.OrderAssignment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.withdrawOffers(driverID, now), nil
}

func (w *world) withdrawOffers(driverID string, now time.Time) []models.OrderAssignment {
	var withdrawn []models.OrderAssignment
	for id, other := range w.assignments {
		if other.DriverID != driverID || other.Status != models.AssignmentStatusOffered {
			continue
		}
		responded := now
		other.Status = models.AssignmentStatusWithdrawn
		other.RespondedAt = &responded
		other.UpdatedAt = now
		w.assignments[id] = other
		withdrawn = append(withdrawn, other)

		reopened := w.orders[other.OrderID]
		if reopened.DispatchState == models.DispatchStateOffering || reopened.DispatchState == models.DispatchStateReoffering {
			reopened.DispatchState = models.DispatchStateReoffering
			reopened.UpdatedAt = now
			w.orders[reopened.ID] = reopened
		}
	}
	return withdrawn
}

func (w *world) Resolve(ctx context.Context, assignmentID string, status models.AssignmentStatus, driverID string, now time.Time) (*models.OrderAssignment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a, ok := w.assignments[assignmentID]
	if !ok {
		return nil, models.ErrAssignmentNotFound
	}
	switch status {
	case models.AssignmentStatusRejected:
		if a.DriverID != driverID {
			return nil, models.ErrNotAssignee
		}
		if a.Status != models.AssignmentStatusOffered || a.ExpiredAt(now) {
			return nil, models.ErrStaleAssignment
		}
		responded := now
		a.RespondedAt = &responded
	case models.AssignmentStatusExpired:
		if a.Status != models.AssignmentStatusOffered || !a.ExpiredAt(now) {
			return nil, models.ErrStaleAssignment
		}
	default:
		return nil, models.ErrInvalidInput
	}
	a.Status = status
	a.UpdatedAt = now
	w.assignments[a.ID] = a

	o := w.orders[a.OrderID]
	if o.DispatchState == models.DispatchStateOffering || o.DispatchState == models.DispatchStateReoffering {
		o.DispatchState = models.DispatchStateReoffering
		o.UpdatedAt = now
		w.orders[o.ID] = o
	}
	return &a, nil
}

func (w *world) hasAccepted(driverID string) bool {
	for _, a := range w.assignments {
		if a.DriverID == driverID && a.Status == models.AssignmentStatusAccepted {
			return true
		}
	}
	return false
}

func (w *world) release(driverID string, now time.Time) bool {
	d := w.drivers[driverID]
	if d.Status != models.DriverStatusBusy || w.hasAccepted(driverID) {
		return false
	}
	d.Status = models.DriverStatusActive
	d.UpdatedAt = now
	w.drivers[driverID] = d
	return true
}

func (w *world) Cancel(ctx context.Context, orderID string, now time.Time) (*models.CancelResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	o, ok := w.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	switch o.Status {
	case models.OrderStatusCanceled:
		return &models.CancelResult{Order: o}, nil
	case models.OrderStatusDelivered:
		return nil, models.ErrOrderNotDispatchable
	}

	result := &models.CancelResult{}
	for id, a := range w.assignments {
		if a.OrderID != orderID {
			continue
		}
		switch a.Status {
		case models.AssignmentStatusOffered:
			responded := now
			a.Status = models.AssignmentStatusWithdrawn
			a.RespondedAt = &responded
			a.UpdatedAt = now
			w.assignments[id] = a
			withdrawn := a
			result.Withdrawn = &withdrawn
		case models.AssignmentStatusAccepted:
			a.Status = models.AssignmentStatusCanceled
			a.UpdatedAt = now
			w.assignments[id] = a
			canceled := a
			result.Canceled = &canceled
		}
	}
	if result.Canceled != nil {
		result.DriverReleased = w.release(result.Canceled.DriverID, now)
	}

	o.Status = models.OrderStatusCanceled
	o.DispatchState = models.DispatchStateCanceled
	o.UpdatedAt = now
	w.orders[orderID] = o
	result.Order = o
	return result, nil
}

func (w *world) MarkPickedUp(ctx context.Context, orderID, driverID string, now time.Time) (*models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	o, ok := w.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	if o.DriverID == nil || *o.DriverID != driverID {
		return nil, models.ErrNotAssignee
	}
	switch o.Status {
	case models.OrderStatusPickedUp:
		return &o, nil
	case models.OrderStatusAssigned:
	default:
		return nil, models.ErrOrderNotDispatchable
	}
	pickedUp := now
	o.Status = models.OrderStatusPickedUp
	o.PickedUpAt = &pickedUp
	o.UpdatedAt = now
	w.orders[orderID] = o
	return &o, nil
}

func (w *world) Complete(ctx context.Context, orderID, driverID string, now time.Time) (*models.CompletionResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	o, ok := w.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	if o.Status != models.OrderStatusAssigned && o.Status != models.OrderStatusPickedUp {
		return nil, models.ErrOrderNotDispatchable
	}
	if o.DriverID == nil || *o.DriverID != driverID {
		return nil, models.ErrNotAssignee
	}

	result := &models.CompletionResult{}
	found := false
	for id, a := range w.assignments {
		if a.OrderID == orderID && a.DriverID == driverID && a.Status == models.AssignmentStatusAccepted {
			a.Status = models.AssignmentStatusCompleted
			a.UpdatedAt = now
			w.assignments[id] = a
			result.Assignment = a
			found = true
		}
	}
	if !found {
		return nil, models.ErrAssignmentNotFound
	}

	o.Status = models.OrderStatusDelivered
	o.UpdatedAt = now
	w.orders[orderID] = o

	d := w.drivers[driverID]
	d.TotalDeliveries++
	w.drivers[driverID] = d
	result.DriverReleased = w.release(driverID, now)
	return result, nil
}

// batching

func (w *world) GetDriverLoad(ctx context.Context, driverID string) (*models.DriverLoad, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.drivers[driverID]
	if !ok {
		return nil, models.ErrDriverNotFound
	}
	load := &models.DriverLoad{Driver: d, Orders: w.activeOrders(driverID)}
	if b, ok := w.openBatch(driverID); ok {
		open := copyBatch(b)
		load.Batch = &open
	}
	return load, nil
}

func (w *world) activeOrders(driverID string) []models.Order {
	orders := make([]models.Order, 0)
	for _, o := range w.orders {
		if o.DriverID != nil && *o.DriverID == driverID &&
			(o.Status == models.OrderStatusAssigned || o.Status == models.OrderStatusPickedUp) {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
	return orders
}

func (w *world) openBatch(driverID string) (models.BatchedDelivery, bool) {
	for _, b := range w.batches {
		if b.DriverID == driverID && b.Status != models.BatchStatusCompleted {
			return b, true
		}
	}
	return models.BatchedDelivery{}, false
}

func (w *world) CommitBatch(ctx context.Context, commit models.BatchCommit, now time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	driverID := commit.Assignment.DriverID
	d, ok := w.drivers[driverID]
	if !ok {
		return models.ErrDriverNotFound
	}
	if d.Status != models.DriverStatusBusy {
		return models.ErrBatchConflict
	}

	if !w.loadIs(driverID, commit.ExpectedLoad) {
		return models.ErrBatchConflict
	}

	o, ok := w.orders[commit.Assignment.OrderID]
	if !ok {
		return models.ErrOrderNotFound
	}
	if o.Status != models.OrderStatusPending || o.DispatchState != models.DispatchStatePending {
		return models.ErrOrderNotDispatchable
	}

	if err := w.writeBatch(commit.Batch); err != nil {
		return err
	}

	w.assignments[commit.Assignment.ID] = commit.Assignment
	assignee := driverID
	o.Status = models.OrderStatusAssigned
	o.DispatchState = models.DispatchStateCommitted
	o.DriverID = &assignee
	o.UpdatedAt = now
	w.orders[o.ID] = o
	return nil
}

func (w *world) SaveBatch(ctx context.Context, batch *models.BatchedDelivery, expectedLoad []string) error {
	if w.beforeSaveBatch != nil {
		w.beforeSaveBatch()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.drivers[batch.DriverID]; !ok {
		return models.ErrDriverNotFound
	}
	if !w.loadIs(batch.DriverID, expectedLoad) {
		return models.ErrBatchConflict
	}
	return w.writeBatch(*batch)
}

func (w *world) loadIs(driverID string, expected []string) bool {
	current := make([]string, 0)
	for _, o := range w.activeOrders(driverID) {
		current = append(current, o.ID)
	}
	want := append([]string(nil), expected...)
	sort.Strings(current)
	sort.Strings(want)
	return strings.Join(current, ",") == strings.Join(want, ",")
}

func (w *world) writeBatch(batch models.BatchedDelivery) error {
	if open, ok := w.openBatch(batch.DriverID); ok && open.ID != batch.ID {
		return models.ErrBatchConflict
	}
	w.batches[batch.ID] = copyBatch(batch)
	return nil
}

func copyBatch(b models.BatchedDelivery) models.BatchedDelivery {
	b.OrderSequence = append([]string(nil), b.OrderSequence...)
	b.Orders = append([]models.BatchOrder(nil), b.Orders...)
	b.Route.Stops = append([]models.RouteStop(nil), b.Route.Stops...)
	b.Route.Legs = append([]models.RouteLeg(nil), b.Route.Legs...)
	return b
}

// collaborators

type approveAll struct{}

func (approveAll) CheckPrerequisites(ctx context.Context, applicantID, regionID string) error {
	return nil
}

// straightLineRouting answers with haversine legs at a constant speed
type straightLineRouting struct {
	speedKmh float64
}

func (r straightLineRouting) Route(ctx context.Context, waypoints []models.Location) (*models.Route, error) {
	route := &models.Route{}
	for i := 1; i < len(waypoints); i++ {
		km := utils.DistanceKm(waypoints[i-1], waypoints[i])
		route.Legs = append(route.Legs, models.RouteLeg{
			DistanceKm: km,
			Duration:   time.Duration(km / r.speedKmh * float64(time.Hour)),
		})
	}
	return route, nil
}

type published struct {
	name string
	data interface{}
}

// outbox records everything sent to NATS and NSQ
type outbox struct {
	mu   sync.Mutex
	sent []published
}

func (o *outbox) Publish(subject string, v interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, published{name: subject, data: v})
	return nil
}

func (o *outbox) PublishAsync(topic string, message interface{}) error {
	return o.Publish(topic, message)
}

func (o *outbox) all(name string) []interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []interface{}
	for _, p := range o.sent {
		if p.name == name {
			out = append(out, p.data)
		}
	}
	return out
}

type harness struct {
	world        *world
	outbox       *outbox
	activationUC *activationuc.ActivationUC
	dispatch     *DispatchUC
}

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			OfferWindow:         time.Minute,
			SearchRadiusKm:      5,
			CandidatePageSize:   10,
			ExpirySweepInterval: 5 * time.Second,
		},
		Batching: models.BatchingConfig{
			MaxBatchSize:     3,
			MaxDetourKm:      3,
			MaxDetourMinutes: 15,
			SearchRadiusKm:   5,
			StopServiceTime:  2 * time.Minute,
			FallbackSpeedKmh: 25,
		},
		Payout:     models.PayoutConfig{BaseFee: 4.5, PerKm: 1.75, BatchBonus: 2},
		Activation: models.ActivationConfig{RankedPageSize: 10},
	}
}

// newHarness wires the real components over the in-memory world, with
// miniredis behind the geo index and the offer expiry schedule
func newHarness(t *testing.T, cfg *models.Config) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = redisClient.Close() })

	w := newWorld()
	out := &outbox{}
	gw := gateway.NewDispatchGW(out, out, nil)

	activation := activationuc.NewActivationUC(cfg, w, approveAll{})
	availability := availabilityuc.NewAvailabilityUC(cfg, w, availabilityrepo.NewGeoRepository(redisClient))
	assignment := assignmentuc.NewAssignmentUC(cfg, w, assignmentrepo.NewExpiryRepository(redisClient),
		availability, gw, nil)
	batching := batchinguc.NewBatchingUC(cfg, w, straightLineRouting{speedKmh: 25}, availability, nil)

	return &harness{
		world:        w,
		outbox:       out,
		activationUC: activation,
		dispatch:     NewDispatchUC(cfg, activation, availability, assignment, batching, gw, nil),
	}
}
