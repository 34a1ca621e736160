package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/katatrina/sellerops-BE/internal/cache"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/delivery"
	"github.com/katatrina/sellerops-BE/internal/notification"
	"github.com/katatrina/sellerops-BE/internal/status"
)

// fakeStore keeps rows in memory. Methods not overridden panic through the
// nil embedded interface.
type fakeStore struct {
	db.Store

	mu      sync.Mutex
	orders  map[uuid.UUID]db.Order
	returns map[uuid.UUID]db.Return
	applied []db.ApplyTrackingTxParams
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:  make(map[uuid.UUID]db.Order),
		returns: make(map[uuid.UUID]db.Return),
	}
}

func (s *fakeStore) GetOrderByID(ctx context.Context, id uuid.UUID) (db.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return db.Order{}, db.ErrRecordNotFound
	}
	return order, nil
}

func (s *fakeStore) GetReturnByID(ctx context.Context, id uuid.UUID) (db.Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret, ok := s.returns[id]
	if !ok {
		return db.Return{}, db.ErrRecordNotFound
	}
	return ret, nil
}

func (s *fakeStore) ApplyTrackingTx(ctx context.Context, arg db.ApplyTrackingTxParams) (db.ApplyTrackingTxResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applied = append(s.applied, arg)

	var result db.ApplyTrackingTxResult
	var err error
	switch arg.EntityType {
	case status.EntityTypeOrder:
		order, ok := s.orders[arg.ID]
		if !ok {
			return result, db.ErrRecordNotFound
		}
		result.SellerID = order.SellerID
		if result.Before, err = order.Entity(); err != nil {
			return result, err
		}
		order.Document = patchDocument(order.Document, arg.TrackingData, func(doc map[string]any) {
			doc["normalizedStatus"] = string(arg.NormalizedStatus)
		})
		s.orders[arg.ID] = order
		result.After, err = order.Entity()
	case status.EntityTypeReturn:
		ret, ok := s.returns[arg.ID]
		if !ok {
			return result, db.ErrRecordNotFound
		}
		result.SellerID = ret.SellerID
		if result.Before, err = ret.Entity(); err != nil {
			return result, err
		}
		ret.Document = patchDocument(ret.Document, arg.TrackingData, func(doc map[string]any) {
			normalized, _ := doc["normalized"].(map[string]any)
			if normalized == nil {
				normalized = map[string]any{}
			}
			normalized["status"] = string(arg.NormalizedStatus)
			doc["normalized"] = normalized
		})
		s.returns[arg.ID] = ret
		result.After, err = ret.Entity()
	}
	return result, err
}

func patchDocument(raw []byte, trackingData []byte, mutate func(map[string]any)) []byte {
	var doc map[string]any
	_ = json.Unmarshal(raw, &doc)
	var td map[string]any
	_ = json.Unmarshal(trackingData, &td)
	doc["trackingData"] = td
	mutate(doc)
	out, _ := json.Marshal(doc)
	return out
}

type fakeProvider struct {
	name   string
	result *delivery.TrackingResult
	err    error
	calls  int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) TrackShipment(ctx context.Context, awb string) (*delivery.TrackingResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	result := *p.result
	result.AWB = awb
	return &result, nil
}

type fakeCache struct {
	entries map[string]*delivery.TrackingResult
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*delivery.TrackingResult)}
}

func (c *fakeCache) Get(ctx context.Context, carrier, awb string) (*delivery.TrackingResult, error) {
	result, ok := c.entries[cache.TrackingKey("tracking", carrier, awb)]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return result, nil
}

func (c *fakeCache) Set(ctx context.Context, result *delivery.TrackingResult, ttl time.Duration) error {
	c.sets++
	c.entries[cache.TrackingKey("tracking", result.Carrier, result.AWB)] = result
	return nil
}

type fakeDistributor struct {
	syncs         []*PayloadSyncShipment
	notifications []*PayloadSendNotification
	err           error
}

func (d *fakeDistributor) DistributeTaskSyncShipment(ctx context.Context, payload *PayloadSyncShipment, opts ...asynq.Option) error {
	if d.err != nil {
		return d.err
	}
	d.syncs = append(d.syncs, payload)
	return nil
}

func (d *fakeDistributor) DistributeTaskSendNotification(ctx context.Context, payload *PayloadSendNotification, opts ...asynq.Option) error {
	if d.err != nil {
		return d.err
	}
	d.notifications = append(d.notifications, payload)
	return nil
}

type fakeNotifier struct {
	sent []*notification.Notification
	err  error
}

func (n *fakeNotifier) SendNotification(ctx context.Context, notification *notification.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}
