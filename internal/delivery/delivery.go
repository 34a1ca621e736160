package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"resty.dev/v3"
)

const (
	// DelhiveryBaseURL is the base URL for Delhivery's tracking API
	DelhiveryBaseURL = "https://track.delhivery.com"

	CarrierDelhivery = "delhivery"
)

var (
	ErrUnsupportedCarrier = errors.New("unsupported carrier")
	ErrShipmentNotFound   = errors.New("shipment not found")
)

// TrackingProvider fetches the live status of a shipment from a carrier.
type TrackingProvider interface {
	Name() string
	TrackShipment(ctx context.Context, awb string) (*TrackingResult, error)
}

type DelhiveryService struct {
	client *resty.Client
}

type DelhiveryOptions struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
	// RetryWait is the initial backoff; resty doubles it up to 2s between attempts.
	RetryWait time.Duration
}

func NewDelhiveryService(opts DelhiveryOptions) *DelhiveryService {
	if opts.BaseURL == "" {
		opts.BaseURL = DelhiveryBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 200 * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json")
	if opts.Token != "" {
		client.SetHeader("Authorization", "Token "+opts.Token)
	}

	return &DelhiveryService{client: client}
}

func (s *DelhiveryService) Name() string {
	return CarrierDelhivery
}

// Close releases the underlying HTTP client.
func (s *DelhiveryService) Close() error {
	return s.client.Close()
}

// Registry resolves carrier names from uploaded documents ("Delhivery",
// "XpressBees", "Shadowfax", ...) to tracking providers.
type Registry struct {
	providers      map[string]TrackingProvider
	defaultCarrier string
}

func NewRegistry(defaultCarrier string, providers ...TrackingProvider) *Registry {
	r := &Registry{
		providers:      make(map[string]TrackingProvider, len(providers)),
		defaultCarrier: CarrierKey(defaultCarrier),
	}
	for _, p := range providers {
		r.providers[CarrierKey(p.Name())] = p
	}
	return r
}

// CarrierKey folds a carrier name into the key used for lookups and cache keys.
func CarrierKey(name string) string {
	return slug.Make(name)
}

// Provider returns the provider for name; an empty name selects the default carrier.
func (r *Registry) Provider(name string) (TrackingProvider, error) {
	key := CarrierKey(name)
	if key == "" {
		key = r.defaultCarrier
	}

	p, ok := r.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCarrier, name)
	}
	return p, nil
}
