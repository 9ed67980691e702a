package services

import (
	"errors"
	"sync"
	"time"

	"filmapp/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultPaymentRetention is how long a confirmed or cancelled flow stays readable.
	DefaultPaymentRetention = 15 * time.Minute
	// DefaultPaymentMaxAge bounds how long an unfinished flow may stay open.
	DefaultPaymentMaxAge = time.Hour
)

var ErrFlowNotFound = errors.New("payment flow not found")

// PaymentSessions tracks the open payment flows of the HTTP surface by id. Finished
// flows are dropped after the retention period and stale unfinished flows are
// cancelled; both happen whenever a new flow starts.
type PaymentSessions struct {
	mu          sync.RWMutex
	flows       map[string]*PaymentFlow
	delay       time.Duration
	retention   time.Duration
	maxAge      time.Duration
	logger      *logrus.Logger
	onConfirmed func(models.PaymentSummary)
}

func NewPaymentSessions(delay time.Duration, logger *logrus.Logger, onConfirmed func(models.PaymentSummary)) *PaymentSessions {
	return &PaymentSessions{
		flows:       make(map[string]*PaymentFlow),
		delay:       delay,
		retention:   DefaultPaymentRetention,
		maxAge:      DefaultPaymentMaxAge,
		logger:      logger,
		onConfirmed: onConfirmed,
	}
}

func (s *PaymentSessions) Start() *PaymentFlow {
	flow := NewPaymentFlow(PaymentConfig{
		Delay:       s.delay,
		Logger:      s.logger,
		OnConfirmed: s.onConfirmed,
	})

	s.mu.Lock()
	stale := s.sweep(time.Now())
	s.flows[flow.ID()] = flow
	s.mu.Unlock()

	for _, f := range stale {
		f.Cancel()
	}

	s.logger.WithField("flow_id", flow.ID()).Info("Payment flow started")
	return flow
}

// sweep drops expired flows and returns the unfinished ones that still need
// cancelling. Callers hold s.mu.
func (s *PaymentSessions) sweep(now time.Time) []*PaymentFlow {
	var stale []*PaymentFlow
	for id, flow := range s.flows {
		if finished, ok := flow.Finished(); ok {
			if now.Sub(finished) >= s.retention {
				delete(s.flows, id)
			}
			continue
		}
		if now.Sub(flow.StartedAt()) >= s.maxAge {
			delete(s.flows, id)
			stale = append(stale, flow)
		}
	}

	if len(stale) > 0 {
		s.logger.WithField("count", len(stale)).Info("Expired stale payment flows")
	}
	return stale
}

func (s *PaymentSessions) Get(id string) (*PaymentFlow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flow, ok := s.flows[id]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

// End cancels the flow if it is still pending and forgets it.
func (s *PaymentSessions) End(id string) error {
	s.mu.Lock()
	flow, ok := s.flows[id]
	delete(s.flows, id)
	s.mu.Unlock()

	if !ok {
		return ErrFlowNotFound
	}
	flow.Cancel()
	return nil
}

// Close cancels every open flow.
func (s *PaymentSessions) Close() {
	s.mu.Lock()
	flows := s.flows
	s.flows = make(map[string]*PaymentFlow)
	s.mu.Unlock()

	for _, flow := range flows {
		flow.Cancel()
	}
}

func (s *PaymentSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}
