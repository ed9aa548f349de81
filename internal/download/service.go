package download

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

// Service records install requests without acting on them
type Service struct {
	requests      map[string]*model.InstallRequest
	requestsMutex sync.RWMutex
	onUpdate      func(*model.InstallRequest) // callback for UI updates
	log           logger.Logger
	now           func() time.Time
}

// NewService creates a new install stub
func NewService(log logger.Logger) *Service {
	return &Service{
		requests: make(map[string]*model.InstallRequest),
		log:      logger.OrNoop(log),
		now:      time.Now,
	}
}

// SetUpdateCallback sets the callback function for request updates
func (s *Service) SetUpdateCallback(callback func(*model.InstallRequest)) {
	s.onUpdate = callback
}

// Request records a tap on the download control of card. A second request for
// a card with a pending request is queued behind it.
func (s *Service) Request(card model.GameCard) (*model.InstallRequest, error) {
	if card.ID == "" {
		return nil, fmt.Errorf("install request: card %q has no id", card.Title)
	}

	s.requestsMutex.Lock()
	status := model.InstallStatusPending
	for _, r := range s.requests {
		if r.CardID == card.ID && !r.Status.IsFinished() {
			status = model.InstallStatusQueued
			break
		}
	}

	req := &model.InstallRequest{
		ID:          generateRequestID(),
		CardID:      card.ID,
		Title:       card.Title,
		Status:      status,
		RequestedAt: s.now(),
	}
	s.requests[req.ID] = req
	s.requestsMutex.Unlock()

	s.log.Info("install requested: id=%s card=%s status=%s (installs are not implemented)", req.ID, card.ID, req.Status)
	s.notify(req)
	return req, nil
}

// GetRequest returns a request by ID
func (s *Service) GetRequest(id string) (*model.InstallRequest, bool) {
	s.requestsMutex.RLock()
	defer s.requestsMutex.RUnlock()
	req, exists := s.requests[id]
	return req, exists
}

// GetAllRequests returns all requests, oldest first
func (s *Service) GetAllRequests() []*model.InstallRequest {
	s.requestsMutex.RLock()
	out := make([]*model.InstallRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, r)
	}
	s.requestsMutex.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out
}

func (s *Service) notify(req *model.InstallRequest) {
	if s.onUpdate != nil {
		s.onUpdate(req)
	}
}

func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
