package viewstate

import (
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/app/services/core/patients"
	"patient-viewer-service/internal/pkg/dto/requests"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Screen int

const (
	ScreenNone Screen = iota
	ScreenList
	ScreenDetail
)

// Session is the state of one viewer: what every screen reads (search term,
// retrieve count, refresh key) and the controller of the mounted screen.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.Mutex
	searchTerm    string
	retrieveCount int
	refreshKey    int
	screen        Screen
	list          *patients.ListController
	detail        *patients.DetailController

	client contracts.PatientFhirClient
	log    *zap.Logger
}

func newSession(id string, retrieveCount int, client contracts.PatientFhirClient, logger *zap.Logger) *Session {
	return &Session{
		ID:            id,
		CreatedAt:     time.Now(),
		retrieveCount: retrieveCount,
		client:        client,
		log:           logger,
	}
}

// ListParams is the snapshot the list screen syncs against.
func (s *Session) ListParams() requests.PatientListParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return requests.PatientListParams{
		RetrieveCount: s.retrieveCount,
		RefreshKey:    s.refreshKey,
		SearchTerm:    s.searchTerm,
	}
}

func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

func (s *Session) SetRetrieveCount(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retrieveCount = count
}

// Refresh bumps the refresh key so the next list sync fetches again.
func (s *Session) Refresh() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshKey++
	return s.refreshKey
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// MountList returns the list controller, building a fresh one when another
// screen was mounted. Data never survives a screen change.
func (s *Session) MountList() contracts.PatientListController {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == ScreenList && s.list != nil {
		return s.list
	}
	s.unmountLocked()
	s.list = patients.NewListController(s.client, s.log, s.retrieveCount)
	s.screen = ScreenList
	return s.list
}

func (s *Session) MountDetail() contracts.PatientDetailController {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == ScreenDetail && s.detail != nil {
		return s.detail
	}
	s.unmountLocked()
	s.detail = patients.NewDetailController(s.client, s.log)
	s.screen = ScreenDetail
	return s.detail
}

// MountedDetail returns the detail controller only if it is the mounted screen.
func (s *Session) MountedDetail() (contracts.PatientDetailController, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenDetail || s.detail == nil {
		return nil, false
	}
	return s.detail, true
}

func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountLocked()
}

func (s *Session) unmountLocked() {
	if s.list != nil {
		s.list.Close()
		s.list = nil
	}
	if s.detail != nil {
		s.detail.Close()
		s.detail = nil
	}
	s.screen = ScreenNone
}
