package viewstate

import (
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/metrics"
	"patient-viewer-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Store keeps viewer sessions in memory. Each access slides the expiry.
type Store struct {
	Log                  *zap.Logger
	Client               contracts.PatientFhirClient
	DefaultRetrieveCount int
	Metrics              *metrics.Metrics

	mu    sync.Mutex
	cache *cache.Cache
}

func NewStore(client contracts.PatientFhirClient, logger *zap.Logger, ttl time.Duration, defaultRetrieveCount int, m *metrics.Metrics) *Store {
	cleanupInterval := ttl / 2
	if cleanupInterval < time.Second {
		cleanupInterval = time.Second
	}

	store := &Store{
		Log:                  logger,
		Client:               client,
		DefaultRetrieveCount: defaultRetrieveCount,
		Metrics:              m,
		cache:                cache.New(ttl, cleanupInterval),
	}
	store.cache.OnEvicted(store.onEvicted)
	return store
}

func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	item, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	session, ok := item.(*Session)
	if !ok {
		return nil, false
	}
	s.cache.Set(id, session, cache.DefaultExpiration)
	return session, true
}

// GetOrCreate returns the session for id, or a new one when id is unknown or
// expired. The boolean reports whether a session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, found := s.Get(id); found {
		return session, false
	}

	session := newSession(utils.GenerateSessionID(), s.DefaultRetrieveCount, s.Client, s.Log)
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
	s.reportCount()

	s.Log.Info("viewstate.Store created session",
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int(constvars.LoggingRetrieveCountKey, s.DefaultRetrieveCount),
	)
	return session, true
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Stop unmounts every session and empties the store.
func (s *Store) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.cache.Items() {
		if session, ok := item.Object.(*Session); ok {
			session.Close()
		}
	}
	s.cache.Flush()
	s.reportCount()
}

func (s *Store) onEvicted(id string, item interface{}) {
	if session, ok := item.(*Session); ok {
		session.Close()
	}
	s.reportCount()
	s.Log.Debug("viewstate.Store evicted session", zap.String(constvars.LoggingSessionIDKey, id))
}

func (s *Store) reportCount() {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ActiveSessions.Set(float64(s.cache.ItemCount()))
}
