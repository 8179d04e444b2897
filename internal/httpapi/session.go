package httpapi

import (
	"sync"

	"github.com/lox/pokercore/internal/engine"
)

// session is the adapter-owned record mapping a game_id to the
// replayable (seed, history) pair plus session-scoped budgets that are
// not recovered by jump. Grounded on the design note that the core
// never generates or depends on game_id: the adapter owns this entirely.
type session struct {
	seed          uint64
	mode          engine.Mode
	tier          string
	targetScore   *int
	history       []engine.Action
	hintBudget    int
	hintRemaining int
	jumpBudget    int
	jumpRemaining int

	state *engine.GameState

	mu       sync.Mutex
	events   []engine.Event
	watchers map[chan engine.Event]struct{}
}

// appendEvents records events for replay via GET /game/{id}/events and
// fans each one out to any open websocket watcher. Events already
// buffered before a watcher connects are replayed to it first.
func (s *session) appendEvents(events []engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	for ch := range s.watchers {
		for _, e := range events {
			select {
			case ch <- e:
			default:
			}
		}
	}
}

func (s *session) subscribe() (chan engine.Event, []engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchers == nil {
		s.watchers = make(map[chan engine.Event]struct{})
	}
	ch := make(chan engine.Event, 64)
	s.watchers[ch] = struct{}{}
	backlog := append([]engine.Event(nil), s.events...)
	return ch, backlog
}

func (s *session) unsubscribe(ch chan engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watchers, ch)
	close(ch)
}

// sessionStore is a concurrency-safe game_id -> session map. One
// process may serve many concurrent games; apply calls within a
// session are still strictly serialized by the per-session lock the
// caller takes before mutating.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (s *sessionStore) put(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
