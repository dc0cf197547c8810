package stream

import "sync"

// outcome is the single resolution of one pending request.
type outcome struct {
	resp *Response
	err  error
}

// sessionState is the only mutable state shared between the two dispatcher
// goroutines and concurrent callers. Every access goes through mu, and mu is
// never held across a blocking operation.
type sessionState struct {
	mu      sync.Mutex
	closed  bool
	nextID  uint64
	pending map[uint64]chan outcome
}

func newSessionState() *sessionState {
	return &sessionState{
		nextID:  1,
		pending: make(map[uint64]chan outcome),
	}
}

// register allocates the next correlation id and inserts the completion
// channel into the pending table. Fails if the session already closed.
func (s *sessionState) register(ch chan outcome) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	id := s.nextID
	s.nextID++
	s.pending[id] = ch
	return id, nil
}

// take removes and returns the completion channel for id, if one is still
// outstanding.
func (s *sessionState) take(id uint64) (chan outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	return ch, ok
}

// drop removes the pending entry for id without resolving it. Used on the
// timeout and cancellation paths so an abandoned request never leaks.
func (s *sessionState) drop(id uint64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// shutdown marks the session closed and empties the pending table, returning
// the channels that still await a resolution. Called exactly once, by the
// inbound dispatcher on termination.
func (s *sessionState) shutdown() []chan outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	remaining := make([]chan outcome, 0, len(s.pending))
	for _, ch := range s.pending {
		remaining = append(remaining, ch)
	}
	s.pending = make(map[uint64]chan outcome)
	return remaining
}

// isClosed reads the closed flag under the lock.
func (s *sessionState) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
