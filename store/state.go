// Package store holds the observable state containers the rendering layer
// consumes: one store per business domain, owned by a single Root. Stores
// are the only writers of their state; readers take snapshots or subscribe
// to change notifications.
package store

import "sync"

// state is the base every domain store embeds. It provides mutex-guarded
// atomic commits, change notification, and an epoch counter so that a
// response arriving after the store has been reset (logout during an
// in-flight request) is dropped instead of resurrecting stale state.
type state struct {
	mu      sync.Mutex
	epoch   uint64
	subs    map[int]func()
	nextSub int
}

// Subscribe registers fn to run after every committed state change. The
// returned cancel is idempotent. fn runs outside the store lock and must
// not assume any relation to the change that triggered it; re-read a
// snapshot instead.
func (s *state) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *state) notifyLocked() []func() {
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

// begin applies a synchronous mutation (typically loading=true, error
// cleared) and returns the current epoch. A later commit carrying this
// epoch only lands if no reset happened in between.
func (s *state) begin(mutate func()) uint64 {
	s.mu.Lock()
	ep := s.epoch
	mutate()
	fns := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return ep
}

// commit applies mutate atomically if the store's epoch still equals ep.
// It reports false when the write was dropped because the store was reset
// after the matching begin.
func (s *state) commit(ep uint64, mutate func()) bool {
	s.mu.Lock()
	if s.epoch != ep {
		s.mu.Unlock()
		return false
	}
	mutate()
	fns := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return true
}

// mutate applies a synchronous state change that does not race a reset
// (direct UI-driven writes like clearing a search).
func (s *state) mutate(fn func()) {
	s.mu.Lock()
	fn()
	fns := s.notifyLocked()
	s.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

// reset bumps the epoch, invalidating every in-flight commit, and applies
// the store's return-to-initial-state mutation. Subscriptions survive a
// reset; the subscriber set belongs to the store, not the session.
func (s *state) reset(mutate func()) {
	s.mu.Lock()
	s.epoch++
	mutate()
	fns := s.notifyLocked()
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// read runs fn under the store lock; snapshot accessors use it.
func (s *state) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
