// Package store holds the client's cached list of users and the state of the
// list fetch. The list is only changed through the operations below, each
// applied after the matching remote call succeeded.
package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
)

var ErrNotFound = errors.New("user not in list")

// Phase is the stage of the list fetch.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Errored
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// FetchState is the tagged fetch status. Message is set only when Errored.
type FetchState struct {
	Phase   Phase
	Message string
}

// Snapshot is an immutable view of the store at one version.
type Snapshot struct {
	Users   []models.User
	State   FetchState
	Version uint64
}

type Store struct {
	mu      sync.RWMutex
	users   []models.User
	state   FetchState
	version uint64
}

func New() *Store {
	return &Store{users: []models.User{}}
}

// Snapshot returns the current list and fetch state. Every list change
// replaces the backing slice, so the returned slice is never written to.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Users: s.users, State: s.state, Version: s.version}
}

// Users returns a copy of the cached list.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// Find returns the cached user with id.
func (s *Store) Find(id models.ID) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}

func (s *Store) State() FetchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// BeginLoad marks a fetch as running. The cached list is kept.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FetchState{Phase: Loading}
	s.version++
}

// Fail records a failed fetch. The cached list is kept.
func (s *Store) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FetchState{Phase: Errored, Message: message}
	s.version++
}

// Refresh replaces the whole list with the result of a successful fetch.
func (s *Store) Refresh(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = slices.Clone(users)
	if s.users == nil {
		s.users = []models.User{}
	}
	s.state = FetchState{Phase: Loaded}
	s.version++
}

// InsertFront prepends a newly created user.
func (s *Store) InsertFront(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, u)
	s.users = append(next, s.users...)
	s.version++
}

// Replace substitutes the entry whose id matches, keeping its position.
func (s *Store) Replace(id models.ID, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Clone(s.users)
	next[i] = u
	s.users = next
	s.version++
	return nil
}

// Remove drops the entry whose id matches.
func (s *Store) Remove(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = slices.Delete(slices.Clone(s.users), i, i+1)
	s.version++
	return nil
}

func (s *Store) indexOf(id models.ID) int {
	return slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
}
