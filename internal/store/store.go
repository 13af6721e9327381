package store

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/avc-dev/url-registry/internal/model"
)

// URLMap maps short codes to stored mappings
type URLMap = map[model.Code]model.URLMapping

// UserMap maps usernames to user records
type UserMap = map[string]model.User

// Store is the in-memory backend. Every conditional insert is a
// check-and-set under the write lock.
type Store struct {
	urls  URLMap
	users UserMap
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		urls:  make(URLMap),
		users: make(UserMap),
	}
}

func (s *Store) InsertURL(_ context.Context, mapping model.URLMapping) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.urls[mapping.Code]; exists {
		return fmt.Errorf("key %s: %w", mapping.Code, ErrAlreadyExists)
	}

	s.urls[mapping.Code] = mapping
	return nil
}

func (s *Store) GetURL(_ context.Context, code model.Code) (model.URLMapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	mapping, ok := s.urls[code]
	if !ok {
		return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return mapping, nil
}

// ScanURLs yields a snapshot of the table ordered by code
func (s *Store) ScanURLs(_ context.Context) iter.Seq2[model.URLMapping, error] {
	s.mutex.RLock()
	mappings := slices.SortedFunc(maps.Values(s.urls), func(a, b model.URLMapping) int {
		return cmp.Compare(a.Code, b.Code)
	})
	s.mutex.RUnlock()

	return func(yield func(model.URLMapping, error) bool) {
		for _, m := range mappings {
			if !yield(m, nil) {
				return
			}
		}
	}
}

func (s *Store) DeleteURL(_ context.Context, code model.Code) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.urls[code]; !ok {
		return fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	delete(s.urls, code)
	return nil
}

func (s *Store) CountURLsByOwner(_ context.Context, owner string) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	for _, m := range s.urls {
		if m.Owner == owner {
			count++
		}
	}
	return count, nil
}

func (s *Store) InsertUser(_ context.Context, user model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return fmt.Errorf("user %s: %w", user.Username, ErrAlreadyExists)
	}

	s.users[user.Username] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, username string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	return user, nil
}

// ScanUsers yields a snapshot of the users table ordered by username
func (s *Store) ScanUsers(_ context.Context) iter.Seq2[model.User, error] {
	s.mutex.RLock()
	users := slices.SortedFunc(maps.Values(s.users), func(a, b model.User) int {
		return cmp.Compare(a.Username, b.Username)
	})
	s.mutex.RUnlock()

	return func(yield func(model.User, error) bool) {
		for _, u := range users {
			if !yield(u, nil) {
				return
			}
		}
	}
}

func (s *Store) DeleteUser(_ context.Context, username string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[username]; !ok {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	delete(s.users, username)
	return nil
}

func (s *Store) UpdateUserField(_ context.Context, username string, field model.UserField, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[username]
	if !ok {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	if err := field.Apply(&user, value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	s.users[username] = user
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// InitializeWith loads records without the existence check.
// Used when restoring from a file.
func (s *Store) InitializeWith(urls URLMap, users UserMap) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	maps.Copy(s.urls, urls)
	maps.Copy(s.users, users)
}

// restoreUser overwrites a user record unconditionally
func (s *Store) restoreUser(user model.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.users[user.Username] = user
}

// restoreURL overwrites a mapping unconditionally
func (s *Store) restoreURL(mapping model.URLMapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.urls[mapping.Code] = mapping
}

func (s *Store) snapshot() ([]model.URLMapping, []model.User) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	urls := slices.SortedFunc(maps.Values(s.urls), func(a, b model.URLMapping) int {
		return cmp.Compare(a.Code, b.Code)
	})
	users := slices.SortedFunc(maps.Values(s.users), func(a, b model.User) int {
		return cmp.Compare(a.Username, b.Username)
	})
	return urls, users
}
