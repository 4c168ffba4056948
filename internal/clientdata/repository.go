// Package clientdata provides process-lifetime caching for external API client responses.
// Entries carry an expiration timestamp for cache-first behavior, and expired
// entries stay readable through Get so callers can serve stale data when a
// live call fails.
package clientdata

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Table names used by the provider services.
const (
	TableCompanyInfo = "company_info"
	TableQuotes      = "quotes"
	TableHistory     = "history"
	TableNews        = "news"
)

// AllTables lists all tables for cleanup operations.
var AllTables = []string{
	TableCompanyInfo,
	TableQuotes,
	TableHistory,
	TableNews,
}

// validTables is a set for O(1) table name validation.
var validTables = func() map[string]bool {
	m := make(map[string]bool, len(AllTables))
	for _, t := range AllTables {
		m[t] = true
	}
	return m
}()

type entry struct {
	value     any
	expiresAt time.Time
}

// Repository provides cache operations for client data.
// It is safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	tables map[string]map[string]entry
	now    func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository creates a new client data repository.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		tables: make(map[string]map[string]entry, len(AllTables)),
		now:    time.Now,
	}
	for _, t := range AllTables {
		r.tables[t] = make(map[string]entry)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func validateTable(table string) error {
	if !validTables[table] {
		return fmt.Errorf("invalid table name: %s", table)
	}
	return nil
}

// Store saves data with expiration = now + ttl, replacing any existing entry.
func (r *Repository) Store(table, key string, data any, ttl time.Duration) error {
	if err := validateTable(table); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[table][key] = entry{value: data, expiresAt: r.now().Add(ttl)}
	return nil
}

// GetIfFresh returns data only if it has not expired.
// Returns nil, false if the key doesn't exist or data is expired.
// Use Get() to retrieve stale data as a fallback when API calls fail.
func (r *Repository) GetIfFresh(table, key string) (any, bool) {
	if validateTable(table) != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tables[table][key]
	if !ok || !r.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Get returns data regardless of expiration status.
func (r *Repository) Get(table, key string) (any, bool) {
	if validateTable(table) != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.tables[table][key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Delete removes a specific entry.
func (r *Repository) Delete(table, key string) error {
	if err := validateTable(table); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables[table], key)
	return nil
}

// DeleteByPrefix removes all entries whose key starts with prefix.
// Returns the number of entries deleted.
func (r *Repository) DeleteByPrefix(table, prefix string) (int, error) {
	if err := validateTable(table); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := 0
	for key := range r.tables[table] {
		if strings.HasPrefix(key, prefix) {
			delete(r.tables[table], key)
			deleted++
		}
	}
	return deleted, nil
}

// DeleteExpired removes all expired entries from table.
// Returns the number of entries deleted.
func (r *Repository) DeleteExpired(table string) (int, error) {
	if err := validateTable(table); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	deleted := 0
	for key, e := range r.tables[table] {
		if !now.Before(e.expiresAt) {
			delete(r.tables[table], key)
			deleted++
		}
	}
	return deleted, nil
}

// DeleteAllExpired removes all expired entries from all tables.
// Returns a map of table name to number of entries deleted.
func (r *Repository) DeleteAllExpired() (map[string]int, error) {
	results := make(map[string]int, len(AllTables))
	for _, table := range AllTables {
		deleted, err := r.DeleteExpired(table)
		if err != nil {
			return results, fmt.Errorf("failed to delete expired from %s: %w", table, err)
		}
		results[table] = deleted
	}
	return results, nil
}

// Len returns the number of entries in table, fresh or stale.
func (r *Repository) Len(table string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables[table])
}

// GetFreshAs is GetIfFresh with a typed result. A value of the wrong type is
// treated as a miss.
func GetFreshAs[T any](r *Repository, table, key string) (T, bool) {
	var zero T
	v, ok := r.GetIfFresh(table, key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetStaleAs is Get with a typed result.
func GetStaleAs[T any](r *Repository, table, key string) (T, bool) {
	var zero T
	v, ok := r.Get(table, key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
