package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entity names a resource kind; mutations invalidate every key of their kind.
type Entity string

const (
	EntityUser          Entity = "auth/user"
	EntityMentors       Entity = "mentors"
	EntityNotes         Entity = "notes"
	EntityEvents        Entity = "events"
	EntityClubs         Entity = "clubs"
	EntityOpportunities Entity = "opportunities"
	EntityProjectsIfp   Entity = "projects-ifp"
	EntityLinks         Entity = "links"
	EntityDiscussions   Entity = "discussions"
)

// StaleError is returned alongside the last good value when a refetch fails.
type StaleError struct {
	Key       string
	FetchedAt time.Time
	Err       error
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("serving stale %s from %s: %v", e.Key, e.FetchedAt.Format(time.RFC3339), e.Err)
}

func (e *StaleError) Unwrap() error { return e.Err }

// IsStale reports whether err carries a usable stale value.
func IsStale(err error) bool {
	var se *StaleError
	return errors.As(err, &se)
}

type entry struct {
	body      []byte
	fetchedAt time.Time
	stale     bool
}

// Cache stores raw response bodies keyed by entity and canonical query.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	gens    map[Entity]uint64 // bumped by Invalidate
	group   singleflight.Group
	maxAge  time.Duration
	now     func() time.Time
}

// NewCache creates a cache. maxAge <= 0 keeps entries until invalidated.
func NewCache(maxAge time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[Entity]uint64),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Key builds the cache key for an entity and its filter parameters.
// url.Values.Encode sorts by key, so equal filters give equal keys.
func Key(entity Entity, query url.Values) string {
	if len(query) == 0 {
		return string(entity)
	}
	return string(entity) + "?" + query.Encode()
}

// entityOf is the entity part of a key built by Key
func entityOf(key string) Entity {
	entity, _, _ := strings.Cut(key, "?")
	return Entity(entity)
}

// Get returns the cached body for key, fetching it at most once across
// concurrent callers when missing or stale. Failed fetches are never cached;
// if an older body exists it is returned with a *StaleError.
//
// A fetch that overlaps an Invalidate of its entity is stored stale, and
// callers arriving after the Invalidate start a new fetch. ctx only bounds
// this caller's wait; the shared fetch keeps running for the others.
func (c *Cache) Get(ctx context.Context, key string, fetch func() ([]byte, error)) ([]byte, error) {
	entity := entityOf(key)

	c.mu.RLock()
	e, ok := c.entries[key]
	fresh := ok && !e.stale && (c.maxAge <= 0 || c.now().Sub(e.fetchedAt) < c.maxAge)
	gen := c.gens[entity]
	c.mu.RUnlock()
	if fresh {
		return e.body, nil
	}

	flight := fmt.Sprintf("%s#%d", key, gen)
	ch := c.group.DoChan(flight, func() (interface{}, error) {
		body, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		outdated := c.gens[entity] != gen
		// never replace a fresh body from a newer fetch
		if cur, ok := c.entries[key]; !outdated || !ok || cur.stale {
			c.entries[key] = &entry{body: body, fetchedAt: c.now(), stale: outdated}
		}
		c.mu.Unlock()
		return body, nil
	})

	var err error
	select {
	case res := <-ch:
		if res.Err == nil {
			return res.Val.([]byte), nil
		}
		err = res.Err
	case <-ctx.Done():
		err = ctx.Err()
	}

	c.mu.RLock()
	prev, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return prev.body, &StaleError{Key: key, FetchedAt: prev.fetchedAt, Err: err}
	}
	return nil, err
}

// Invalidate marks every key of the entity stale. Stale bodies stay around
// as the fallback for a failing refetch.
func (c *Cache) Invalidate(entities ...Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entity := range entities {
		c.gens[entity]++
	}
	for key, e := range c.entries {
		for _, entity := range entities {
			if entityOf(key) == entity {
				e.stale = true
			}
		}
	}
}

// Len reports the number of cached keys
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
