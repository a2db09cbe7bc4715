package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
)

// MemorySEOStore is an in-memory implementation of seo.Repository.
type MemorySEOStore struct {
	mu        sync.RWMutex
	byListing map[string]*seo.URL // listing_id -> record
	byFullURL map[string]*seo.URL // full_url -> record
}

// NewMemorySEOStore creates a new in-memory SEO URL store.
func NewMemorySEOStore() *MemorySEOStore {
	return &MemorySEOStore{
		byListing: make(map[string]*seo.URL),
		byFullURL: make(map[string]*seo.URL),
	}
}

func (m *MemorySEOStore) Save(_ context.Context, url *seo.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byListing[url.ListingID]; ok {
		return seo.ErrConflict
	}

	if _, ok := m.byFullURL[url.FullURL]; ok {
		return seo.ErrConflict
	}

	stored := *url
	m.byListing[url.ListingID] = &stored
	m.byFullURL[url.FullURL] = &stored

	return nil
}

func (m *MemorySEOStore) GetByListingID(_ context.Context, listingID string) (*seo.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.byListing[listingID]
	if !ok {
		return nil, seo.ErrNotFound
	}

	found := *url

	return &found, nil
}

func (m *MemorySEOStore) GetByFullURL(_ context.Context, fullURL string) (*seo.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.byFullURL[fullURL]
	if !ok {
		return nil, seo.ErrNotFound
	}

	found := *url

	return &found, nil
}

// MemoryProfileStore is an in-memory implementation of profile.Repository.
type MemoryProfileStore struct {
	mu          sync.RWMutex
	byID        map[uuid.UUID]*profile.Profile
	byProfileID map[string]*profile.Profile
}

// NewMemoryProfileStore creates a new in-memory profile store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{
		byID:        make(map[uuid.UUID]*profile.Profile),
		byProfileID: make(map[string]*profile.Profile),
	}
}

func (m *MemoryProfileStore) Save(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[p.ID]; ok {
		return profile.ErrConflict
	}

	if _, ok := m.byProfileID[p.ProfileID]; ok {
		return profile.ErrConflict
	}

	stored := *p
	m.byID[p.ID] = &stored
	m.byProfileID[p.ProfileID] = &stored

	return nil
}

func (m *MemoryProfileStore) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return found(m.byID[id])
}

func (m *MemoryProfileStore) GetByProfileID(_ context.Context, profileID string) (*profile.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return found(m.byProfileID[profileID])
}

func (m *MemoryProfileStore) FindByIDPrefix(_ context.Context, prefix string) (*profile.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix = strings.ToLower(prefix)

	var matches []*profile.Profile

	for id, p := range m.byID {
		if strings.HasPrefix(id.String(), prefix) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return nil, profile.ErrNotFound
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}

		return matches[i].ID.String() < matches[j].ID.String()
	})

	return found(matches[0])
}

func (m *MemoryProfileStore) ProfileIDExists(_ context.Context, profileID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byProfileID[profileID]

	return ok, nil
}

func found(p *profile.Profile) (*profile.Profile, error) {
	if p == nil {
		return nil, profile.ErrNotFound
	}

	cp := *p

	return &cp, nil
}
