package store

import (
	"math"
	"strings"
	"sync"

	"asset-catalog-api/internal/models"
)

// coordEpsilon is the tolerance window for coordinate equality. Two records
// whose latitudes AND longitudes each differ by less than this are considered
// the same asset. The comparison is pairwise against stored records only, not
// transitive clustering.
const coordEpsilon = 0.0001

// AddResult reports the outcome of one Add call.
type AddResult struct {
	Added             []models.AssetRecord
	DuplicatesSkipped int
}

// Store is the in-memory authoritative asset collection, keyed by company
// identifier. A company key always maps to a non-empty bucket; buckets that
// empty out are removed, so "never seen" and "all deleted" are the same state.
//
// All operations are guarded by a single RWMutex: Add and Delete are
// read-modify-write over a bucket plus the company order, and readers must
// never observe a partially mutated bucket.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]models.AssetRecord
	order   []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{buckets: make(map[string][]models.AssetRecord)}
}

// Add inserts each record, in order, into the company's bucket unless a record
// already stored before this call matches it within tolerance. Records within
// the same batch are not compared against each other. Add never fails; the
// bucket is created on first use.
func (s *Store) Add(companyID string, records []models.AssetRecord) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[companyID]
	// Snapshot of what was stored before this batch; later batch members are
	// deliberately not compared against earlier ones.
	existing := bucket[:len(bucket):len(bucket)]

	result := AddResult{Added: []models.AssetRecord{}}
	for _, record := range records {
		if containsDuplicate(existing, record) {
			result.DuplicatesSkipped++
			continue
		}
		bucket = append(bucket, record)
		result.Added = append(result.Added, record)
	}

	if len(bucket) > 0 {
		if _, seen := s.buckets[companyID]; !seen {
			s.order = append(s.order, companyID)
		}
		s.buckets[companyID] = bucket
	}
	return result
}

// List returns every stored record tagged with its owning company. With an
// empty filter it walks every bucket in company insertion order; otherwise the
// filter is a case-insensitive substring match against company identifiers.
// The result is always a fresh slice, never nil and never an error.
func (s *Store) List(filter string) []models.CompanyAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter)
	assets := []models.CompanyAsset{}
	for _, companyID := range s.order {
		if filter != "" && !strings.Contains(strings.ToLower(companyID), needle) {
			continue
		}
		for _, record := range s.buckets[companyID] {
			assets = append(assets, models.CompanyAsset{AssetRecord: record, CompanyID: companyID})
		}
	}
	return assets
}

// Delete removes every record in the company's bucket whose coordinates fall
// within tolerance of the given point and reports the first removed record.
// Returns false when the company has no bucket or nothing matches. A bucket
// left empty is removed from the store entirely.
func (s *Store) Delete(companyID string, latitude, longitude float64) (models.AssetRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[companyID]
	if !ok {
		return models.AssetRecord{}, false
	}

	target := models.AssetRecord{Latitude: latitude, Longitude: longitude}
	var first models.AssetRecord
	found := false
	remaining := bucket[:0:0]
	for _, record := range bucket {
		if withinTolerance(record, target) {
			if !found {
				first = record
				found = true
			}
			continue
		}
		remaining = append(remaining, record)
	}

	if !found {
		return models.AssetRecord{}, false
	}

	if len(remaining) == 0 {
		delete(s.buckets, companyID)
		s.removeFromOrder(companyID)
	} else {
		s.buckets[companyID] = remaining
	}
	return first, true
}

// Companies returns the identifiers currently holding at least one record, in
// first-seen order.
func (s *Store) Companies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	companies := make([]string, len(s.order))
	copy(companies, s.order)
	return companies
}

// TotalCount returns the number of records across all buckets.
func (s *Store) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, bucket := range s.buckets {
		total += len(bucket)
	}
	return total
}

// Seed pre-populates the store, bypassing duplicate suppression. Intended for
// loading sample data into a fresh process.
func (s *Store) Seed(assets []models.CompanyAsset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, asset := range assets {
		if _, seen := s.buckets[asset.CompanyID]; !seen {
			s.order = append(s.order, asset.CompanyID)
		}
		s.buckets[asset.CompanyID] = append(s.buckets[asset.CompanyID], asset.AssetRecord)
	}
}

func (s *Store) removeFromOrder(companyID string) {
	for i, id := range s.order {
		if id == companyID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func containsDuplicate(bucket []models.AssetRecord, record models.AssetRecord) bool {
	for _, stored := range bucket {
		if withinTolerance(stored, record) {
			return true
		}
	}
	return false
}

func withinTolerance(a, b models.AssetRecord) bool {
	return math.Abs(a.Latitude-b.Latitude) < coordEpsilon &&
		math.Abs(a.Longitude-b.Longitude) < coordEpsilon
}
