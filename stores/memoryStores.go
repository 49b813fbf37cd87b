package stores

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"vital-be/models"
)

// In-memory stores back STORE_BACKEND=memory and the tests. Records are copied on the way in
// and out so callers never share state with the store.

type MemoryAuthorityStore struct {
	mu      sync.RWMutex
	byID    map[string]models.Authority
	byEmail map[string]string
}

func NewMemoryAuthorityStore() *MemoryAuthorityStore {
	return &MemoryAuthorityStore{
		byID:    make(map[string]models.Authority),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryAuthorityStore) Create(_ context.Context, a *models.Authority) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(a.Email)
	if _, taken := s.byEmail[email]; taken {
		return fmt.Errorf("authority email %s: %w", a.Email, ErrConflict)
	}
	if _, taken := s.byID[a.UID]; taken {
		return fmt.Errorf("authority %s: %w", a.UID, ErrConflict)
	}
	s.byID[a.UID] = *a
	s.byEmail[email] = a.UID
	return nil
}

func (s *MemoryAuthorityStore) FindByID(_ context.Context, uid string) (*models.Authority, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryAuthorityStore) FindByEmail(_ context.Context, email string) (*models.Authority, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uid, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	a := s.byID[uid]
	return &a, nil
}

func (s *MemoryAuthorityStore) MarkVerified(_ context.Context, uid string, now time.Time) (*models.Authority, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[uid]
	if !ok {
		return nil, ErrNotFound
	}
	a.Verified = true
	a.VerificationStatus = models.VerificationVerified
	a.UpdatedAt = now
	s.byID[uid] = a
	return &a, nil
}

func (s *MemoryAuthorityStore) IncrementStat(_ context.Context, uid, stat string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[uid]
	if !ok {
		return ErrNotFound
	}
	stats := make(map[string]int64, len(a.PerformanceStats)+1)
	for k, v := range a.PerformanceStats {
		stats[k] = v
	}
	stats[stat]++
	a.PerformanceStats = stats
	s.byID[uid] = a
	return nil
}

// memoryTable keeps records in insertion order so equal timestamps list deterministically.
type memoryTable[T any] struct {
	mu      sync.RWMutex
	order   []string
	records map[string]T
}

func newMemoryTable[T any]() *memoryTable[T] {
	return &memoryTable[T]{records: make(map[string]T)}
}

func (t *memoryTable[T]) create(id string, record T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.records[id]; exists {
		return fmt.Errorf("record %s: %w", id, ErrConflict)
	}
	t.records[id] = record
	t.order = append(t.order, id)
	return nil
}

func (t *memoryTable[T]) find(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	record, ok := t.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (t *memoryTable[T]) list(match func(*T) bool, createdAt func(*T) time.Time) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.records))
	for _, id := range t.order {
		record := t.records[id]
		if match(&record) {
			out = append(out, record)
		}
	}
	t.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(&out[i]).After(createdAt(&out[j]))
	})
	return out
}

func (t *memoryTable[T]) execute(id string, validate func(*T) error, mutate func(*T)) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	record, ok := t.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	if validate != nil {
		if err := validate(&record); err != nil {
			return nil, err
		}
	}
	mutate(&record)
	t.records[id] = record
	return &record, nil
}

type MemoryIssueStore struct {
	table *memoryTable[models.Issue]
}

func NewMemoryIssueStore() *MemoryIssueStore {
	return &MemoryIssueStore{table: newMemoryTable[models.Issue]()}
}

func (s *MemoryIssueStore) Create(_ context.Context, issue *models.Issue) error {
	return s.table.create(issue.ID, *issue)
}

func (s *MemoryIssueStore) FindByID(_ context.Context, id string) (*models.Issue, error) {
	return s.table.find(id)
}

func (s *MemoryIssueStore) List(_ context.Context, filter IssueFilter) ([]models.Issue, error) {
	return s.table.list(func(i *models.Issue) bool {
		return matches(filter.PanchayatID, i.PanchayatID) &&
			matches(filter.TalukID, i.TalukID) &&
			matches(filter.DistrictID, i.DistrictID)
	}, func(i *models.Issue) time.Time { return i.CreatedAt }), nil
}

func (s *MemoryIssueStore) Execute(_ context.Context, id string, validate func(*models.Issue) error, mutate func(*models.Issue)) (*models.Issue, error) {
	return s.table.execute(id, validate, mutate)
}

type MemoryFundRequestStore struct {
	table *memoryTable[models.FundRequest]
}

func NewMemoryFundRequestStore() *MemoryFundRequestStore {
	return &MemoryFundRequestStore{table: newMemoryTable[models.FundRequest]()}
}

func (s *MemoryFundRequestStore) Create(_ context.Context, fr *models.FundRequest) error {
	return s.table.create(fr.ID, *fr)
}

func (s *MemoryFundRequestStore) FindByID(_ context.Context, id string) (*models.FundRequest, error) {
	return s.table.find(id)
}

func (s *MemoryFundRequestStore) List(_ context.Context, filter FundRequestFilter) ([]models.FundRequest, error) {
	return s.table.list(func(fr *models.FundRequest) bool {
		return matches(filter.IssueID, fr.IssueID) &&
			matches(filter.PanchayatID, fr.PanchayatID) &&
			matches(filter.TalukID, fr.TalukID) &&
			matches(filter.DistrictID, fr.DistrictID)
	}, func(fr *models.FundRequest) time.Time { return fr.CreatedAt }), nil
}

func (s *MemoryFundRequestStore) Execute(_ context.Context, id string, validate func(*models.FundRequest) error, mutate func(*models.FundRequest)) (*models.FundRequest, error) {
	return s.table.execute(id, validate, mutate)
}

type MemoryVillagerStore struct {
	table *memoryTable[models.Villager]
}

func NewMemoryVillagerStore() *MemoryVillagerStore {
	return &MemoryVillagerStore{table: newMemoryTable[models.Villager]()}
}

func (s *MemoryVillagerStore) Create(_ context.Context, v *models.Villager) error {
	return s.table.create(v.ID, *v)
}

func (s *MemoryVillagerStore) FindByID(_ context.Context, id string) (*models.Villager, error) {
	return s.table.find(id)
}

func (s *MemoryVillagerStore) List(_ context.Context, filter VillagerFilter) ([]models.Villager, error) {
	return s.table.list(func(v *models.Villager) bool {
		return matches(filter.PanchayatID, v.PanchayatID) &&
			(filter.Village == "" || strings.EqualFold(filter.Village, v.Village))
	}, func(v *models.Villager) time.Time { return v.CreatedAt }), nil
}

func (s *MemoryVillagerStore) Execute(_ context.Context, id string, validate func(*models.Villager) error, mutate func(*models.Villager)) (*models.Villager, error) {
	return s.table.execute(id, validate, mutate)
}

// MemoryIssueLocker is a process-local IssueLocker.
type MemoryIssueLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryIssueLocker() *MemoryIssueLocker {
	return &MemoryIssueLocker{held: make(map[string]struct{})}
}

func (l *MemoryIssueLocker) Lock(_ context.Context, issueID string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[issueID]; busy {
		return nil, ErrLocked
	}
	l.held[issueID] = struct{}{}
	return func() {
		l.mu.Lock()
		delete(l.held, issueID)
		l.mu.Unlock()
	}, nil
}

func matches(want, got string) bool {
	return want == "" || want == got
}
