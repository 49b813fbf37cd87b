package stores

//go:generate mockgen -source=stores.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"vital-be/models"
)

// Sentinel errors for storage facts. Services translate these into apperrors kinds.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrLocked   = errors.New("locked")
)

// Collection names
const (
	AuthoritiesCollection  = "authorities"
	IssuesCollection       = "issues"
	FundRequestsCollection = "fund_requests"
	VillagersCollection    = "villagers"
)

// FundRequestFilter selects by jurisdiction; empty fields are ignored.
type FundRequestFilter struct {
	IssueID     string
	PanchayatID string
	TalukID     string
	DistrictID  string
}

// VillagerFilter selects villagers of a panchayat, optionally narrowed to one village.
type VillagerFilter struct {
	PanchayatID string
	Village     string
}

// IssueFilter selects issues by jurisdiction; empty fields are ignored.
type IssueFilter struct {
	PanchayatID string
	TalukID     string
	DistrictID  string
}

type AuthorityStore interface {
	Create(ctx context.Context, a *models.Authority) error
	FindByID(ctx context.Context, uid string) (*models.Authority, error)
	FindByEmail(ctx context.Context, email string) (*models.Authority, error)
	MarkVerified(ctx context.Context, uid string, now time.Time) (*models.Authority, error)
	IncrementStat(ctx context.Context, uid, stat string) error
}

type IssueStore interface {
	Create(ctx context.Context, issue *models.Issue) error
	FindByID(ctx context.Context, id string) (*models.Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]models.Issue, error)
	// Execute validates and mutates one issue without another writer interleaving.
	Execute(ctx context.Context, id string, validate func(*models.Issue) error, mutate func(*models.Issue)) (*models.Issue, error)
}

type FundRequestStore interface {
	Create(ctx context.Context, fr *models.FundRequest) error
	FindByID(ctx context.Context, id string) (*models.FundRequest, error)
	// List returns matches newest first.
	List(ctx context.Context, filter FundRequestFilter) ([]models.FundRequest, error)
	Execute(ctx context.Context, id string, validate func(*models.FundRequest) error, mutate func(*models.FundRequest)) (*models.FundRequest, error)
}

type VillagerStore interface {
	Create(ctx context.Context, v *models.Villager) error
	FindByID(ctx context.Context, id string) (*models.Villager, error)
	// List returns matches newest first.
	List(ctx context.Context, filter VillagerFilter) ([]models.Villager, error)
	Execute(ctx context.Context, id string, validate func(*models.Villager) error, mutate func(*models.Villager)) (*models.Villager, error)
}

// IssueLocker serialises fund request creation per issue across processes.
type IssueLocker interface {
	// Lock returns ErrLocked when another holder owns the issue.
	Lock(ctx context.Context, issueID string) (unlock func(), err error)
}
