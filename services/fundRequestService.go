package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
)

const customDateLayout = "2006-01-02"

// CreateFundRequestInput is what a PDO submits for one issue.
type CreateFundRequestInput struct {
	IssueID         string
	Amount          int64
	Reason          string
	Purpose         string
	Timeline        *models.Timeline
	BudgetBreakdown models.BudgetBreakdown
}

// FundRequestService runs the pending → approved | rejected lifecycle.
type FundRequestService struct {
	requests stores.FundRequestStore
	issues   stores.IssueStore
	locker   stores.IssueLocker
	serviceConfig
}

func NewFundRequestService(requests stores.FundRequestStore, issues stores.IssueStore, locker stores.IssueLocker, opts ...Option) *FundRequestService {
	if locker == nil {
		locker = stores.NewMemoryIssueLocker()
	}
	return &FundRequestService{
		requests:      requests,
		issues:        issues,
		locker:        locker,
		serviceConfig: newConfig(opts),
	}
}

// Policy exposes the active workflow policy.
func (s *FundRequestService) Policy() Policy {
	return s.policy
}

// Create validates a PDO's submission and stores it as a pending request.
// Creation is serialised per issue so two submissions cannot both pass the eligibility check.
func (s *FundRequestService) Create(ctx context.Context, requester *models.Authority, in CreateFundRequestInput) (*models.FundRequest, error) {
	if err := requireRole(requester, "only a verified PDO can request funds", models.RolePDO); err != nil {
		return nil, err
	}

	issueID := strings.TrimSpace(in.IssueID)
	if issueID == "" {
		return nil, apperrors.Validation("issueId", "no issue selected")
	}
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, translateStoreErr(err, "issue not found", apperrors.KindBackendUnavailable, "could not load issue")
	}
	if !requester.CoversPanchayat(issue.PanchayatID) {
		return nil, apperrors.Permission("issue is outside your panchayat")
	}

	unlock, err := s.locker.Lock(ctx, issueID)
	if err != nil {
		if errors.Is(err, stores.ErrLocked) {
			return nil, apperrors.New(apperrors.KindActionFailed, "another fund request for this issue is being submitted, retry shortly")
		}
		return nil, translateStoreErr(err, "issue not found", apperrors.KindBackendUnavailable, "could not lock issue")
	}
	defer unlock()

	existing, err := s.requests.List(ctx, stores.FundRequestFilter{IssueID: issueID})
	if err != nil {
		return nil, translateStoreErr(err, "issue not found", apperrors.KindBackendUnavailable, "could not load existing fund requests")
	}
	if !IsEligibleForFunding(issue, ShadowFor(existing, s.policy)) {
		return nil, apperrors.Validation("issueId", "issue is not eligible for funding")
	}

	now := s.now()
	timeline, budget, err := validateFundRequestFields(in, now)
	if err != nil {
		return nil, err
	}

	fr := &models.FundRequest{
		ID:              uuid.NewString(),
		IssueID:         issue.ID,
		IssueTitle:      issue.Title,
		IssueDisplayID:  issue.DisplayID,
		IssueCategory:   issue.CategoryName,
		IssuePriority:   issue.Priority,
		Status:          models.FundPending,
		Amount:          in.Amount,
		Reason:          strings.TrimSpace(in.Reason),
		Purpose:         strings.TrimSpace(in.Purpose),
		BudgetBreakdown: budget,
		Timeline:        timeline,
		PanchayatID:     requester.PanchayatID,
		TalukID:         firstNonEmpty(requester.TalukID, issue.TalukID),
		DistrictID:      firstNonEmpty(requester.DistrictID, issue.DistrictID),
		RequestedBy:     requester.UID,
		PDOName:         requester.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.requests.Create(ctx, fr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "failed to submit fund request")
	}

	s.logger.Info("fund request created",
		zap.String("fund_request_id", fr.ID),
		zap.String("issue_id", fr.IssueID),
		zap.String("requested_by", fr.RequestedBy),
		zap.Int64("amount", fr.Amount))
	s.metrics.IncrementFundRequestCreated()
	s.bumpStat(requester.UID, "fundRequestsRaised")
	return fr, nil
}

// Decide records a TDO's approval or rejection. Decided requests are terminal.
func (s *FundRequestService) Decide(ctx context.Context, decider *models.Authority, id, outcome, comment string) (*models.FundRequest, error) {
	if err := requireRole(decider, "only a verified TDO can decide fund requests", models.RoleTDO); err != nil {
		return nil, err
	}

	status := models.FundRequestStatus(strings.ToLower(strings.TrimSpace(outcome)))
	if !status.Terminal() {
		return nil, apperrors.Validation("status", "decision must be approved or rejected")
	}
	comment = strings.TrimSpace(comment)
	if status == models.FundRejected && s.policy.RequireCommentOnReject && comment == "" {
		return nil, apperrors.Validation("comment", "a comment is required when rejecting a request")
	}

	now := s.now()
	fr, err := s.requests.Execute(ctx, id,
		func(fr *models.FundRequest) error {
			if decider.TalukID == "" || fr.TalukID != decider.TalukID {
				return apperrors.Permission("fund request is outside your taluk")
			}
			if fr.Status != models.FundPending {
				return apperrors.InvalidState("fund request has already been " + string(fr.Status))
			}
			return nil
		},
		func(fr *models.FundRequest) {
			fr.ApplyDecision(status, comment, decider.UID, now)
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrConflict):
			return nil, apperrors.InvalidState("fund request was decided by someone else, refresh and try again")
		case errors.Is(err, stores.ErrNotFound):
			return nil, apperrors.NotFound("fund request not found")
		case apperrors.IsKind(err, apperrors.KindPermission), apperrors.IsKind(err, apperrors.KindInvalidState):
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "failed to record decision")
	}

	s.logger.Info("fund request decided",
		zap.String("fund_request_id", fr.ID),
		zap.String("status", string(fr.Status)),
		zap.String("reviewed_by", fr.ReviewedBy))
	s.metrics.IncrementDecision(string(fr.Status))
	if fr.Status == models.FundApproved {
		s.bumpStat(decider.UID, "fundRequestsApproved")
	} else {
		s.bumpStat(decider.UID, "fundRequestsRejected")
	}
	return fr, nil
}

// Get returns one request if it lies within viewer's jurisdiction.
func (s *FundRequestService) Get(ctx context.Context, viewer *models.Authority, id string) (*models.FundRequest, error) {
	if _, err := fundRequestScope(viewer); err != nil {
		return nil, err
	}
	fr, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, "fund request not found", apperrors.KindBackendUnavailable, "could not load fund request")
	}
	if !canSee(viewer, fr.PanchayatID, fr.TalukID, fr.DistrictID) {
		return nil, apperrors.Permission("fund request is outside your jurisdiction")
	}
	return fr, nil
}

// List returns every request in viewer's jurisdiction, newest first.
func (s *FundRequestService) List(ctx context.Context, viewer *models.Authority) ([]models.FundRequest, error) {
	filter, err := fundRequestScope(viewer)
	if err != nil {
		return nil, err
	}
	list, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, translateStoreErr(err, "fund requests not found", apperrors.KindBackendUnavailable, "could not load fund requests")
	}
	return list, nil
}

// validateFundRequestFields checks amount, reason, timeline and budget in that order and
// returns the normalised timeline and budget.
func validateFundRequestFields(in CreateFundRequestInput, now time.Time) (models.Timeline, models.BudgetBreakdown, error) {
	if in.Amount <= 0 {
		return models.Timeline{}, models.BudgetBreakdown{}, apperrors.Validation("amount", "amount must be greater than zero")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return models.Timeline{}, models.BudgetBreakdown{}, apperrors.Validation("reason", "reason is required")
	}
	timeline, err := normaliseTimeline(in.Timeline, now)
	if err != nil {
		return models.Timeline{}, models.BudgetBreakdown{}, err
	}
	budget, err := normaliseBudget(in.BudgetBreakdown)
	if err != nil {
		return models.Timeline{}, models.BudgetBreakdown{}, err
	}
	return timeline, budget, nil
}

func normaliseTimeline(t *models.Timeline, now time.Time) (models.Timeline, error) {
	if t == nil || strings.TrimSpace(string(t.Type)) == "" {
		return models.Timeline{}, apperrors.Validation("requiredTimeline", "required timeline is missing")
	}
	kind := models.TimelineType(strings.ToLower(strings.TrimSpace(string(t.Type))))
	if days, ok := kind.PresetDays(); ok {
		return models.Timeline{Type: kind, Days: days}, nil
	}
	if kind != models.TimelineCustom {
		return models.Timeline{}, apperrors.Validation("requiredTimeline", "unknown timeline type "+string(t.Type))
	}

	raw := strings.TrimSpace(t.Date)
	if raw == "" {
		return models.Timeline{}, apperrors.Validation("requiredTimeline", "a custom timeline needs a date")
	}
	date, err := time.ParseInLocation(customDateLayout, raw, now.Location())
	if err != nil {
		return models.Timeline{}, apperrors.Validation("requiredTimeline", "date must be YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return models.Timeline{}, apperrors.Validation("requiredTimeline", "date cannot be in the past")
	}
	days := int(date.Sub(today).Hours() / 24)
	return models.Timeline{Type: models.TimelineCustom, Days: days, Date: raw}, nil
}

func normaliseBudget(b models.BudgetBreakdown) (models.BudgetBreakdown, error) {
	if b.Materials < 0 || b.Labor < 0 || b.Transport < 0 || b.Other < 0 || b.Total < 0 {
		return models.BudgetBreakdown{}, apperrors.Validation("budgetBreakdown", "budget lines cannot be negative")
	}
	if b.Total == 0 {
		b.Total = b.Sum()
	}
	return b, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
