package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
)

const displayIDDateLayout = "20060102"

// ReportIssueInput is what a villager submits when reporting a problem.
type ReportIssueInput struct {
	VillagerID       string
	Title            string
	CategoryName     string
	Description      string
	Priority         string
	SpecificLocation string
}

// IssueView is an issue with its derived funding state.
type IssueView struct {
	models.Issue
	Funding  models.FundingShadow `json:"funding"`
	Eligible bool                 `json:"eligibleForFunding"`
}

// IssueService runs the issue registry: reporting, VI verification and department assignment.
type IssueService struct {
	issues    stores.IssueStore
	villagers stores.VillagerStore
	requests  stores.FundRequestStore
	serviceConfig
}

func NewIssueService(issues stores.IssueStore, villagers stores.VillagerStore, requests stores.FundRequestStore, opts ...Option) *IssueService {
	return &IssueService{
		issues:        issues,
		villagers:     villagers,
		requests:      requests,
		serviceConfig: newConfig(opts),
	}
}

// Report stores a new pending issue on behalf of an active villager.
func (s *IssueService) Report(ctx context.Context, in ReportIssueInput) (*models.Issue, error) {
	villagerID := strings.TrimSpace(in.VillagerID)
	if villagerID == "" {
		return nil, apperrors.Validation("villagerId", "villagerId is required")
	}
	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		return nil, apperrors.Validation("title", "title is required")
	case len(title) > 200:
		return nil, apperrors.Validation("title", "title must be 200 characters or less")
	case strings.TrimSpace(in.CategoryName) == "":
		return nil, apperrors.Validation("categoryName", "category is required")
	case len(in.Description) > 1000:
		return nil, apperrors.Validation("description", "description must be 1000 characters or less")
	}
	priority := models.PriorityMedium
	if strings.TrimSpace(in.Priority) != "" {
		p, ok := models.ParsePriority(in.Priority)
		if !ok {
			return nil, apperrors.Validation("priority", "priority must be one of low, medium, high, urgent")
		}
		priority = p
	}

	villager, err := s.villagers.FindByID(ctx, villagerID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, apperrors.Permission("only registered villagers can report issues")
		}
		return nil, translateStoreErr(err, "villager not found", apperrors.KindBackendUnavailable, "could not load villager")
	}
	if villager.Status != models.VillagerActive {
		return nil, apperrors.Permission("villager account is " + string(villager.Status) + ", only active villagers can report issues")
	}

	now := s.now()
	id := uuid.NewString()
	issue := &models.Issue{
		ID:               id,
		DisplayID:        "VTL-" + now.Format(displayIDDateLayout) + "-" + strings.ToUpper(id[:4]),
		Title:            title,
		CategoryName:     strings.TrimSpace(in.CategoryName),
		Description:      strings.TrimSpace(in.Description),
		Status:           models.IssuePending,
		Priority:         priority,
		SpecificLocation: strings.TrimSpace(in.SpecificLocation),
		PanchayatID:      villager.PanchayatID,
		TalukID:          villager.TalukID,
		DistrictID:       villager.DistrictID,
		Village:          villager.Village,
		ReportedBy:       villager.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "failed to report issue")
	}

	s.logger.Info("issue reported",
		zap.String("issue_id", issue.ID),
		zap.String("display_id", issue.DisplayID),
		zap.String("reported_by", issue.ReportedBy))
	s.metrics.IncrementIssueEvent("reported")
	return issue, nil
}

// Verify records a village incharge's confirmation of a pending issue.
func (s *IssueService) Verify(ctx context.Context, actor *models.Authority, id string) (*models.Issue, error) {
	if err := requireRole(actor, "only a verified village incharge can verify issues", models.RoleVillageIncharge); err != nil {
		return nil, err
	}

	now := s.now()
	issue, err := s.issues.Execute(ctx, id,
		func(issue *models.Issue) error {
			if !actor.CoversPanchayat(issue.PanchayatID) {
				return apperrors.Permission("issue is outside your panchayat")
			}
			if !issue.Status.Is(models.IssuePending) {
				return apperrors.InvalidState("only pending issues can be verified, current status is " + string(issue.Status))
			}
			return nil
		},
		func(issue *models.Issue) {
			issue.IsVerified = true
			issue.VIVerifiedAt = &now
			issue.VerifiedBy = actor.UID
			issue.Status = models.IssueVerified
			issue.UpdatedAt = now
		},
	)
	if err != nil {
		return nil, issueUpdateErr(err)
	}

	s.logger.Info("issue verified",
		zap.String("issue_id", issue.ID),
		zap.String("verified_by", actor.UID))
	s.metrics.IncrementIssueEvent("verified")
	s.bumpStat(actor.UID, "issuesVerified")
	return issue, nil
}

// AssignDepartment routes an open issue to a department.
func (s *IssueService) AssignDepartment(ctx context.Context, actor *models.Authority, id, department string) (*models.Issue, error) {
	if err := requireRole(actor, "only a verified PDO can assign issues", models.RolePDO); err != nil {
		return nil, err
	}
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, apperrors.Validation("department", "department is required")
	}

	now := s.now()
	issue, err := s.issues.Execute(ctx, id,
		func(issue *models.Issue) error {
			if !actor.CoversPanchayat(issue.PanchayatID) {
				return apperrors.Permission("issue is outside your panchayat")
			}
			if issue.Status.Closed() {
				return apperrors.InvalidState("issue is already " + string(issue.Status))
			}
			return nil
		},
		func(issue *models.Issue) {
			issue.AssignedDepartment = &department
			issue.Status = models.IssueAssigned
			issue.UpdatedAt = now
		},
	)
	if err != nil {
		return nil, issueUpdateErr(err)
	}

	s.logger.Info("issue assigned",
		zap.String("issue_id", issue.ID),
		zap.String("department", department),
		zap.String("assigned_by", actor.UID))
	s.metrics.IncrementIssueEvent("assigned")
	return issue, nil
}

// Get returns one issue with its funding state if viewer may see it.
func (s *IssueService) Get(ctx context.Context, viewer *models.Authority, id string) (*IssueView, error) {
	if _, err := issueScope(viewer); err != nil {
		return nil, err
	}
	issue, err := s.issues.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, "issue not found", apperrors.KindBackendUnavailable, "could not load issue")
	}
	if !canSee(viewer, issue.PanchayatID, issue.TalukID, issue.DistrictID) {
		return nil, apperrors.Permission("issue is outside your jurisdiction")
	}
	requests, err := s.requests.List(ctx, stores.FundRequestFilter{IssueID: issue.ID})
	if err != nil {
		return nil, translateStoreErr(err, "fund requests not found", apperrors.KindBackendUnavailable, "could not load fund requests")
	}
	shadow := ShadowFor(requests, s.policy)
	return &IssueView{Issue: *issue, Funding: shadow, Eligible: IsEligibleForFunding(issue, shadow)}, nil
}

// List returns issues in viewer's jurisdiction, newest first. With eligibleOnly only issues a
// PDO could raise a fund request for are kept.
func (s *IssueService) List(ctx context.Context, viewer *models.Authority, eligibleOnly bool) ([]IssueView, error) {
	filter, err := issueScope(viewer)
	if err != nil {
		return nil, err
	}
	issues, err := s.issues.List(ctx, filter)
	if err != nil {
		return nil, translateStoreErr(err, "issues not found", apperrors.KindBackendUnavailable, "could not load issues")
	}
	requests, err := s.requests.List(ctx, stores.FundRequestFilter{
		PanchayatID: filter.PanchayatID,
		TalukID:     filter.TalukID,
		DistrictID:  filter.DistrictID,
	})
	if err != nil {
		return nil, translateStoreErr(err, "fund requests not found", apperrors.KindBackendUnavailable, "could not load fund requests")
	}
	shadows := ShadowsByIssue(requests, s.policy)

	views := make([]IssueView, 0, len(issues))
	for i := range issues {
		shadow := ShadowOf(shadows, issues[i].ID)
		eligible := IsEligibleForFunding(&issues[i], shadow)
		if eligibleOnly && !eligible {
			continue
		}
		views = append(views, IssueView{Issue: issues[i], Funding: shadow, Eligible: eligible})
	}
	return views, nil
}

func issueUpdateErr(err error) error {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return apperrors.NotFound("issue not found")
	case errors.Is(err, stores.ErrConflict):
		return apperrors.InvalidState("issue was changed by someone else, refresh and try again")
	case apperrors.IsKind(err, apperrors.KindPermission), apperrors.IsKind(err, apperrors.KindInvalidState):
		return err
	}
	return apperrors.Wrap(err, apperrors.KindActionFailed, "failed to update issue")
}
