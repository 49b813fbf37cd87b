package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
	"vital-be/stores/mocks"
)

type IssueServiceSuite struct {
	suite.Suite
	ctx       context.Context
	issues    *stores.MemoryIssueStore
	villagers *stores.MemoryVillagerStore
	requests  *stores.MemoryFundRequestStore
	service   *IssueService
	villager  *models.Villager
	vi        *models.Authority
	pdo       *models.Authority
}

func TestIssueServiceSuite(t *testing.T) {
	suite.Run(t, new(IssueServiceSuite))
}

func (s *IssueServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.issues = stores.NewMemoryIssueStore()
	s.villagers = stores.NewMemoryVillagerStore()
	s.requests = stores.NewMemoryFundRequestStore()
	s.service = NewIssueService(s.issues, s.villagers, s.requests, WithClock(fixedClock))
	s.vi = verifiedAuthority("vi-1", models.RoleVillageIncharge)
	s.pdo = verifiedAuthority("pdo-1", models.RolePDO)

	s.villager = &models.Villager{
		ID:          "villager-1",
		Name:        "Ravi",
		Village:     "Hosur",
		PanchayatID: "pan-1",
		TalukID:     "taluk-1",
		DistrictID:  "dist-1",
		Status:      models.VillagerActive,
		Verified:    true,
		CreatedAt:   fixedNow,
	}
	s.Require().NoError(s.villagers.Create(s.ctx, s.villager))
}

func (s *IssueServiceSuite) requireKind(err error, kind apperrors.Kind) {
	s.Require().Error(err)
	s.Require().Equal(kind, apperrors.KindOf(err), err.Error())
}

func (s *IssueServiceSuite) report(title string) *models.Issue {
	issue, err := s.service.Report(s.ctx, ReportIssueInput{
		VillagerID:   s.villager.ID,
		Title:        title,
		CategoryName: "Road",
		Description:  "Potholes after the monsoon",
		Priority:     "HIGH",
	})
	s.Require().NoError(err)
	return issue
}

func (s *IssueServiceSuite) TestReportCopiesVillagerJurisdiction() {
	issue := s.report("Pothole on main road")

	s.Equal(models.IssuePending, issue.Status)
	s.Equal(models.PriorityHigh, issue.Priority)
	s.Equal("pan-1", issue.PanchayatID)
	s.Equal("taluk-1", issue.TalukID)
	s.Equal("dist-1", issue.DistrictID)
	s.Equal("Hosur", issue.Village)
	s.Equal(s.villager.ID, issue.ReportedBy)
	s.True(strings.HasPrefix(issue.DisplayID, "VTL-20260401-"), issue.DisplayID)
	s.Len(issue.DisplayID, len("VTL-20260401-XXXX"))
	s.False(issue.IsVerified)
}

func (s *IssueServiceSuite) TestReportDefaultsPriority() {
	issue, err := s.service.Report(s.ctx, ReportIssueInput{VillagerID: s.villager.ID, Title: "Street light out", CategoryName: "Electricity"})
	s.Require().NoError(err)
	s.Equal(models.PriorityMedium, issue.Priority)
}

func (s *IssueServiceSuite) TestReportValidation() {
	tests := []struct {
		name  string
		in    ReportIssueInput
		field string
	}{
		{"missing villager", ReportIssueInput{Title: "x", CategoryName: "Road"}, "villagerId"},
		{"missing title", ReportIssueInput{VillagerID: "villager-1", CategoryName: "Road"}, "title"},
		{"long title", ReportIssueInput{VillagerID: "villager-1", Title: strings.Repeat("a", 201), CategoryName: "Road"}, "title"},
		{"missing category", ReportIssueInput{VillagerID: "villager-1", Title: "x"}, "categoryName"},
		{"bad priority", ReportIssueInput{VillagerID: "villager-1", Title: "x", CategoryName: "Road", Priority: "critical"}, "priority"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Report(s.ctx, tt.in)
			s.requireKind(err, apperrors.KindValidation)
			appErr, _ := apperrors.As(err)
			s.Equal(tt.field, appErr.Field)
		})
	}
}

func (s *IssueServiceSuite) TestReportRequiresActiveVillager() {
	pending := &models.Villager{ID: "villager-2", PanchayatID: "pan-1", Status: models.VillagerPending, CreatedAt: fixedNow}
	s.Require().NoError(s.villagers.Create(s.ctx, pending))

	_, err := s.service.Report(s.ctx, ReportIssueInput{VillagerID: pending.ID, Title: "x", CategoryName: "Water"})
	s.requireKind(err, apperrors.KindPermission)

	_, err = s.service.Report(s.ctx, ReportIssueInput{VillagerID: "ghost", Title: "x", CategoryName: "Water"})
	s.requireKind(err, apperrors.KindPermission)
}

// TestVerifyMakesIssueEligible covers the path from report to a fundable issue.
func (s *IssueServiceSuite) TestVerifyMakesIssueEligible() {
	issue := s.report("Broken hand pump")

	view, err := s.service.Get(s.ctx, s.pdo, issue.ID)
	s.Require().NoError(err)
	s.False(view.Eligible)

	verified, err := s.service.Verify(s.ctx, s.vi, issue.ID)
	s.Require().NoError(err)
	s.True(verified.IsVerified)
	s.Equal(models.IssueVerified, verified.Status)
	s.Equal(s.vi.UID, verified.VerifiedBy)
	s.Require().NotNil(verified.VIVerifiedAt)

	view, err = s.service.Get(s.ctx, s.pdo, issue.ID)
	s.Require().NoError(err)
	s.True(view.Eligible)
	s.Equal(models.FundingNone, view.Funding.FundingStatus)

	_, err = s.service.Verify(s.ctx, s.vi, issue.ID)
	s.requireKind(err, apperrors.KindInvalidState)
}

func (s *IssueServiceSuite) TestVerifyPermissions() {
	issue := s.report("Drain blocked")

	_, err := s.service.Verify(s.ctx, s.pdo, issue.ID)
	s.requireKind(err, apperrors.KindPermission)

	other := verifiedAuthority("vi-2", models.RoleVillageIncharge)
	other.PanchayatID = "pan-9"
	_, err = s.service.Verify(s.ctx, other, issue.ID)
	s.requireKind(err, apperrors.KindPermission)

	unverified := verifiedAuthority("vi-3", models.RoleVillageIncharge)
	unverified.Verified = false
	_, err = s.service.Verify(s.ctx, unverified, issue.ID)
	s.requireKind(err, apperrors.KindPermission)

	_, err = s.service.Verify(s.ctx, s.vi, "missing")
	s.requireKind(err, apperrors.KindNotFound)
}

func (s *IssueServiceSuite) TestAssignDepartment() {
	issue := s.report("Water leakage")

	assigned, err := s.service.AssignDepartment(s.ctx, s.pdo, issue.ID, " Public Works ")
	s.Require().NoError(err)
	s.Equal(models.IssueAssigned, assigned.Status)
	s.Require().NotNil(assigned.AssignedDepartment)
	s.Equal("Public Works", *assigned.AssignedDepartment)

	_, err = s.service.AssignDepartment(s.ctx, s.pdo, issue.ID, "")
	s.requireKind(err, apperrors.KindValidation)

	_, err = s.service.AssignDepartment(s.ctx, s.vi, issue.ID, "Water Board")
	s.requireKind(err, apperrors.KindPermission)
}

func (s *IssueServiceSuite) TestAssignClosedIssue() {
	closed := &models.Issue{ID: "closed-1", Status: "Resolved", PanchayatID: "pan-1", CreatedAt: fixedNow}
	s.Require().NoError(s.issues.Create(s.ctx, closed))

	_, err := s.service.AssignDepartment(s.ctx, s.pdo, closed.ID, "Roads")
	s.requireKind(err, apperrors.KindInvalidState)
}

func (s *IssueServiceSuite) TestListEligibleOnly() {
	fresh := s.report("Fresh report")
	fundable := s.report("Verified report")
	requested := s.report("Already requested")
	_, err := s.service.Verify(s.ctx, s.vi, fundable.ID)
	s.Require().NoError(err)
	_, err = s.service.Verify(s.ctx, s.vi, requested.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.requests.Create(s.ctx, &models.FundRequest{
		ID: "fr-1", IssueID: requested.ID, Status: models.FundPending,
		PanchayatID: "pan-1", TalukID: "taluk-1", DistrictID: "dist-1", CreatedAt: fixedNow,
	}))

	all, err := s.service.List(s.ctx, s.pdo, false)
	s.Require().NoError(err)
	s.Len(all, 3)

	eligible, err := s.service.List(s.ctx, s.pdo, true)
	s.Require().NoError(err)
	s.Require().Len(eligible, 1)
	s.Equal(fundable.ID, eligible[0].ID)

	for _, view := range all {
		switch view.ID {
		case fresh.ID:
			s.False(view.Eligible)
		case requested.ID:
			s.True(view.Funding.FundRequested)
			s.Equal(models.FundingRequested, view.Funding.FundingStatus)
			s.False(view.Eligible)
		}
	}
}

func (s *IssueServiceSuite) TestListScopes() {
	s.report("In scope")

	tdo := verifiedAuthority("tdo-1", models.RoleTDO)
	list, err := s.service.List(s.ctx, tdo, false)
	s.Require().NoError(err)
	s.Len(list, 1)

	elsewhere := verifiedAuthority("tdo-2", models.RoleTDO)
	elsewhere.TalukID = "taluk-2"
	list, err = s.service.List(s.ctx, elsewhere, false)
	s.Require().NoError(err)
	s.Empty(list)

	noScope := verifiedAuthority("pdo-2", models.RolePDO)
	noScope.PanchayatID = ""
	_, err = s.service.List(s.ctx, noScope, false)
	s.requireKind(err, apperrors.KindPermission)
}

func (s *IssueServiceSuite) TestStoreFailures() {
	ctrl := gomock.NewController(s.T())
	issues := mocks.NewMockIssueStore(ctrl)
	service := NewIssueService(issues, s.villagers, s.requests, WithClock(fixedClock))

	issues.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	_, err := service.Report(s.ctx, ReportIssueInput{VillagerID: s.villager.ID, Title: "x", CategoryName: "Road"})
	s.requireKind(err, apperrors.KindActionFailed)

	issues.EXPECT().Execute(gomock.Any(), "issue-1", gomock.Any(), gomock.Any()).Return(nil, stores.ErrConflict)
	_, err = service.Verify(s.ctx, s.vi, "issue-1")
	s.requireKind(err, apperrors.KindInvalidState)

	issues.EXPECT().List(gomock.Any(), stores.IssueFilter{PanchayatID: "pan-1"}).
		Return(nil, apperrors.New(apperrors.KindBackendUnavailable, "timeout"))
	_, err = service.List(s.ctx, s.pdo, false)
	s.requireKind(err, apperrors.KindBackendUnavailable)
}
