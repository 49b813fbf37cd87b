package services

import (
	"strings"

	"vital-be/models"
)

// ineligibleStatuses can never receive a new fund request.
var ineligibleStatuses = []models.IssueStatus{
	models.IssueResolved,
	models.IssueClosed,
	models.IssueCompleted,
	models.IssueFunded,
	models.IssueFundRequested,
	models.IssueRejected,
	models.IssueCancelled,
}

// IsEligibleForFunding decides whether a fund request may be created for issue right now.
// shadow must be computed from a fresh read of the issue's fund requests.
func IsEligibleForFunding(issue *models.Issue, shadow models.FundingShadow) bool {
	if issue == nil {
		return false
	}
	for _, s := range ineligibleStatuses {
		if issue.Status.Is(s) {
			return false
		}
	}
	if shadow.FundingStatus == models.FundingFunded || shadow.FundRequested {
		return false
	}

	switch {
	case issue.VIVerifiedAt != nil:
		return true
	case issue.AssignedDepartment != nil && strings.TrimSpace(*issue.AssignedDepartment) != "":
		return true
	case issue.Status.Is(models.IssueVerified), issue.Status.Is(models.IssueAssigned):
		return true
	case issue.IsVerified:
		return true
	}
	return false
}

// ShadowFor derives the funding shadow state of one issue from its fund requests.
func ShadowFor(requests []models.FundRequest, policy Policy) models.FundingShadow {
	for _, fr := range requests {
		if blocksResubmission(fr.Status, policy) {
			return models.FundingShadow{FundRequested: true, FundingStatus: models.FundingRequested}
		}
	}
	return models.FundingShadow{FundingStatus: models.FundingNone}
}

// ShadowsByIssue groups requests by issue id and derives each issue's shadow state.
// Issues without requests are absent; use ShadowOf for lookups.
func ShadowsByIssue(requests []models.FundRequest, policy Policy) map[string]models.FundingShadow {
	grouped := make(map[string][]models.FundRequest)
	for _, fr := range requests {
		grouped[fr.IssueID] = append(grouped[fr.IssueID], fr)
	}
	shadows := make(map[string]models.FundingShadow, len(grouped))
	for issueID, list := range grouped {
		shadows[issueID] = ShadowFor(list, policy)
	}
	return shadows
}

// ShadowOf returns the shadow for issueID, defaulting to no funding activity.
func ShadowOf(shadows map[string]models.FundingShadow, issueID string) models.FundingShadow {
	if s, ok := shadows[issueID]; ok {
		return s
	}
	return models.FundingShadow{FundingStatus: models.FundingNone}
}

func blocksResubmission(status models.FundRequestStatus, policy Policy) bool {
	if policy.AllowResubmissionAfterRejection {
		return status != models.FundRejected
	}
	return true
}
