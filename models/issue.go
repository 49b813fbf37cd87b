package models

import (
	"strings"
	"time"
)

// IssueStatus is free-form in stored data; these are the values the workflow writes or reads.
type IssueStatus string

const (
	IssuePending       IssueStatus = "pending"
	IssueVerified      IssueStatus = "verified"
	IssueAssigned      IssueStatus = "assigned"
	IssueInProgress    IssueStatus = "in_progress"
	IssueResolved      IssueStatus = "resolved"
	IssueClosed        IssueStatus = "closed"
	IssueCompleted     IssueStatus = "completed"
	IssueFunded        IssueStatus = "funded"
	IssueFundRequested IssueStatus = "fund_requested"
	IssueRejected      IssueStatus = "rejected"
	IssueCancelled     IssueStatus = "cancelled"
)

// Is compares case-insensitively.
func (s IssueStatus) Is(other IssueStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(other))
}

// Closed reports statuses after which an issue no longer moves forward.
func (s IssueStatus) Closed() bool {
	for _, c := range []IssueStatus{IssueResolved, IssueClosed, IssueCompleted, IssueRejected, IssueCancelled} {
		if s.Is(c) {
			return true
		}
	}
	return false
}

// IssuePriority enum
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

// ParsePriority normalises case; ok is false for unknown values.
func ParsePriority(raw string) (IssuePriority, bool) {
	p := IssuePriority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, true
	}
	return "", false
}

// Issue represents a civic issue reported by a villager
type Issue struct {
	ID                 string        `bson:"_id" json:"id"`
	DisplayID          string        `bson:"displayId" json:"displayId"`
	Title              string        `bson:"title" json:"title"`
	CategoryName       string        `bson:"categoryName" json:"categoryName"`
	Description        string        `bson:"description" json:"description"`
	Status             IssueStatus   `bson:"status" json:"status"`
	Priority           IssuePriority `bson:"priority" json:"priority"`
	SpecificLocation   string        `bson:"specificLocation,omitempty" json:"specificLocation,omitempty"`
	PanchayatID        string        `bson:"panchayatId" json:"panchayatId"`
	TalukID            string        `bson:"talukId" json:"talukId"`
	DistrictID         string        `bson:"districtId" json:"districtId"`
	Village            string        `bson:"village,omitempty" json:"village,omitempty"`
	ReportedBy         string        `bson:"reportedBy" json:"reportedBy"`
	IsVerified         bool          `bson:"isVerified" json:"isVerified"`
	VIVerifiedAt       *time.Time    `bson:"viVerifiedAt,omitempty" json:"viVerifiedAt,omitempty"`
	VerifiedBy         string        `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	AssignedDepartment *string       `bson:"assignedDepartment,omitempty" json:"assignedDepartment,omitempty"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// FundingStatus is the shadow funding state derived from fund requests.
type FundingStatus string

const (
	FundingNone      FundingStatus = "none"
	FundingRequested FundingStatus = "requested"
	FundingFunded    FundingStatus = "funded"
)

// FundingShadow is never stored on the issue.
type FundingShadow struct {
	FundRequested bool          `json:"fundRequested"`
	FundingStatus FundingStatus `json:"fundingStatus"`
}
