package models

import "time"

// FundRequestStatus enum
type FundRequestStatus string

const (
	FundPending  FundRequestStatus = "pending"
	FundApproved FundRequestStatus = "approved"
	FundRejected FundRequestStatus = "rejected"
)

// Terminal statuses have no outgoing transition.
func (s FundRequestStatus) Terminal() bool {
	return s == FundApproved || s == FundRejected
}

// TimelineType enum
type TimelineType string

const (
	TimelineImmediate TimelineType = "immediate"
	Timeline7Days     TimelineType = "7days"
	Timeline15Days    TimelineType = "15days"
	Timeline30Days    TimelineType = "30days"
	TimelineCustom    TimelineType = "custom"
)

// PresetDays returns the day count implied by a preset timeline type.
func (t TimelineType) PresetDays() (int, bool) {
	switch t {
	case TimelineImmediate:
		return 0, true
	case Timeline7Days:
		return 7, true
	case Timeline15Days:
		return 15, true
	case Timeline30Days:
		return 30, true
	}
	return 0, false
}

type Timeline struct {
	Type TimelineType `bson:"type" json:"type"`
	Days int          `bson:"days,omitempty" json:"days,omitempty"`
	// Date is YYYY-MM-DD and only used by custom timelines.
	Date string `bson:"date,omitempty" json:"date,omitempty"`
}

// BudgetBreakdown amounts are in the smallest currency unit.
type BudgetBreakdown struct {
	Materials int64 `bson:"materials" json:"materials"`
	Labor     int64 `bson:"labor" json:"labor"`
	Transport int64 `bson:"transport" json:"transport"`
	Other     int64 `bson:"other" json:"other"`
	Total     int64 `bson:"total" json:"total"`
}

// Sum of the component lines, ignoring Total.
func (b BudgetBreakdown) Sum() int64 {
	return b.Materials + b.Labor + b.Transport + b.Other
}

// FundRequest is a PDO's request for money against a single issue.
type FundRequest struct {
	ID              string            `bson:"_id" json:"id"`
	IssueID         string            `bson:"issueId" json:"issueId"`
	IssueTitle      string            `bson:"issueTitle" json:"issueTitle"`
	IssueDisplayID  string            `bson:"issueDisplayId,omitempty" json:"issueDisplayId,omitempty"`
	IssueCategory   string            `bson:"issueCategory,omitempty" json:"issueCategory,omitempty"`
	IssuePriority   IssuePriority     `bson:"issuePriority,omitempty" json:"issuePriority,omitempty"`
	Status          FundRequestStatus `bson:"status" json:"status"`
	Amount          int64             `bson:"amount" json:"amount"`
	Reason          string            `bson:"reason" json:"reason"`
	Purpose         string            `bson:"purpose,omitempty" json:"purpose,omitempty"`
	BudgetBreakdown BudgetBreakdown   `bson:"budgetBreakdown" json:"budgetBreakdown"`
	Timeline        Timeline          `bson:"requiredTimeline" json:"requiredTimeline"`
	PanchayatID     string            `bson:"panchayatId" json:"panchayatId"`
	TalukID         string            `bson:"talukId" json:"talukId"`
	DistrictID      string            `bson:"districtId" json:"districtId"`
	RequestedBy     string            `bson:"requestedBy" json:"requestedBy"`
	PDOName         string            `bson:"pdoName" json:"pdoName"`
	TDOComment      string            `bson:"tdoComment,omitempty" json:"tdoComment,omitempty"`
	Remarks         string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	ReviewedBy      string            `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
	DecidedAt       *time.Time        `bson:"decidedAt,omitempty" json:"decidedAt,omitempty"`
	ReviewedAt      *time.Time        `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

// ApplyDecision moves a pending request to its terminal state. Callers check Status first.
func (f *FundRequest) ApplyDecision(outcome FundRequestStatus, comment, reviewer string, now time.Time) {
	f.Status = outcome
	f.TDOComment = comment
	f.Remarks = comment
	f.ReviewedBy = reviewer
	f.DecidedAt = &now
	f.ReviewedAt = &now
	f.UpdatedAt = now
}
