// Package dashboard computes the counters, filters and orderings shown on authority dashboards.
// Every function is pure and never mutates its input.
package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"vital-be/models"
)

// FundRequestStats summarises fund requests by status.
type FundRequestStats struct {
	Total          int   `json:"total"`
	Pending        int   `json:"pending"`
	Approved       int   `json:"approved"`
	Rejected       int   `json:"rejected"`
	TotalAmount    int64 `json:"totalAmount"`
	PendingAmount  int64 `json:"pendingAmount"`
	ApprovedAmount int64 `json:"approvedAmount"`
	RejectedAmount int64 `json:"rejectedAmount"`
}

// VillagerStats summarises villagers. Inactive groups rejected, inactive and suspended accounts.
type VillagerStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// IssueStats counts issues per status and priority.
type IssueStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Eligible   int            `json:"eligible"`
}

func SummarizeFundRequests(list []models.FundRequest) FundRequestStats {
	var stats FundRequestStats
	for _, fr := range list {
		stats.Total++
		stats.TotalAmount += fr.Amount
		switch fr.Status {
		case models.FundPending:
			stats.Pending++
			stats.PendingAmount += fr.Amount
		case models.FundApproved:
			stats.Approved++
			stats.ApprovedAmount += fr.Amount
		case models.FundRejected:
			stats.Rejected++
			stats.RejectedAmount += fr.Amount
		}
	}
	return stats
}

func SummarizeVillagers(list []models.Villager) VillagerStats {
	var stats VillagerStats
	for _, v := range list {
		stats.Total++
		switch v.Status {
		case models.VillagerPending:
			stats.Pending++
		case models.VillagerActive:
			stats.Active++
		case models.VillagerRejected, models.VillagerInactive, models.VillagerSuspended:
			stats.Inactive++
		}
	}
	return stats
}

// SummarizeIssues counts issues; eligible reports which ids are fundable and may be nil.
func SummarizeIssues(list []models.Issue, eligible func(*models.Issue) bool) IssueStats {
	stats := IssueStats{
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}
	for i := range list {
		stats.Total++
		stats.ByStatus[strings.ToLower(string(list[i].Status))]++
		stats.ByPriority[strings.ToLower(string(list[i].Priority))]++
		if eligible != nil && eligible(&list[i]) {
			stats.Eligible++
		}
	}
	return stats
}

// SortField names a fund request ordering.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByAmount    SortField = "amount"
	SortByStatus    SortField = "status"
)

// SortOption selects field and direction. The zero value is createdAt ascending; use
// DefaultSort for the dashboard default.
type SortOption struct {
	Field SortField
	Desc  bool
}

// DefaultSort is newest first.
var DefaultSort = SortOption{Field: SortByCreatedAt, Desc: true}

// ParseSortOption reads the sort and order query values. Unknown fields fall back to
// createdAt and anything but "asc" sorts descending.
func ParseSortOption(field, order string) SortOption {
	opt := DefaultSort
	switch SortField(strings.TrimSpace(field)) {
	case SortByAmount:
		opt.Field = SortByAmount
	case SortByStatus:
		opt.Field = SortByStatus
	}
	opt.Desc = !strings.EqualFold(strings.TrimSpace(order), "asc")
	return opt
}

// SortFundRequests returns a sorted copy. Ties keep their input order.
func SortFundRequests(list []models.FundRequest, opt SortOption) []models.FundRequest {
	out := make([]models.FundRequest, len(list))
	copy(out, list)

	less := func(a, b *models.FundRequest) int {
		switch opt.Field {
		case SortByAmount:
			return compareInt64(a.Amount, b.Amount)
		case SortByStatus:
			return strings.Compare(string(a.Status), string(b.Status))
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := less(&out[i], &out[j])
		if opt.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// FilterFundRequests keeps requests with the given status ("" or "all" keeps every status)
// whose reason, purpose, panchayat, PDO name or amount contains search, case-insensitively.
func FilterFundRequests(list []models.FundRequest, status, search string) []models.FundRequest {
	status = strings.ToLower(strings.TrimSpace(status))
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.FundRequest, 0, len(list))
	for _, fr := range list {
		if status != "" && status != "all" && string(fr.Status) != status {
			continue
		}
		if needle != "" && !containsAny(needle,
			fr.Reason, fr.Purpose, fr.PanchayatID, fr.PDOName, strconv.FormatInt(fr.Amount, 10)) {
			continue
		}
		out = append(out, fr)
	}
	return out
}

// FilterVillagers keeps villagers in the status bucket ("inactive" includes rejected and
// suspended) matching search on name, email, mobile, village or aadhaar digits.
func FilterVillagers(list []models.Villager, status, search string) []models.Villager {
	status = strings.ToLower(strings.TrimSpace(status))
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Villager, 0, len(list))
	for _, v := range list {
		if !villagerInBucket(v.Status, status) {
			continue
		}
		if needle != "" && !containsAny(needle, v.Name, v.Email, v.Mobile, v.Village, v.AadhaarLast4) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SortVillagers returns a copy ordered newest first.
func SortVillagers(list []models.Villager) []models.Villager {
	out := make([]models.Villager, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func villagerInBucket(s models.VillagerStatus, bucket string) bool {
	switch bucket {
	case "", "all":
		return true
	case string(models.VillagerInactive):
		return s == models.VillagerInactive || s == models.VillagerRejected || s == models.VillagerSuspended
	}
	return string(s) == bucket
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
