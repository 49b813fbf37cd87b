package dashboard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vital-be/models"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func request(id string, amount int64, status models.FundRequestStatus, age time.Duration) models.FundRequest {
	return models.FundRequest{
		ID:          id,
		Amount:      amount,
		Status:      status,
		Reason:      "reason " + id,
		PanchayatID: "pan-1",
		PDOName:     "Asha",
		CreatedAt:   base.Add(-age),
	}
}

func TestSummarizeFundRequestsThreeStatuses(t *testing.T) {
	stats := SummarizeFundRequests([]models.FundRequest{
		request("a", 1000, models.FundPending, 0),
		request("b", 2000, models.FundApproved, 0),
		request("c", 3000, models.FundRejected, 0),
	})

	assert.Equal(t, FundRequestStats{
		Total: 3, Pending: 1, Approved: 1, Rejected: 1,
		TotalAmount: 6000, PendingAmount: 1000, ApprovedAmount: 2000, RejectedAmount: 3000,
	}, stats)
}

func TestSummarizeFundRequestsCountsAddUp(t *testing.T) {
	statuses := []models.FundRequestStatus{models.FundPending, models.FundApproved, models.FundRejected}
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		list := make([]models.FundRequest, rng.Intn(30))
		for i := range list {
			list[i] = request("r", rng.Int63n(100000)+1, statuses[rng.Intn(len(statuses))], 0)
		}
		stats := SummarizeFundRequests(list)
		assert.Equal(t, len(list), stats.Pending+stats.Approved+stats.Rejected)
		assert.LessOrEqual(t, stats.ApprovedAmount, stats.TotalAmount)
		assert.Equal(t, stats.TotalAmount, stats.PendingAmount+stats.ApprovedAmount+stats.RejectedAmount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, FundRequestStats{}, SummarizeFundRequests(nil))
	assert.Equal(t, VillagerStats{}, SummarizeVillagers(nil))
}

func TestSummarizeVillagers(t *testing.T) {
	stats := SummarizeVillagers([]models.Villager{
		{Status: models.VillagerPending},
		{Status: models.VillagerActive},
		{Status: models.VillagerActive},
		{Status: models.VillagerRejected},
		{Status: models.VillagerInactive},
		{Status: models.VillagerSuspended},
	})
	assert.Equal(t, VillagerStats{Total: 6, Pending: 1, Active: 2, Inactive: 3}, stats)
}

func TestSummarizeIssues(t *testing.T) {
	list := []models.Issue{
		{ID: "1", Status: "Verified", Priority: models.PriorityHigh},
		{ID: "2", Status: models.IssuePending, Priority: models.PriorityHigh},
		{ID: "3", Status: models.IssuePending, Priority: models.PriorityLow},
	}
	stats := SummarizeIssues(list, func(i *models.Issue) bool { return i.ID == "1" })
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"verified": 1, "pending": 2}, stats.ByStatus)
	assert.Equal(t, map[string]int{"high": 2, "low": 1}, stats.ByPriority)
	assert.Equal(t, 1, stats.Eligible)

	assert.Zero(t, SummarizeIssues(list, nil).Eligible)
}

func TestSortFundRequestsDefaultNewestFirst(t *testing.T) {
	list := []models.FundRequest{
		request("old", 10, models.FundPending, 2*time.Hour),
		request("new", 20, models.FundPending, 0),
		request("mid", 30, models.FundPending, time.Hour),
	}
	sorted := SortFundRequests(list, DefaultSort)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(sorted))
	assert.Equal(t, "old", list[0].ID, "input is not reordered")
}

func TestSortFundRequestsStableAndReversible(t *testing.T) {
	list := []models.FundRequest{
		request("a", 300, models.FundApproved, 0),
		request("b", 100, models.FundPending, 0),
		request("c", 200, models.FundRejected, 0),
		request("d", 400, models.FundPending, 0),
	}

	asc := SortFundRequests(list, SortOption{Field: SortByAmount})
	desc := SortFundRequests(list, SortOption{Field: SortByAmount, Desc: true})
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}

	assert.Equal(t, ids(asc), ids(SortFundRequests(asc, SortOption{Field: SortByAmount})))

	byStatus := SortFundRequests(list, SortOption{Field: SortByStatus})
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(byStatus), "equal statuses keep input order")
	assert.Equal(t, ids(byStatus), ids(SortFundRequests(list, SortOption{Field: SortByStatus})))
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		field, order string
		want         SortOption
	}{
		{"", "", DefaultSort},
		{"amount", "asc", SortOption{Field: SortByAmount}},
		{"status", "desc", SortOption{Field: SortByStatus, Desc: true}},
		{"title", "ASC", SortOption{Field: SortByCreatedAt}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSortOption(tt.field, tt.order), tt.field+"/"+tt.order)
	}
}

func TestFilterFundRequests(t *testing.T) {
	list := []models.FundRequest{
		request("a", 50000, models.FundPending, 0),
		request("b", 1200, models.FundApproved, 0),
		request("c", 7500, models.FundPending, 0),
	}
	list[0].Purpose = "Culvert repair"
	list[2].PDOName = "Ravi Kumar"

	assert.Len(t, FilterFundRequests(list, "", ""), 3)
	assert.Len(t, FilterFundRequests(list, "all", ""), 3)
	assert.Equal(t, []string{"a", "c"}, ids(FilterFundRequests(list, "Pending", "")))
	assert.Equal(t, []string{"a"}, ids(FilterFundRequests(list, "", "CULVERT")))
	assert.Equal(t, []string{"c"}, ids(FilterFundRequests(list, "", "ravi")))
	assert.Equal(t, []string{"b"}, ids(FilterFundRequests(list, "", "120")))
	assert.Empty(t, FilterFundRequests(list, "approved", "culvert"))
}

func TestFilterByEmptySearchKeepsStatusFilteredSet(t *testing.T) {
	list := []models.FundRequest{
		request("a", 1, models.FundPending, 0),
		request("b", 2, models.FundApproved, 0),
		request("c", 3, models.FundPending, 0),
	}
	for _, status := range []string{"pending", "approved", "rejected", "all"} {
		byStatus := FilterFundRequests(list, status, "")
		assert.Equal(t, ids(byStatus), ids(FilterFundRequests(byStatus, "", "")), status)
		assert.Equal(t, ids(byStatus), ids(FilterFundRequests(byStatus, status, "  ")), status)
	}
}

func TestFilterAndSortVillagers(t *testing.T) {
	list := []models.Villager{
		{ID: "1", Name: "Ravi", Village: "Hosur", Status: models.VillagerActive, CreatedAt: base},
		{ID: "2", Name: "Meena", Mobile: "9876543210", Status: models.VillagerSuspended, CreatedAt: base.Add(time.Hour)},
		{ID: "3", Name: "Arun", AadhaarLast4: "4321", Status: models.VillagerRejected, CreatedAt: base.Add(-time.Hour)},
		{ID: "4", Name: "Lakshmi", Status: models.VillagerPending, CreatedAt: base.Add(2 * time.Hour)},
	}

	assert.Equal(t, []string{"2", "3"}, villagerIDs(FilterVillagers(list, "inactive", "")))
	assert.Equal(t, []string{"2"}, villagerIDs(FilterVillagers(list, "suspended", "")))
	assert.Equal(t, []string{"1"}, villagerIDs(FilterVillagers(list, "", "hosur")))
	assert.Equal(t, []string{"2"}, villagerIDs(FilterVillagers(list, "all", "98765")))
	assert.Equal(t, []string{"3"}, villagerIDs(FilterVillagers(list, "", "4321")))

	sorted := SortVillagers(list)
	require.Len(t, sorted, 4)
	assert.Equal(t, []string{"4", "2", "1", "3"}, villagerIDs(sorted))
	assert.Equal(t, "1", list[0].ID)
}

func ids(list []models.FundRequest) []string {
	out := make([]string, len(list))
	for i, fr := range list {
		out[i] = fr.ID
	}
	return out
}

func villagerIDs(list []models.Villager) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.ID
	}
	return out
}
