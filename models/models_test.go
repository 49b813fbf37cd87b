package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueStatusIsCaseInsensitive(t *testing.T) {
	assert.True(t, IssueStatus("Verified").Is(IssueVerified))
	assert.True(t, IssueStatus(" RESOLVED ").Is(IssueResolved))
	assert.False(t, IssueStatus("verified").Is(IssueAssigned))
}

func TestIssueStatusClosed(t *testing.T) {
	for _, s := range []IssueStatus{"resolved", "Closed", "completed", "rejected", "CANCELLED"} {
		assert.True(t, s.Closed(), s)
	}
	for _, s := range []IssueStatus{"pending", "verified", "assigned", "in_progress"} {
		assert.False(t, s.Closed(), s)
	}
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority("URGENT")
	require.True(t, ok)
	assert.Equal(t, PriorityUrgent, p)

	_, ok = ParsePriority("critical")
	assert.False(t, ok)
}

func TestTimelinePresetDays(t *testing.T) {
	days, ok := Timeline15Days.PresetDays()
	require.True(t, ok)
	assert.Equal(t, 15, days)

	_, ok = TimelineCustom.PresetDays()
	assert.False(t, ok)
}

func TestApplyDecisionKeepsCommentFieldsInSync(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	fr := &FundRequest{Status: FundPending}

	fr.ApplyDecision(FundApproved, "Approved for Q2 budget", "tdo-1", now)

	assert.Equal(t, FundApproved, fr.Status)
	assert.Equal(t, "Approved for Q2 budget", fr.TDOComment)
	assert.Equal(t, fr.TDOComment, fr.Remarks)
	assert.Equal(t, "tdo-1", fr.ReviewedBy)
	require.NotNil(t, fr.DecidedAt)
	assert.Equal(t, now, *fr.DecidedAt)
	assert.Equal(t, *fr.DecidedAt, *fr.ReviewedAt)
	assert.True(t, fr.Status.Terminal())
}

func TestVillagerApplyStatus(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	t.Run("activation forces verification", func(t *testing.T) {
		v := &Villager{Status: VillagerSuspended}
		v.ApplyStatus(VillagerActive, "vi-1", now)
		assert.True(t, v.Verified)
		assert.Equal(t, "vi-1", v.VerifiedBy)
		assert.Equal(t, VillagerActive, v.Status)
	})

	t.Run("existing verifier is kept", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		v := &Villager{Status: VillagerInactive, Verified: true, VerifiedBy: "vi-0", VerifiedAt: &earlier}
		v.ApplyStatus(VillagerActive, "vi-1", now)
		assert.Equal(t, "vi-0", v.VerifiedBy)
		assert.Equal(t, earlier, *v.VerifiedAt)
	})

	t.Run("suspension leaves verification alone", func(t *testing.T) {
		v := &Villager{Status: VillagerActive, Verified: true}
		v.ApplyStatus(VillagerSuspended, "vi-1", now)
		assert.True(t, v.Verified)
		assert.Equal(t, VillagerSuspended, v.Status)
	})
}

func TestAuthorityPasswordRoundTrip(t *testing.T) {
	a := &Authority{Password: "s3cret-pass"}
	require.NoError(t, a.HashPassword())
	assert.NotEqual(t, "s3cret-pass", a.Password)
	assert.True(t, a.ComparePassword("s3cret-pass"))
	assert.False(t, a.ComparePassword("wrong"))
}

func TestAuthorityActs(t *testing.T) {
	tdo := &Authority{Role: RoleTDO, VerificationStatus: VerificationVerified}
	assert.True(t, tdo.Acts(RoleTDO))
	assert.False(t, tdo.Acts(RolePDO))

	unverified := &Authority{Role: RoleTDO}
	assert.False(t, unverified.Acts(RoleTDO))

	var none *Authority
	assert.False(t, none.Acts(RoleTDO))
}
