package models

import "time"

// VillagerStatus enum
type VillagerStatus string

const (
	VillagerPending   VillagerStatus = "pending"
	VillagerActive    VillagerStatus = "active"
	VillagerRejected  VillagerStatus = "rejected"
	VillagerInactive  VillagerStatus = "inactive"
	VillagerSuspended VillagerStatus = "suspended"
)

// Settable lists the statuses an authority may set directly.
func (s VillagerStatus) Settable() bool {
	switch s {
	case VillagerActive, VillagerInactive, VillagerSuspended, VillagerRejected:
		return true
	}
	return false
}

// Villager is a resident account managed by village authorities.
type Villager struct {
	ID           string         `bson:"_id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	Mobile       string         `bson:"mobile" json:"mobile"`
	AadhaarLast4 string         `bson:"aadhaarLast4" json:"aadhaarLast4"`
	Village      string         `bson:"village" json:"village"`
	PanchayatID  string         `bson:"panchayatId" json:"panchayatId"`
	TalukID      string         `bson:"talukId,omitempty" json:"talukId,omitempty"`
	DistrictID   string         `bson:"districtId,omitempty" json:"districtId,omitempty"`
	Taluk        string         `bson:"taluk,omitempty" json:"taluk,omitempty"`
	District     string         `bson:"district,omitempty" json:"district,omitempty"`
	Status       VillagerStatus `bson:"status" json:"status"`
	Verified     bool           `bson:"verified" json:"verified"`
	VerifiedBy   string         `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt   *time.Time     `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ApplyVerification marks a pending villager active and verified.
func (v *Villager) ApplyVerification(verifier string, now time.Time) {
	v.Verified = true
	v.Status = VillagerActive
	v.VerifiedBy = verifier
	v.VerifiedAt = &now
	v.UpdatedAt = now
}

// ApplyStatus sets status; activation implies verification.
func (v *Villager) ApplyStatus(status VillagerStatus, actor string, now time.Time) {
	v.Status = status
	if status == VillagerActive && !v.Verified {
		v.Verified = true
		v.VerifiedBy = actor
		v.VerifiedAt = &now
	}
	v.UpdatedAt = now
}
