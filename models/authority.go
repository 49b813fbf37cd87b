package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role of an authority in the administrative hierarchy
type Role string

const (
	RolePDO             Role = "pdo"
	RoleTDO             Role = "tdo"
	RoleVillageIncharge Role = "village_incharge"
	RoleDDO             Role = "ddo"
	RoleAdmin           Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePDO, RoleTDO, RoleVillageIncharge, RoleDDO, RoleAdmin:
		return true
	}
	return false
}

// VerificationStatus of an authority account
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Authority is an officer account. UID matches the user id carried in the auth token.
type Authority struct {
	UID                string             `bson:"_id" json:"uid"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Password           string             `bson:"password,omitempty" json:"-"`
	Role               Role               `bson:"role" json:"role"`
	Verified           bool               `bson:"verified" json:"verified"`
	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	DistrictID         string             `bson:"districtId,omitempty" json:"districtId,omitempty"`
	TalukID            string             `bson:"talukId,omitempty" json:"talukId,omitempty"`
	PanchayatID        string             `bson:"panchayatId,omitempty" json:"panchayatId,omitempty"`
	Village            string             `bson:"village,omitempty" json:"village,omitempty"`
	PerformanceStats   map[string]int64   `bson:"performanceStats,omitempty" json:"performanceStats,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (a *Authority) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *Authority) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}

// IsVerified accepts either form of the verification flag; older records only carry one.
func (a *Authority) IsVerified() bool {
	return a.Verified || a.VerificationStatus == VerificationVerified
}

// Acts reports whether the authority holds role and has been verified.
func (a *Authority) Acts(role Role) bool {
	return a != nil && a.Role == role && a.IsVerified()
}

// CoversPanchayat reports whether panchayatID is inside the authority's own panchayat.
func (a *Authority) CoversPanchayat(panchayatID string) bool {
	return a.PanchayatID != "" && a.PanchayatID == panchayatID
}

// CoversVillage is true when the authority is not pinned to a village or the village matches.
func (a *Authority) CoversVillage(village string) bool {
	return a.Village == "" || strings.EqualFold(a.Village, village)
}
