package services

import (
	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
)

func requireActor(actor *models.Authority) error {
	if actor == nil || actor.UID == "" {
		return apperrors.Permission("authentication required")
	}
	return nil
}

// requireRole passes when actor is verified and holds one of roles.
func requireRole(actor *models.Authority, message string, roles ...models.Role) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	for _, role := range roles {
		if actor.Acts(role) {
			return nil
		}
	}
	return apperrors.Permission(message)
}

// canSee reports whether viewer's jurisdiction contains a record's jurisdiction.
func canSee(viewer *models.Authority, panchayatID, talukID, districtID string) bool {
	if viewer == nil || !viewer.IsVerified() {
		return false
	}
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RolePDO, models.RoleVillageIncharge:
		return viewer.CoversPanchayat(panchayatID)
	case models.RoleTDO:
		return viewer.TalukID != "" && viewer.TalukID == talukID
	case models.RoleDDO:
		return viewer.DistrictID != "" && viewer.DistrictID == districtID
	}
	return false
}

func fundRequestScope(viewer *models.Authority) (stores.FundRequestFilter, error) {
	if err := requireRole(viewer, "not allowed to view fund requests",
		models.RolePDO, models.RoleTDO, models.RoleDDO, models.RoleAdmin); err != nil {
		return stores.FundRequestFilter{}, err
	}
	switch viewer.Role {
	case models.RolePDO:
		return stores.FundRequestFilter{PanchayatID: viewer.PanchayatID}, nonEmptyScope(viewer.PanchayatID)
	case models.RoleTDO:
		return stores.FundRequestFilter{TalukID: viewer.TalukID}, nonEmptyScope(viewer.TalukID)
	case models.RoleDDO:
		return stores.FundRequestFilter{DistrictID: viewer.DistrictID}, nonEmptyScope(viewer.DistrictID)
	}
	return stores.FundRequestFilter{}, nil
}

func issueScope(viewer *models.Authority) (stores.IssueFilter, error) {
	if err := requireRole(viewer, "not allowed to view issues",
		models.RolePDO, models.RoleVillageIncharge, models.RoleTDO, models.RoleDDO, models.RoleAdmin); err != nil {
		return stores.IssueFilter{}, err
	}
	switch viewer.Role {
	case models.RolePDO, models.RoleVillageIncharge:
		return stores.IssueFilter{PanchayatID: viewer.PanchayatID}, nonEmptyScope(viewer.PanchayatID)
	case models.RoleTDO:
		return stores.IssueFilter{TalukID: viewer.TalukID}, nonEmptyScope(viewer.TalukID)
	case models.RoleDDO:
		return stores.IssueFilter{DistrictID: viewer.DistrictID}, nonEmptyScope(viewer.DistrictID)
	}
	return stores.IssueFilter{}, nil
}

// nonEmptyScope stops an authority without a jurisdiction from listing everything.
func nonEmptyScope(id string) error {
	if id == "" {
		return apperrors.Permission("no jurisdiction assigned to this account")
	}
	return nil
}
