package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
)

// RegisterAuthorityInput is an officer's sign-up request.
type RegisterAuthorityInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	DistrictID  string
	TalukID     string
	PanchayatID string
	Village     string
}

// AuthorityService owns officer accounts and their verification.
type AuthorityService struct {
	authorities stores.AuthorityStore
	adminEmails map[string]bool
	serviceConfig
}

func NewAuthorityService(authorities stores.AuthorityStore, adminEmails []string, opts ...Option) *AuthorityService {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			admins[email] = true
		}
	}
	return &AuthorityService{authorities: authorities, adminEmails: admins, serviceConfig: newConfig(opts)}
}

// Register creates an unverified authority. Bootstrap admins listed in configuration are
// verified on creation.
func (s *AuthorityService) Register(ctx context.Context, in RegisterAuthorityInput) (*models.Authority, error) {
	a := &models.Authority{
		UID:         uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Password:    in.Password,
		Role:        models.Role(strings.ToLower(strings.TrimSpace(in.Role))),
		DistrictID:  strings.TrimSpace(in.DistrictID),
		TalukID:     strings.TrimSpace(in.TalukID),
		PanchayatID: strings.TrimSpace(in.PanchayatID),
		Village:     strings.TrimSpace(in.Village),
	}
	if err := validateAuthority(a); err != nil {
		return nil, err
	}

	now := s.now()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.VerificationStatus = models.VerificationPending
	if a.Role == models.RoleAdmin && s.adminEmails[a.Email] {
		a.Verified = true
		a.VerificationStatus = models.VerificationVerified
	}
	if err := a.HashPassword(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "could not secure password")
	}

	if err := s.authorities.Create(ctx, a); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			return nil, apperrors.Validation("email", "an account with this email already exists")
		}
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "failed to register authority")
	}

	s.logger.Info("authority registered",
		zap.String("uid", a.UID),
		zap.String("role", string(a.Role)),
		zap.Bool("verified", a.Verified))
	return a, nil
}

// Authenticate checks credentials. Unknown emails and wrong passwords fail the same way.
func (s *AuthorityService) Authenticate(ctx context.Context, email, password string) (*models.Authority, error) {
	a, err := s.authorities.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, apperrors.Permission("invalid credentials")
		}
		return nil, translateStoreErr(err, "authority not found", apperrors.KindBackendUnavailable, "could not load account")
	}
	if !a.ComparePassword(password) {
		return nil, apperrors.Permission("invalid credentials")
	}
	return a, nil
}

// Get loads an authority by uid.
func (s *AuthorityService) Get(ctx context.Context, uid string) (*models.Authority, error) {
	a, err := s.authorities.FindByID(ctx, uid)
	if err != nil {
		return nil, translateStoreErr(err, "authority not found", apperrors.KindBackendUnavailable, "could not load account")
	}
	return a, nil
}

// Verify lets an admin approve an authority account.
func (s *AuthorityService) Verify(ctx context.Context, admin *models.Authority, uid string) (*models.Authority, error) {
	if err := requireRole(admin, "only a verified admin can verify authorities", models.RoleAdmin); err != nil {
		return nil, err
	}
	a, err := s.authorities.MarkVerified(ctx, uid, s.now())
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, apperrors.NotFound("authority not found")
		}
		return nil, apperrors.Wrap(err, apperrors.KindUpdateFailed, "failed to verify authority")
	}

	s.logger.Info("authority verified",
		zap.String("uid", a.UID),
		zap.String("verified_by", admin.UID))
	return a, nil
}

func validateAuthority(a *models.Authority) error {
	switch {
	case a.Name == "":
		return apperrors.Validation("name", "name is required")
	case len(a.Name) > 50:
		return apperrors.Validation("name", "name must be 50 characters or less")
	case !validEmail(a.Email):
		return apperrors.Validation("email", "email is not valid")
	case len(a.Password) < 6:
		return apperrors.Validation("password", "password must be at least 6 characters")
	case !a.Role.Valid():
		return apperrors.Validation("role", "role must be one of pdo, tdo, village_incharge, ddo, admin")
	}

	switch a.Role {
	case models.RolePDO, models.RoleVillageIncharge:
		if a.PanchayatID == "" {
			return apperrors.Validation("panchayatId", "panchayatId is required for this role")
		}
	case models.RoleTDO:
		if a.TalukID == "" {
			return apperrors.Validation("talukId", "talukId is required for this role")
		}
	case models.RoleDDO:
		if a.DistrictID == "" {
			return apperrors.Validation("districtId", "districtId is required for this role")
		}
	}
	return nil
}
