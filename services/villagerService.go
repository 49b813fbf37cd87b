package services

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/models"
	"vital-be/stores"
)

var (
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// RegisterVillagerInput is a resident's self-registration.
type RegisterVillagerInput struct {
	Name         string
	Email        string
	Mobile       string
	AadhaarLast4 string
	Village      string
	PanchayatID  string
	TalukID      string
	DistrictID   string
	Taluk        string
	District     string
}

// VillagerService runs the villager account lifecycle.
type VillagerService struct {
	villagers stores.VillagerStore
	serviceConfig
}

func NewVillagerService(villagers stores.VillagerStore, opts ...Option) *VillagerService {
	return &VillagerService{villagers: villagers, serviceConfig: newConfig(opts)}
}

// Register stores a new villager awaiting verification.
func (s *VillagerService) Register(ctx context.Context, in RegisterVillagerInput) (*models.Villager, error) {
	v := &models.Villager{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Mobile:       strings.TrimSpace(in.Mobile),
		AadhaarLast4: strings.TrimSpace(in.AadhaarLast4),
		Village:      strings.TrimSpace(in.Village),
		PanchayatID:  strings.TrimSpace(in.PanchayatID),
		TalukID:      strings.TrimSpace(in.TalukID),
		DistrictID:   strings.TrimSpace(in.DistrictID),
		Taluk:        strings.TrimSpace(in.Taluk),
		District:     strings.TrimSpace(in.District),
		Status:       models.VillagerPending,
	}
	if err := validateVillager(v); err != nil {
		return nil, err
	}

	now := s.now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if err := s.villagers.Create(ctx, v); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			return nil, apperrors.Validation("email", "villager is already registered")
		}
		return nil, apperrors.Wrap(err, apperrors.KindActionFailed, "failed to register villager")
	}

	s.logger.Info("villager registered",
		zap.String("villager_id", v.ID),
		zap.String("panchayat_id", v.PanchayatID))
	s.metrics.IncrementVillagerTransition(string(v.Status))
	return v, nil
}

// Verify activates a pending villager.
func (s *VillagerService) Verify(ctx context.Context, actor *models.Authority, id string) (*models.Villager, error) {
	if err := requireVillagerManager(actor); err != nil {
		return nil, err
	}

	now := s.now()
	v, err := s.villagers.Execute(ctx, id,
		func(v *models.Villager) error {
			if err := requireVillagerJurisdiction(actor, v); err != nil {
				return err
			}
			if v.Status != models.VillagerPending {
				return apperrors.InvalidState("only pending villagers can be verified, current status is " + string(v.Status))
			}
			return nil
		},
		func(v *models.Villager) {
			v.ApplyVerification(actor.UID, now)
		},
	)
	if err != nil {
		return nil, villagerUpdateErr(err)
	}

	s.logger.Info("villager verified",
		zap.String("villager_id", v.ID),
		zap.String("verified_by", actor.UID))
	s.metrics.IncrementVillagerTransition(string(v.Status))
	s.bumpStat(actor.UID, "villagersVerified")
	return v, nil
}

// SetStatus moves a villager to active, inactive, suspended or rejected.
func (s *VillagerService) SetStatus(ctx context.Context, actor *models.Authority, id, status string) (*models.Villager, error) {
	if err := requireVillagerManager(actor); err != nil {
		return nil, err
	}
	next := models.VillagerStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Settable() {
		return nil, apperrors.Validation("status", "status must be one of active, inactive, suspended, rejected")
	}

	now := s.now()
	var previous models.VillagerStatus
	v, err := s.villagers.Execute(ctx, id,
		func(v *models.Villager) error {
			previous = v.Status
			return requireVillagerJurisdiction(actor, v)
		},
		func(v *models.Villager) {
			v.ApplyStatus(next, actor.UID, now)
		},
	)
	if err != nil {
		return nil, villagerUpdateErr(err)
	}

	s.logger.Info("villager status changed",
		zap.String("villager_id", v.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(v.Status)),
		zap.String("changed_by", actor.UID))
	s.metrics.IncrementVillagerTransition(string(v.Status))
	return v, nil
}

// List returns the villagers an authority manages, newest first.
func (s *VillagerService) List(ctx context.Context, actor *models.Authority) ([]models.Villager, error) {
	if err := requireVillagerManager(actor); err != nil {
		return nil, err
	}
	if actor.PanchayatID == "" {
		return nil, apperrors.Permission("no jurisdiction assigned to this account")
	}
	filter := stores.VillagerFilter{PanchayatID: actor.PanchayatID}
	if actor.Role == models.RoleVillageIncharge {
		filter.Village = actor.Village
	}
	list, err := s.villagers.List(ctx, filter)
	if err != nil {
		return nil, translateStoreErr(err, "villagers not found", apperrors.KindBackendUnavailable, "could not load villagers")
	}
	return list, nil
}

// Get returns a villager by id.
func (s *VillagerService) Get(ctx context.Context, id string) (*models.Villager, error) {
	v, err := s.villagers.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err, "villager not found", apperrors.KindBackendUnavailable, "could not load villager")
	}
	return v, nil
}

func requireVillagerManager(actor *models.Authority) error {
	return requireRole(actor, "only a verified village incharge or PDO can manage villagers",
		models.RoleVillageIncharge, models.RolePDO)
}

func requireVillagerJurisdiction(actor *models.Authority, v *models.Villager) error {
	if !actor.CoversPanchayat(v.PanchayatID) {
		return apperrors.Permission("villager is outside your panchayat")
	}
	if actor.Role == models.RoleVillageIncharge && !actor.CoversVillage(v.Village) {
		return apperrors.Permission("villager is outside your village")
	}
	return nil
}

func villagerUpdateErr(err error) error {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return apperrors.NotFound("villager not found")
	case errors.Is(err, stores.ErrConflict):
		return apperrors.Wrap(err, apperrors.KindUpdateFailed, "villager was changed concurrently, refresh and try again")
	case apperrors.IsKind(err, apperrors.KindPermission), apperrors.IsKind(err, apperrors.KindInvalidState):
		return err
	}
	return apperrors.Wrap(err, apperrors.KindUpdateFailed, "failed to update villager")
}

func validateVillager(v *models.Villager) error {
	switch {
	case v.Name == "":
		return apperrors.Validation("name", "name is required")
	case len(v.Name) > 100:
		return apperrors.Validation("name", "name must be 100 characters or less")
	case v.Email == "":
		return apperrors.Validation("email", "email is required")
	case !validEmail(v.Email):
		return apperrors.Validation("email", "email is not valid")
	case !mobilePattern.MatchString(v.Mobile):
		return apperrors.Validation("mobile", "mobile must be 10 digits")
	case !aadhaarPattern.MatchString(v.AadhaarLast4):
		return apperrors.Validation("aadhaarLast4", "aadhaarLast4 must be 4 digits")
	case v.Village == "":
		return apperrors.Validation("village", "village is required")
	case v.PanchayatID == "":
		return apperrors.Validation("panchayatId", "panchayatId is required")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
