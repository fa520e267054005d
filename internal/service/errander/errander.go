package errander

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bamzhie/errander-api/internal/entities"
)

type Errander struct {
	repository      Repository
	customerService CustomerService
	txManager       TxManager
}

func New(repository Repository, customerService CustomerService, txManager TxManager) *Errander {
	return &Errander{
		repository:      repository,
		customerService: customerService,
		txManager:       txManager,
	}
}

// SubmitApplication registers a new errander in PENDING. The backing user
// account is looked up by phone and created on first contact; a second
// application for the same user is rejected with ErrAlreadyApplied.
func (s *Errander) SubmitApplication(ctx context.Context, application entities.ErranderApplication) (*entities.Errander, error) {
	if !isValidApplication(application) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPhone(application.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	var created *entities.Errander
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		userType := entities.UserErrander
		user, err := s.customerService.FindOrCreateByPhone(ctx, entities.CustomerModify{
			FullName: &application.FullName,
			Phone1:   &application.PhoneNumber,
			Phone2:   application.WhatsappNumber,
			Email:    application.Email,
			UserType: &userType,
		})
		if err != nil {
			return fmt.Errorf("resolve errander user: %w", err)
		}

		existing, err := s.repository.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, ErrErranderNotFound) {
			return fmt.Errorf("check existing application: %w", err)
		}
		if existing != nil {
			return ErrAlreadyApplied
		}

		created, err = s.repository.Create(ctx, user.ID, application)
		if err != nil {
			return fmt.Errorf("create errander: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Errander) GetErrander(ctx context.Context, id string) (*entities.Errander, error) {
	if id == "" {
		return nil, ErrInvalidErranderID
	}

	erranderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get errander: %w", err)
	}
	return erranderEntity, nil
}

// UpdateErrander applies a partial update. Moving into APPROVED stamps the
// verification fields (once).
func (s *Errander) UpdateErrander(ctx context.Context, erranderModify entities.ErranderModify) (*entities.Errander, error) {
	if erranderModify.ID == nil {
		return nil, ErrInvalidErranderID
	}
	if erranderModify.Status == nil &&
		erranderModify.IsVerified == nil &&
		erranderModify.VerifiedBy == nil &&
		erranderModify.IDCardURL == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if erranderModify.Status != nil && !erranderModify.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if erranderModify.Status != nil && *erranderModify.Status == entities.ErranderApproved {
		verified := true
		verifiedAt := time.Now().UTC()
		erranderModify.IsVerified = &verified
		erranderModify.VerifiedAt = &verifiedAt
	}

	erranderEntity, err := s.repository.Update(ctx, erranderModify)
	if err != nil {
		return nil, fmt.Errorf("update errander: %w", err)
	}
	return erranderEntity, nil
}

func (s *Errander) GetErrandersWithStats(ctx context.Context, status *entities.ErranderStatusType) ([]entities.ErranderStats, error) {
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	stats, err := s.repository.GetAllWithStats(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get erranders: %w", err)
	}
	return stats, nil
}
