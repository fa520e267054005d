package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/service/errander"
)

type Delivery struct {
	repository      Repository
	erranderService ErranderService
	customerService CustomerService
	txManager       TxManager
}

func New(
	repository Repository,
	erranderService ErranderService,
	customerService CustomerService,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:      repository,
		erranderService: erranderService,
		customerService: customerService,
		txManager:       txManager,
	}
}

// CreateDeliveryRequest registers a new delivery in PENDING. The sender is
// looked up by primary phone and created on first contact.
func (d *Delivery) CreateDeliveryRequest(ctx context.Context, intake entities.DeliveryIntake) (*entities.DeliveryView, error) {
	if !isValidIntake(intake) {
		return nil, ErrMissingRequiredFields
	}

	var view entities.DeliveryView
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		userType := entities.UserCustomer
		sender, err := d.customerService.FindOrCreateByPhone(ctx, entities.CustomerModify{
			FullName: &intake.SenderName,
			Phone1:   &intake.SenderPhone1,
			Phone2:   intake.SenderPhone2,
			Email:    intake.SenderEmail,
			UserType: &userType,
		})
		if err != nil {
			return fmt.Errorf("resolve sender: %w", err)
		}

		status := entities.DeliveryPending
		trackingNumber := newTrackingNumber()
		created, err := d.repository.Create(ctx, entities.DeliveryModify{
			TrackingNumber:      &trackingNumber,
			Status:              &status,
			SenderID:            &sender.ID,
			SenderName:          &intake.SenderName,
			SenderPhone1:        &intake.SenderPhone1,
			SenderPhone2:        intake.SenderPhone2,
			ItemType:            &intake.ItemType,
			ItemDescription:     intake.ItemDescription,
			DeliveryAddress:     &intake.DeliveryAddress,
			RecipientName:       &intake.RecipientName,
			RecipientPhone:      &intake.RecipientPhone,
			SpecialInstructions: intake.SpecialInstructions,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		view = newDeliveryView(created, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, id string) (*entities.DeliveryView, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load delivery: %w", err)
	}

	var assigned *entities.Errander
	if deliveryEntity.ErranderID != nil {
		assigned, err = d.getAssignedErrander(ctx, *deliveryEntity.ErranderID)
		if err != nil {
			return nil, err
		}
	}

	view := newDeliveryView(deliveryEntity, assigned)
	return &view, nil
}

// UpdateDeliveryStatus runs the full status update: load, validate the
// transition, plan errander availability mutations, and persist the delivery
// change plus every mutation inside one serializable transaction. Concurrent
// updates of the same delivery serialize on that transaction, so the
// effective values seen by validation cannot go stale before commit.
func (d *Delivery) UpdateDeliveryStatus(ctx context.Context, id string, req entities.DeliveryStatusRequest) (*entities.DeliveryView, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	var view entities.DeliveryView
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load delivery: %w", err)
		}

		// An explicitly supplied errander must exist before the change
		// resolves against it.
		var assigned *entities.Errander
		if req.Errander.Set && req.Errander.ID != nil {
			assigned, err = d.getAssignedErrander(ctx, *req.Errander.ID)
			if err != nil {
				return err
			}
		}

		change, err := validateStatusChange(current, req)
		if err != nil {
			return err
		}

		mutations := planErranderMutations(current, change)

		if change.Status != nil && *change.Status == entities.DeliveryDelivered {
			deliveredAt := time.Now().UTC()
			change.ActualDeliveryAt = &deliveredAt
		}

		updated := current
		if !change.Empty() {
			updated, err = d.repository.Update(ctx, id, change)
			if err != nil {
				return fmt.Errorf("update delivery: %w", err)
			}
		}

		for _, mutation := range mutations {
			status := mutation.Status
			erranderID := mutation.ErranderID
			_, err = d.erranderService.UpdateErrander(ctx, entities.ErranderModify{
				ID:     &erranderID,
				Status: &status,
			})
			if err != nil {
				return fmt.Errorf("update errander availability: %w", err)
			}
		}

		if updated.ErranderID == nil {
			assigned = nil
		} else if assigned == nil || assigned.ID != *updated.ErranderID {
			assigned, err = d.getAssignedErrander(ctx, *updated.ErranderID)
			if err != nil {
				return err
			}
		}

		view = newDeliveryView(updated, assigned)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (d *Delivery) getAssignedErrander(ctx context.Context, id string) (*entities.Errander, error) {
	erranderEntity, err := d.erranderService.GetErrander(ctx, id)
	if err != nil {
		if errors.Is(err, errander.ErrErranderNotFound) {
			return nil, ErrErranderNotFound
		}
		return nil, fmt.Errorf("load errander: %w", err)
	}
	return erranderEntity, nil
}

func newDeliveryView(deliveryEntity *entities.Delivery, assigned *entities.Errander) entities.DeliveryView {
	view := entities.DeliveryView{
		ID:                  deliveryEntity.ID,
		TrackingNumber:      deliveryEntity.TrackingNumber,
		Status:              deliveryEntity.Status.Transport(),
		SenderName:          deliveryEntity.SenderName,
		SenderPhone1:        deliveryEntity.SenderPhone1,
		SenderPhone2:        deliveryEntity.SenderPhone2,
		ItemType:            deliveryEntity.ItemType,
		ItemDescription:     deliveryEntity.ItemDescription,
		DeliveryAddress:     deliveryEntity.DeliveryAddress,
		RecipientName:       deliveryEntity.RecipientName,
		RecipientPhone:      deliveryEntity.RecipientPhone,
		SpecialInstructions: deliveryEntity.SpecialInstructions,
		ErranderID:          deliveryEntity.ErranderID,
		Fee:                 deliveryEntity.Fee,
		CreatedAt:           deliveryEntity.CreatedAt,
		UpdatedAt:           deliveryEntity.UpdatedAt,
		EstimatedDeliveryAt: deliveryEntity.EstimatedDeliveryAt,
		ActualDeliveryAt:    deliveryEntity.ActualDeliveryAt,
	}

	if assigned != nil {
		view.ErranderName = &assigned.FullName
		view.ErranderPhone = &assigned.PhoneNumber
	}
	return view
}

func newTrackingNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ERD-" + suffix[:12]
}
