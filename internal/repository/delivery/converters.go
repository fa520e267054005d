package delivery

import "github.com/Bamzhie/errander-api/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:                  d.ID,
		TrackingNumber:      d.TrackingNumber,
		Status:              entities.DeliveryStatusType(d.Status),
		ErranderID:          d.ErranderID,
		Fee:                 d.Fee,
		SenderID:            d.SenderID,
		SenderName:          d.SenderName,
		SenderPhone1:        d.SenderPhone1,
		SenderPhone2:        d.SenderPhone2,
		ItemType:            d.ItemType,
		ItemDescription:     d.ItemDescription,
		DeliveryAddress:     d.DeliveryAddress,
		RecipientName:       d.RecipientName,
		RecipientPhone:      d.RecipientPhone,
		SpecialInstructions: d.SpecialInstructions,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		EstimatedDeliveryAt: d.EstimatedDeliveryAt,
		ActualDeliveryAt:    d.ActualDeliveryAt,
	}
}
