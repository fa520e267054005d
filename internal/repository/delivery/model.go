package delivery

import "time"

type DeliveryDB struct {
	ID                  string
	TrackingNumber      string
	Status              string
	ErranderID          *string
	Fee                 *int64
	SenderID            string
	SenderName          string
	SenderPhone1        string
	SenderPhone2        *string
	ItemType            string
	ItemDescription     *string
	DeliveryAddress     string
	RecipientName       string
	RecipientPhone      string
	SpecialInstructions *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	EstimatedDeliveryAt *time.Time
	ActualDeliveryAt    *time.Time
}
