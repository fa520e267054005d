// Package dto holds the request and response shapes of the REST API.
package dto

import (
	"encoding/json"
	"time"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type DeliveryCreate struct {
	SenderName          string  `json:"senderName"`
	SenderPhone1        string  `json:"senderPhone1"`
	SenderPhone2        *string `json:"senderPhone2,omitempty"`
	SenderEmail         *string `json:"senderEmail,omitempty"`
	ItemType            string  `json:"itemType"`
	ItemDescription     *string `json:"itemDescription,omitempty"`
	DeliveryAddress     string  `json:"deliveryAddress"`
	RecipientName       string  `json:"recipientName"`
	RecipientPhone      string  `json:"recipientPhone"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}

type Delivery struct {
	ID                  string     `json:"id"`
	TrackingNumber      string     `json:"trackingNumber"`
	Status              string     `json:"status"`
	SenderName          string     `json:"senderName"`
	SenderPhone1        string     `json:"senderPhone1"`
	SenderPhone2        *string    `json:"senderPhone2,omitempty"`
	ItemType            string     `json:"itemType"`
	ItemDescription     *string    `json:"itemDescription,omitempty"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	RecipientName       string     `json:"recipientName"`
	RecipientPhone      string     `json:"recipientPhone"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`
	ErranderID          *string    `json:"erranderId"`
	ErranderName        *string    `json:"erranderName,omitempty"`
	ErranderPhone       *string    `json:"erranderPhone,omitempty"`
	Fee                 *int64     `json:"fee"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt,omitempty"`
	ActualDeliveryAt    *time.Time `json:"actualDeliveryAt,omitempty"`
}

// DeliveryStatusUpdate distinguishes an absent erranderId from an explicit
// null: absent keeps the current assignment, null clears it. The raw message
// is nil only when the key is missing.
type DeliveryStatusUpdate struct {
	Status     *string         `json:"status,omitempty"`
	ErranderID json.RawMessage `json:"erranderId,omitempty"`
	Fee        *int64          `json:"fee,omitempty"`
}

type ErranderApply struct {
	FullName       string  `json:"fullName"`
	PhoneNumber    string  `json:"phoneNumber"`
	WhatsappNumber *string `json:"whatsappNumber,omitempty"`
	Email          *string `json:"email,omitempty"`
	School         string  `json:"school"`
	HomeAddress    string  `json:"homeAddress"`
}

type Errander struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	PhoneNumber    string     `json:"phoneNumber"`
	WhatsappNumber *string    `json:"whatsappNumber,omitempty"`
	Email          *string    `json:"email,omitempty"`
	School         string     `json:"school"`
	HomeAddress    string     `json:"homeAddress"`
	IDCardURL      *string    `json:"idCardUrl,omitempty"`
	Status         string     `json:"status"`
	Availability   string     `json:"availability"`
	IsVerified     bool       `json:"isVerified"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type ErranderWithStats struct {
	Errander
	TotalDeliveries int64      `json:"totalDeliveries"`
	Earnings        int64      `json:"earnings"`
	LastActiveAt    *time.Time `json:"lastActiveAt,omitempty"`
}

type ErranderStatusUpdate struct {
	Status     string  `json:"status"`
	VerifiedBy *string `json:"verifiedBy,omitempty"`
}

type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Phone1    string    `json:"phone1"`
	Phone2    *string   `json:"phone2,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerWithStats struct {
	Customer
	TotalOrders    int64      `json:"totalOrders"`
	TotalSpent     int64      `json:"totalSpent"`
	LastOrderAt    *time.Time `json:"lastOrderAt,omitempty"`
	ActivityStatus string     `json:"activityStatus"`
}
