package entities

import (
	"strings"
	"time"
)

type Delivery struct {
	ID                  string
	TrackingNumber      string
	Status              DeliveryStatusType
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

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "PENDING"
	DeliveryConfirmed DeliveryStatusType = "CONFIRMED"
	DeliveryPickedUp  DeliveryStatusType = "PICKED_UP"
	DeliveryInTransit DeliveryStatusType = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatusType = "DELIVERED"
	DeliveryCancelled DeliveryStatusType = "CANCELLED"
	DeliveryFailed    DeliveryStatusType = "FAILED_DELIVERY"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryConfirmed, DeliveryPickedUp,
		DeliveryInTransit, DeliveryDelivered, DeliveryCancelled, DeliveryFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s DeliveryStatusType) IsTerminal() bool {
	switch s {
	case DeliveryDelivered, DeliveryCancelled, DeliveryFailed:
		return true
	default:
		return false
	}
}

// Transport returns the lowercase form used on the wire and in views.
// The canonical uppercase form never leaves the collaborator boundary.
func (s DeliveryStatusType) Transport() string {
	return strings.ToLower(string(s))
}

// ParseDeliveryStatus normalizes a transport-level status string
// (any case, hyphens or underscores) into the canonical enum.
func ParseDeliveryStatus(raw string) (DeliveryStatusType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	status := DeliveryStatusType(normalized)
	if !status.IsValid() {
		return "", false
	}
	return status, true
}

// DeliveryModify carries the fields of a delivery being created.
type DeliveryModify struct {
	ID                  *string
	TrackingNumber      *string
	Status              *DeliveryStatusType
	SenderID            *string
	SenderName          *string
	SenderPhone1        *string
	SenderPhone2        *string
	ItemType            *string
	ItemDescription     *string
	DeliveryAddress     *string
	RecipientName       *string
	RecipientPhone      *string
	SpecialInstructions *string
	EstimatedDeliveryAt *time.Time
}

// ErranderRef is the tri-state errander reference of a status update request:
// not Set keeps the current assignment, Set with a nil ID clears it,
// Set with a non-nil ID assigns that errander.
type ErranderRef struct {
	Set bool
	ID  *string
}

// DeliveryStatusRequest is a raw, caller-supplied change. Status is kept as a
// string until the validator normalizes it.
type DeliveryStatusRequest struct {
	Status   *string
	Errander ErranderRef
	Fee      *int64
}

// DeliveryStatusChange is the validated, normalized pending change. Only
// fields that actually differ from the stored delivery are populated; it is
// consumed verbatim by persistence.
type DeliveryStatusChange struct {
	Status           *DeliveryStatusType
	Errander         ErranderRef
	Fee              *int64
	ActualDeliveryAt *time.Time

	// EffectiveErranderID is the assignment after the change resolves:
	// the requested value when present, the stored one otherwise.
	EffectiveErranderID *string
}

func (c DeliveryStatusChange) Empty() bool {
	return c.Status == nil && !c.Errander.Set && c.Fee == nil && c.ActualDeliveryAt == nil
}

// ErranderMutation is one availability side effect computed by the
// assignment coordinator.
type ErranderMutation struct {
	ErranderID string
	Status     ErranderStatusType
}

// DeliveryView is the denormalized read model returned to callers.
type DeliveryView struct {
	ID                  string
	TrackingNumber      string
	Status              string
	SenderName          string
	SenderPhone1        string
	SenderPhone2        *string
	ItemType            string
	ItemDescription     *string
	DeliveryAddress     string
	RecipientName       string
	RecipientPhone      string
	SpecialInstructions *string
	ErranderID          *string
	ErranderName        *string
	ErranderPhone       *string
	Fee                 *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	EstimatedDeliveryAt *time.Time
	ActualDeliveryAt    *time.Time
}

// DeliveryIntake is a new delivery request from a customer.
type DeliveryIntake struct {
	SenderName          string
	SenderPhone1        string
	SenderPhone2        *string
	SenderEmail         *string
	ItemType            string
	ItemDescription     *string
	DeliveryAddress     string
	RecipientName       string
	RecipientPhone      string
	SpecialInstructions *string
}
