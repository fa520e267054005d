package entities

import (
	"strings"
	"time"
)

type Errander struct {
	ID             string
	UserID         string
	FullName       string
	PhoneNumber    string
	WhatsappNumber *string
	Email          *string
	School         string
	HomeAddress    string
	IDCardURL      *string
	IDCardFileName *string
	Status         ErranderStatusType
	IsVerified     bool
	VerifiedAt     *time.Time
	VerifiedBy     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ErranderStatusType string

const (
	ErranderPending    ErranderStatusType = "PENDING"
	ErranderApproved   ErranderStatusType = "APPROVED"
	ErranderOnDelivery ErranderStatusType = "ON_DELIVERY"
	ErranderRejected   ErranderStatusType = "REJECTED"
	ErranderSuspended  ErranderStatusType = "SUSPENDED"
)

const DefaultErranderStatus = ErranderPending

func (s ErranderStatusType) String() string {
	return string(s)
}

func (s ErranderStatusType) IsValid() bool {
	switch s {
	case ErranderPending, ErranderApproved, ErranderOnDelivery,
		ErranderRejected, ErranderSuspended:
		return true
	default:
		return false
	}
}

// Availability maps the lifecycle status to the display availability
// shown on the admin dashboard.
func (s ErranderStatusType) Availability() string {
	switch s {
	case ErranderApproved:
		return "available"
	case ErranderOnDelivery:
		return "on-trip"
	default:
		return "offline"
	}
}

// ParseErranderStatus normalizes a transport-level status string into the
// canonical enum.
func ParseErranderStatus(raw string) (ErranderStatusType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	status := ErranderStatusType(normalized)
	if !status.IsValid() {
		return "", false
	}
	return status, true
}

type ErranderModify struct {
	ID             *string
	Status         *ErranderStatusType
	IsVerified     *bool
	VerifiedAt     *time.Time
	VerifiedBy     *string
	IDCardURL      *string
	IDCardFileName *string
}

// ErranderApplication is a submitted errander onboarding form.
type ErranderApplication struct {
	FullName       string
	PhoneNumber    string
	WhatsappNumber *string
	Email          *string
	School         string
	HomeAddress    string
	IDCardURL      *string
	IDCardFileName *string
}

// ErranderStats is the dashboard row for one errander.
type ErranderStats struct {
	Errander        Errander
	TotalDeliveries int64
	Earnings        int64
	LastActiveAt    *time.Time
}
