package errander

import "time"

type ErranderDB struct {
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
	Status         string
	IsVerified     bool
	VerifiedAt     *time.Time
	VerifiedBy     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ErranderStatsDB struct {
	Errander        ErranderDB
	TotalDeliveries int64
	Earnings        int64
	LastActiveAt    *time.Time
}
