package customer

import "time"

type CustomerDB struct {
	ID        string
	FullName  string
	Phone1    string
	Phone2    *string
	Email     *string
	UserType  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomerStatsDB struct {
	Customer    CustomerDB
	TotalOrders int64
	TotalSpent  int64
	LastOrderAt *time.Time
}
