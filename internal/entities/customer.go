package entities

import "time"

type Customer struct {
	ID        string
	FullName  string
	Phone1    string
	Phone2    *string
	Email     *string
	UserType  UserType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserType string

const (
	UserCustomer UserType = "customer"
	UserErrander UserType = "errander"
)

func (t UserType) String() string {
	return string(t)
}

type CustomerModify struct {
	ID       *string
	FullName *string
	Phone1   *string
	Phone2   *string
	Email    *string
	UserType *UserType
}

// CustomerStats is the dashboard row for one customer.
type CustomerStats struct {
	Customer    Customer
	TotalOrders int64
	TotalSpent  int64
	LastOrderAt *time.Time
}

// ActivityStatus derives the dashboard activity flag: a customer with no
// orders, or none in the last 30 days, counts as inactive.
func (s CustomerStats) ActivityStatus(now time.Time) string {
	if s.TotalOrders == 0 || s.LastOrderAt == nil {
		return "inactive"
	}
	if s.LastOrderAt.Before(now.AddDate(0, 0, -30)) {
		return "inactive"
	}
	return "active"
}
