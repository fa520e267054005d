package customer

import "github.com/Bamzhie/errander-api/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	return &entities.Customer{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone1:    c.Phone1,
		Phone2:    c.Phone2,
		Email:     c.Email,
		UserType:  entities.UserType(c.UserType),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToStatsDomain(s *CustomerStatsDB) entities.CustomerStats {
	return entities.CustomerStats{
		Customer:    *ToDomain(&s.Customer),
		TotalOrders: s.TotalOrders,
		TotalSpent:  s.TotalSpent,
		LastOrderAt: s.LastOrderAt,
	}
}

func ToStatsDomainList(models []CustomerStatsDB) []entities.CustomerStats {
	stats := make([]entities.CustomerStats, 0, len(models))
	for i := range models {
		stats = append(stats, ToStatsDomain(&models[i]))
	}
	return stats
}
