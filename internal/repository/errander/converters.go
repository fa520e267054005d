package errander

import "github.com/Bamzhie/errander-api/internal/entities"

func ToDomain(e *ErranderDB) *entities.Errander {
	if e == nil {
		return nil
	}
	return &entities.Errander{
		ID:             e.ID,
		UserID:         e.UserID,
		FullName:       e.FullName,
		PhoneNumber:    e.PhoneNumber,
		WhatsappNumber: e.WhatsappNumber,
		Email:          e.Email,
		School:         e.School,
		HomeAddress:    e.HomeAddress,
		IDCardURL:      e.IDCardURL,
		IDCardFileName: e.IDCardFileName,
		Status:         entities.ErranderStatusType(e.Status),
		IsVerified:     e.IsVerified,
		VerifiedAt:     e.VerifiedAt,
		VerifiedBy:     e.VerifiedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToStatsDomain(s *ErranderStatsDB) entities.ErranderStats {
	return entities.ErranderStats{
		Errander:        *ToDomain(&s.Errander),
		TotalDeliveries: s.TotalDeliveries,
		Earnings:        s.Earnings,
		LastActiveAt:    s.LastActiveAt,
	}
}

func ToStatsDomainList(models []ErranderStatsDB) []entities.ErranderStats {
	stats := make([]entities.ErranderStats, 0, len(models))
	for i := range models {
		stats = append(stats, ToStatsDomain(&models[i]))
	}
	return stats
}
