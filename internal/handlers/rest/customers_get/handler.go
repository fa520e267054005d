package customers_get

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bamzhie/errander-api/internal/handlers/rest/dto"
	"github.com/Bamzhie/errander-api/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetCustomersWithStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	customerDTOs := make([]dto.CustomerWithStats, len(stats))
	for i, row := range stats {
		customerDTOs[i] = dto.CustomerWithStats{
			Customer: dto.Customer{
				ID:        row.Customer.ID,
				FullName:  row.Customer.FullName,
				Phone1:    row.Customer.Phone1,
				Phone2:    row.Customer.Phone2,
				Email:     row.Customer.Email,
				CreatedAt: row.Customer.CreatedAt,
			},
			TotalOrders:    row.TotalOrders,
			TotalSpent:     row.TotalSpent,
			LastOrderAt:    row.LastOrderAt,
			ActivityStatus: row.ActivityStatus(now),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(customerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
