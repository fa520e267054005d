package customer_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Bamzhie/errander-api/internal/handlers/rest/dto"
	"github.com/Bamzhie/errander-api/internal/service/customer"
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
	id := mux.Vars(r)["id"]

	stats, err := h.service.GetCustomerStats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	customerDTO := dto.CustomerWithStats{
		Customer: dto.Customer{
			ID:        stats.Customer.ID,
			FullName:  stats.Customer.FullName,
			Phone1:    stats.Customer.Phone1,
			Phone2:    stats.Customer.Phone2,
			Email:     stats.Customer.Email,
			CreatedAt: stats.Customer.CreatedAt,
		},
		TotalOrders:    stats.TotalOrders,
		TotalSpent:     stats.TotalSpent,
		LastOrderAt:    stats.LastOrderAt,
		ActivityStatus: stats.ActivityStatus(time.Now().UTC()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(customerDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
