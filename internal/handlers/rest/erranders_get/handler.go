package erranders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/dto"
	"github.com/Bamzhie/errander-api/internal/service/errander"
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
	var statusFilter *entities.ErranderStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := entities.ParseErranderStatus(raw)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		statusFilter = &status
	}

	stats, err := h.service.GetErrandersWithStats(r.Context(), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, errander.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	erranderDTOs := make([]dto.ErranderWithStats, len(stats))
	for i, row := range stats {
		erranderDTOs[i] = dto.ErranderWithStats{
			Errander: dto.Errander{
				ID:             row.Errander.ID,
				FullName:       row.Errander.FullName,
				PhoneNumber:    row.Errander.PhoneNumber,
				WhatsappNumber: row.Errander.WhatsappNumber,
				Email:          row.Errander.Email,
				School:         row.Errander.School,
				HomeAddress:    row.Errander.HomeAddress,
				IDCardURL:      row.Errander.IDCardURL,
				Status:         strings.ToLower(row.Errander.Status.String()),
				Availability:   row.Errander.Status.Availability(),
				IsVerified:     row.Errander.IsVerified,
				VerifiedAt:     row.Errander.VerifiedAt,
				CreatedAt:      row.Errander.CreatedAt,
			},
			TotalDeliveries: row.TotalDeliveries,
			Earnings:        row.Earnings,
			LastActiveAt:    row.LastActiveAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(erranderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
