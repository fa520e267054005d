package errander_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

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
	id := mux.Vars(r)["id"]

	var statusUpdateDTO dto.ErranderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, ok := entities.ParseErranderStatus(statusUpdateDTO.Status)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	erranderModify := entities.ErranderModify{
		ID:         &id,
		Status:     &status,
		VerifiedBy: statusUpdateDTO.VerifiedBy,
	}

	updated, err := h.service.UpdateErrander(r.Context(), erranderModify)
	if err != nil {
		switch {
		case errors.Is(err, errander.ErrInvalidErranderID),
			errors.Is(err, errander.ErrInvalidStatus),
			errors.Is(err, errander.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errander.ErrErranderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	erranderDTO := dto.Errander{
		ID:             updated.ID,
		FullName:       updated.FullName,
		PhoneNumber:    updated.PhoneNumber,
		WhatsappNumber: updated.WhatsappNumber,
		Email:          updated.Email,
		School:         updated.School,
		HomeAddress:    updated.HomeAddress,
		IDCardURL:      updated.IDCardURL,
		Status:         strings.ToLower(updated.Status.String()),
		Availability:   updated.Status.Availability(),
		IsVerified:     updated.IsVerified,
		VerifiedAt:     updated.VerifiedAt,
		CreatedAt:      updated.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(erranderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
