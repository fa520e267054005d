package delivery_status_patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/dto"
	"github.com/Bamzhie/errander-api/internal/service/delivery"
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

	var statusUpdateDTO dto.DeliveryStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	erranderRef, err := decodeErranderRef(statusUpdateDTO.ErranderID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := entities.DeliveryStatusRequest{
		Status:   statusUpdateDTO.Status,
		Errander: erranderRef,
		Fee:      statusUpdateDTO.Fee,
	}

	view, err := h.service.UpdateDeliveryStatus(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrInvalidFee):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, delivery.ErrErranderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrIllegalTransition),
			errors.Is(err, delivery.ErrAlreadyTerminal):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, delivery.ErrMissingErrander),
			errors.Is(err, delivery.ErrMissingFee):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(newDeliveryDTO(view))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// decodeErranderRef keeps the three wire shapes apart: a missing erranderId
// key leaves the assignment alone, an explicit null clears it, a string
// value assigns that errander.
func decodeErranderRef(raw json.RawMessage) (entities.ErranderRef, error) {
	if raw == nil {
		return entities.ErranderRef{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return entities.ErranderRef{Set: true}, nil
	}

	var id string
	err := json.Unmarshal(raw, &id)
	if err != nil {
		return entities.ErranderRef{}, err
	}
	return entities.ErranderRef{Set: true, ID: &id}, nil
}

func newDeliveryDTO(view *entities.DeliveryView) dto.Delivery {
	return dto.Delivery{
		ID:                  view.ID,
		TrackingNumber:      view.TrackingNumber,
		Status:              view.Status,
		SenderName:          view.SenderName,
		SenderPhone1:        view.SenderPhone1,
		SenderPhone2:        view.SenderPhone2,
		ItemType:            view.ItemType,
		ItemDescription:     view.ItemDescription,
		DeliveryAddress:     view.DeliveryAddress,
		RecipientName:       view.RecipientName,
		RecipientPhone:      view.RecipientPhone,
		SpecialInstructions: view.SpecialInstructions,
		ErranderID:          view.ErranderID,
		ErranderName:        view.ErranderName,
		ErranderPhone:       view.ErranderPhone,
		Fee:                 view.Fee,
		CreatedAt:           view.CreatedAt,
		UpdatedAt:           view.UpdatedAt,
		EstimatedDeliveryAt: view.EstimatedDeliveryAt,
		ActualDeliveryAt:    view.ActualDeliveryAt,
	}
}
