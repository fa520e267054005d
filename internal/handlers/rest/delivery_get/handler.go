package delivery_get

import (
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

	view, err := h.service.GetDelivery(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
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
