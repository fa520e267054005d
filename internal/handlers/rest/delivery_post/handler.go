package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	intake := entities.DeliveryIntake{
		SenderName:          deliveryCreateDTO.SenderName,
		SenderPhone1:        deliveryCreateDTO.SenderPhone1,
		SenderPhone2:        deliveryCreateDTO.SenderPhone2,
		SenderEmail:         deliveryCreateDTO.SenderEmail,
		ItemType:            deliveryCreateDTO.ItemType,
		ItemDescription:     deliveryCreateDTO.ItemDescription,
		DeliveryAddress:     deliveryCreateDTO.DeliveryAddress,
		RecipientName:       deliveryCreateDTO.RecipientName,
		RecipientPhone:      deliveryCreateDTO.RecipientPhone,
		SpecialInstructions: deliveryCreateDTO.SpecialInstructions,
	}

	view, err := h.service.CreateDeliveryRequest(r.Context(), intake)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
