package delivery_status_requested

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"github.com/Bamzhie/errander-api/internal/entities"
	deliveryservice "github.com/Bamzhie/errander-api/internal/service/delivery"
	"github.com/Bamzhie/errander-api/pkg/logger"
)

// statusRequestedEvent mirrors the delivery.status.requested message body.
// ErranderID stays raw so an explicit null (unassign) is distinguishable
// from an absent key (keep current).
type statusRequestedEvent struct {
	DeliveryID string          `json:"deliveryId"`
	Status     *string         `json:"status,omitempty"`
	ErranderID json.RawMessage `json:"erranderId,omitempty"`
	Fee        *int64          `json:"fee,omitempty"`
}

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("delivery.status.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, message will be reprocessed)
// and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusRequestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.status.requested processing")

	erranderRef, err := decodeErranderRef(event.ErranderID)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("delivery.status.requested handler received bad errander reference")
		sess.MarkMessage(message, "")
		return false
	}

	req := entities.DeliveryStatusRequest{
		Status:   event.Status,
		Errander: erranderRef,
		Fee:      event.Fee,
	}

	view, err := h.deliveryService.UpdateDeliveryStatus(ctx, event.DeliveryID, req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, deliveryservice.ErrAlreadyTerminal):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.requested handler delivery already terminal")

		case errors.Is(err, deliveryservice.ErrIllegalTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.requested handler illegal transition")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.requested handler failed to process delivery")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("delivery", view.ID),
		logger.NewField("current_status", view.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.status.requested: processed")

	sess.MarkMessage(message, "")
	return false
}

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
