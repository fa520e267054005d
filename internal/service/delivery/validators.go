package delivery

import (
	"strings"

	"github.com/Bamzhie/errander-api/internal/entities"
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidIntake(intake entities.DeliveryIntake) bool {
	return strings.TrimSpace(intake.SenderName) != "" &&
		strings.TrimSpace(intake.SenderPhone1) != "" &&
		strings.TrimSpace(intake.ItemType) != "" &&
		strings.TrimSpace(intake.DeliveryAddress) != "" &&
		strings.TrimSpace(intake.RecipientName) != "" &&
		strings.TrimSpace(intake.RecipientPhone) != ""
}
