package errander

import (
	"strings"

	"github.com/Bamzhie/errander-api/internal/entities"
)

func isValidApplication(application entities.ErranderApplication) bool {
	return strings.TrimSpace(application.FullName) != "" &&
		strings.TrimSpace(application.PhoneNumber) != "" &&
		strings.TrimSpace(application.School) != "" &&
		strings.TrimSpace(application.HomeAddress) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}
	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}
	if phone == "" {
		return false
	}
	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
