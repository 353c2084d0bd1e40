package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	validateEmail(req.Email, errors)
	if strings.TrimSpace(req.Password) == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateRegister(req request.RegisterRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	validateEmail(req.Email, errors)
	if len(req.Password) < 6 {
		errors["password"] = "password must be at least 6 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateRecover(req request.RecoverRequest) error {
	errors := make(map[string]string)

	validateEmail(req.Email, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateChangePlan(req request.ChangePlanRequest) error {
	if !model.SubscriptionPlan(req.Plan).Valid() {
		return &Error{Fields: map[string]string{
			"plan": fmt.Sprintf("invalid plan: %s", req.Plan),
		}}
	}
	return nil
}

func validateEmail(email string, errors map[string]string) {
	if strings.TrimSpace(email) == "" {
		errors["email"] = "email is required"
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "email is not valid"
	}
}
