package handlers

import (
	"errors"
	"net/http"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/request"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
)

// SessionHandler serves the mock login flow and the profile page.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login signs in as the demo user. Any well-formed credentials are accepted.
//
// Endpoint: POST /api/session/login
// Request Body: LoginRequest (email, password)
// Response: 200 OK with service.Profile
// Error: 400 Bad Request if validation fails
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateLogin(req); err != nil {
		respondValidation(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, h.sessionService.Login())
}

// Register behaves like Login after validating the sign-up form.
//
// Endpoint: POST /api/session/register
// Request Body: RegisterRequest (name, email, password)
// Response: 200 OK with service.Profile
// Error: 400 Bad Request if validation fails
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RegisterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateRegister(req); err != nil {
		respondValidation(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, h.sessionService.Register())
}

// Recover acknowledges a password recovery request. Nothing is sent.
//
// Endpoint: POST /api/session/recover
// Request Body: RecoverRequest (email)
// Response: 202 Accepted with MessageResponse
// Error: 400 Bad Request if validation fails
func (h *SessionHandler) Recover(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RecoverRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateRecover(req); err != nil {
		respondValidation(w, err)
		return
	}

	h.sessionService.RecoverPassword()
	response.RespondJSON(w, http.StatusAccepted, MessageResponse{Message: "recovery instructions sent"})
}

// Logout ends the session.
//
// Endpoint: POST /api/session/logout
// Response: 204 No Content
func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.sessionService.Logout()
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Profile returns the signed-in user with initials.
//
// Endpoint: GET /api/profile
// Response: 200 OK with service.Profile
// Error: 401 Unauthorized if nobody is signed in
func (h *SessionHandler) Profile(w http.ResponseWriter, _ *http.Request) {
	p, err := h.sessionService.Profile()
	if err != nil {
		response.RespondError(w, http.StatusUnauthorized, apperrors.ErrNotLoggedIn.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, p)
}

// ChangePlan switches the subscription plan.
//
// Endpoint: PUT /api/profile/subscription
// Request Body: ChangePlanRequest (plan: Free, Pro, Premium or Gold)
// Response: 200 OK with service.Profile
// Error: 400 Bad Request if the plan is unknown
// Error: 401 Unauthorized if nobody is signed in
func (h *SessionHandler) ChangePlan(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ChangePlanRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateChangePlan(req); err != nil {
		respondValidation(w, err)
		return
	}

	p, err := h.sessionService.ChangePlan(model.SubscriptionPlan(req.Plan))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotLoggedIn):
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrNotLoggedIn.Error(), err.Error())
		case errors.Is(err, apperrors.ErrUnknownPlan):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnknownPlan.Error(), err.Error())
		default:
			respondInternal(w, r, "failed to change plan", err)
		}
		return
	}
	response.RespondJSON(w, http.StatusOK, p)
}
