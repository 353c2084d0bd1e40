package service

import (
	"strings"
	"sync"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// MockUser is the account every login resolves to.
var MockUser = model.User{
	Name:             "Ricardo Silva",
	Email:            "ricardo.silva@kwanzafolio.com",
	SubscriptionPlan: model.PlanGold,
	MemberSince:      time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
}

// Profile is the signed-in user as shown on the profile page.
type Profile struct {
	User     model.User `json:"user"`
	Initials string     `json:"initials"`
}

// SessionService is the single-user mock session. Credentials are accepted
// without checking; there is no real authentication.
type SessionService struct {
	mu       sync.RWMutex
	loggedIn bool
	user     model.User
}

// NewSessionService creates a logged-out session.
func NewSessionService() *SessionService {
	return &SessionService{user: MockUser}
}

// Login marks the session as signed in as the mock user.
func (s *SessionService) Login() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	return newProfile(s.user)
}

// Register behaves like Login.
func (s *SessionService) Register() Profile {
	return s.Login()
}

// RecoverPassword only acknowledges the request; it does not sign in.
func (s *SessionService) RecoverPassword() {}

// Logout clears the session.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
}

// LoggedIn reports whether a user is signed in.
func (s *SessionService) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Profile returns the signed-in user, or apperrors.ErrNotLoggedIn.
func (s *SessionService) Profile() (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loggedIn {
		return Profile{}, apperrors.ErrNotLoggedIn
	}
	return newProfile(s.user), nil
}

// ChangePlan switches the subscription plan of the signed-in user.
func (s *SessionService) ChangePlan(plan model.SubscriptionPlan) (Profile, error) {
	if !plan.Valid() {
		return Profile{}, apperrors.ErrUnknownPlan
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return Profile{}, apperrors.ErrNotLoggedIn
	}
	s.user.SubscriptionPlan = plan
	return newProfile(s.user), nil
}

func newProfile(u model.User) Profile {
	return Profile{User: u, Initials: Initials(u.Name)}
}

// Initials returns the first letter of each word of name, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}
