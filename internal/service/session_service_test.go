package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/apperrors"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

func TestSessionService(t *testing.T) {
	t.Run("profile requires login", func(t *testing.T) {
		s := service.NewSessionService()

		_, err := s.Profile()

		assert.True(t, errors.Is(err, apperrors.ErrNotLoggedIn))
		assert.False(t, s.LoggedIn())
	})

	t.Run("login resolves to the mock user", func(t *testing.T) {
		s := service.NewSessionService()

		p := s.Login()

		assert.True(t, s.LoggedIn())
		assert.Equal(t, "Ricardo Silva", p.User.Name)
		assert.Equal(t, "ricardo.silva@kwanzafolio.com", p.User.Email)
		assert.Equal(t, model.PlanGold, p.User.SubscriptionPlan)
		assert.Equal(t, "RS", p.Initials)
	})

	t.Run("register logs in, recover does not", func(t *testing.T) {
		s := service.NewSessionService()

		s.RecoverPassword()
		assert.False(t, s.LoggedIn())

		s.Register()
		assert.True(t, s.LoggedIn())
	})

	t.Run("logout clears the session", func(t *testing.T) {
		s := service.NewSessionService()
		s.Login()

		s.Logout()

		assert.False(t, s.LoggedIn())
	})

	t.Run("change plan", func(t *testing.T) {
		s := service.NewSessionService()
		s.Login()

		p, err := s.ChangePlan(model.PlanPro)
		require.NoError(t, err)
		assert.Equal(t, model.PlanPro, p.User.SubscriptionPlan)

		again, _ := s.Profile()
		assert.Equal(t, model.PlanPro, again.User.SubscriptionPlan)

		_, err = s.ChangePlan("Platinum")
		assert.True(t, errors.Is(err, apperrors.ErrUnknownPlan))
	})

	t.Run("change plan while logged out", func(t *testing.T) {
		_, err := service.NewSessionService().ChangePlan(model.PlanFree)

		assert.True(t, errors.Is(err, apperrors.ErrNotLoggedIn))
	})
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ricardo Silva":        "RS",
		"ana maria dos santos": "AMDS",
		"  Élio  ":             "É",
		"":                     "",
	}
	for name, want := range tests {
		assert.Equal(t, want, service.Initials(name), name)
	}
}
