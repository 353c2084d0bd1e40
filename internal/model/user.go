package model

import "time"

// SubscriptionPlan is the tier shown on the profile page.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "Free"
	PlanPro     SubscriptionPlan = "Pro"
	PlanPremium SubscriptionPlan = "Premium"
	PlanGold    SubscriptionPlan = "Gold"
)

// Valid reports whether p is a known plan.
func (p SubscriptionPlan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPremium, PlanGold:
		return true
	}
	return false
}

// User is the (mock) signed-in account.
type User struct {
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan"`
	MemberSince      time.Time        `json:"memberSince"`
}
