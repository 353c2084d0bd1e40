package service

import (
	"sort"
	"time"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
)

// UpcomingMaturities returns the assets maturing on or after from's day and
// no later than from+window, earliest first. A negative window means unbounded.
func UpcomingMaturities(assets []model.Asset, from time.Time, window time.Duration) []model.MaturityEvent {
	day := truncateDay(from)

	events := []model.MaturityEvent{}
	for _, a := range assets {
		if a.MaturityDate == nil {
			continue
		}
		m := truncateDay(*a.MaturityDate)
		if m.Before(day) {
			continue
		}
		if window >= 0 && m.After(day.Add(window)) {
			continue
		}
		events = append(events, model.MaturityEvent{
			AssetID:      a.ID,
			AssetName:    a.Name,
			MaturityDate: m,
			DaysLeft:     int(m.Sub(day).Hours() / 24),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].MaturityDate.Before(events[j].MaturityDate)
	})
	return events
}

// NextMaturity returns the earliest maturity on or after asOf, or nil.
func NextMaturity(assets []model.Asset, asOf time.Time) *model.MaturityEvent {
	events := UpcomingMaturities(assets, asOf, -1)
	if len(events) == 0 {
		return nil
	}
	return &events[0]
}
