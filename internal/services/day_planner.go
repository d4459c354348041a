package services

import (
	"context"
	"encoding/json"
	"math"

	"go.uber.org/zap"
	"tripmate/pkg/utils"
)

type DayPlannerInterface interface {
	PlanDays(ctx context.Context, start Place, places []Place, dayCount int) ([]DailyPlan, error)
}

type DayPlanner struct {
	aiClient utils.AIClientInterface
}

// NewDayPlanner accepts a nil aiClient, in which case every plan comes from
// the geographic fallback.
func NewDayPlanner(aiClient utils.AIClientInterface) DayPlannerInterface {
	return &DayPlanner{aiClient: aiClient}
}

type dayGrouping struct {
	Days []struct {
		Day        int      `json:"day"`
		ContentIDs []string `json:"content_ids"`
	} `json:"days"`
}

// PlanDays assigns every place to exactly one of dayCount days. The result
// always has dayCount entries, days numbered from 1.
func (p *DayPlanner) PlanDays(ctx context.Context, start Place, places []Place, dayCount int) ([]DailyPlan, error) {
	if dayCount < 1 {
		return nil, utils.ErrInvalidInput
	}
	if len(places) == 0 || p.aiClient == nil {
		return fallbackDays(start, places, dayCount), nil
	}

	summaries := make([]utils.PlaceSummary, 0, len(places))
	for _, pl := range places {
		summaries = append(summaries, toPlaceSummary(pl))
	}

	raw, err := p.aiClient.GenerateDayGroupingJSON(ctx, toPlaceSummary(start), summaries, dayCount)
	if err != nil {
		zap.L().Warn("ai day grouping failed, using fallback",
			zap.String("provider", p.aiClient.Provider()), zap.Error(err))
		return fallbackDays(start, places, dayCount), nil
	}

	days, ok := applyGrouping(raw, start, places, dayCount)
	if !ok {
		zap.L().Warn("ai day grouping unparsable, using fallback", zap.String("provider", p.aiClient.Provider()))
		return fallbackDays(start, places, dayCount), nil
	}
	return days, nil
}

// applyGrouping trusts the provider for ids it knows about and routes every
// place it forgot through the fallback. Unknown, repeated or out-of-range
// entries are dropped.
func applyGrouping(raw string, start Place, places []Place, dayCount int) ([]DailyPlan, bool) {
	var grouping dayGrouping
	if err := json.Unmarshal([]byte(raw), &grouping); err != nil {
		return nil, false
	}

	byID := make(map[string]Place, len(places))
	for _, pl := range places {
		byID[pl.ContentID] = pl
	}

	days := emptyDays(dayCount)
	assigned := make(map[string]bool, len(places))
	for _, d := range grouping.Days {
		if d.Day < 1 || d.Day > dayCount {
			continue
		}
		for _, id := range d.ContentIDs {
			pl, known := byID[id]
			if !known || assigned[id] {
				continue
			}
			assigned[id] = true
			days[d.Day-1].Places = append(days[d.Day-1].Places, pl)
		}
	}

	var missing []Place
	for _, pl := range places {
		if !assigned[pl.ContentID] {
			missing = append(missing, pl)
		}
	}
	if len(missing) > 0 {
		for i, extra := range fallbackDays(start, missing, dayCount) {
			days[i].Places = append(days[i].Places, extra.Places...)
		}
	}
	return days, true
}

func emptyDays(dayCount int) []DailyPlan {
	days := make([]DailyPlan, dayCount)
	for i := range days {
		days[i] = DailyPlan{Day: i + 1, Places: []Place{}}
	}
	return days
}

// fallbackDays orders the non-lodging places nearest-first from start and
// cuts them into chunks of ceil(n/dayCount). Lodging is then handed out one
// per day: walking the days in order, each day takes the remaining lodging
// nearest its last stop, or nearest the previous pick (start on day 1) when
// it has no stops. Any surplus lands on the last day.
func fallbackDays(start Place, places []Place, dayCount int) []DailyPlan {
	days := emptyDays(dayCount)

	var spots, lodgings []Place
	for _, pl := range places {
		if pl.IsLodging() {
			lodgings = append(lodgings, pl)
		} else {
			spots = append(spots, pl)
		}
	}

	if len(spots) > 0 {
		size := int(math.Ceil(float64(len(spots)) / float64(dayCount)))
		for i, pl := range nearestNeighborOrder(start, spots) {
			d := i / size
			days[d].Places = append(days[d].Places, pl)
		}
	}

	anchor := start
	for d := 0; d < dayCount && len(lodgings) > 0; d++ {
		if n := len(days[d].Places); n > 0 {
			anchor = days[d].Places[n-1]
		}
		pick := nearestNeighborOrder(anchor, lodgings)[0]
		days[d].Places = append(days[d].Places, pick)
		lodgings = withoutPlace(lodgings, pick)
		anchor = pick
	}
	days[dayCount-1].Places = append(days[dayCount-1].Places, lodgings...)

	return days
}

func withoutPlace(places []Place, target Place) []Place {
	out := make([]Place, 0, len(places))
	for _, pl := range places {
		if !pl.SameAs(target) {
			out = append(out, pl)
		}
	}
	return out
}
