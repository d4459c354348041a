package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/pkg/utils"
)

func dayIDs(days []DailyPlan) [][]string {
	out := make([][]string, 0, len(days))
	for _, d := range days {
		ids := []string{}
		for _, p := range d.Places {
			ids = append(ids, p.ContentID)
		}
		out = append(out, ids)
	}
	return out
}

func TestFallbackDays_ChunksNearestFirst(t *testing.T) {
	places := []Place{spot("E", 0, 5), spot("A", 0, 1), spot("C", 0, 3), spot("B", 0, 2), spot("D", 0, 4)}

	days := fallbackDays(origin, places, 2)

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}}, dayIDs(days))
}

func TestFallbackDays_SpreadsLodging(t *testing.T) {
	places := []Place{
		lodging("H1", 0, 1.5), lodging("H2", 0, 3.5), lodging("H3", 0, 9),
		spot("A", 0, 1), spot("B", 0, 3),
	}

	days := fallbackDays(origin, places, 2)

	// One lodging per day near that day's last stop; the surplus goes last.
	assert.Equal(t, [][]string{{"A", "H1"}, {"B", "H2", "H3"}}, dayIDs(days))
}

func TestFallbackDays_EarlierDayPicksLodgingFirst(t *testing.T) {
	places := []Place{spot("A", 0, 1), spot("B", 0, 5), lodging("H1", 0, 4.8), lodging("H2", 0, 10)}

	days := fallbackDays(origin, places, 2)

	// H1 is nearer B, but day 1 chooses first and takes it.
	assert.Equal(t, [][]string{{"A", "H1"}, {"B", "H2"}}, dayIDs(days))
}

func TestFallbackDays_MoreDaysThanPlaces(t *testing.T) {
	days := fallbackDays(origin, []Place{spot("A", 0, 1)}, 3)

	assert.Equal(t, [][]string{{"A"}, {}, {}}, dayIDs(days))
}

func TestPlanDays_WithoutAIUsesFallback(t *testing.T) {
	planner := NewDayPlanner(nil)

	days, err := planner.PlanDays(context.Background(), origin, []Place{spot("A", 0, 1), spot("B", 0, 2)}, 2)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, dayIDs(days))
}

func TestPlanDays_RejectsZeroDays(t *testing.T) {
	_, err := NewDayPlanner(nil).PlanDays(context.Background(), origin, nil, 0)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlanDays_AIResponseIsSanitized(t *testing.T) {
	ai := &fakeAIClient{grouping: `{"days":[
		{"day":1,"content_ids":["B","GHOST","A"]},
		{"day":2,"content_ids":["A"]},
		{"day":7,"content_ids":["C"]}
	]}`}
	places := []Place{spot("A", 0, 1), spot("B", 0, 2), spot("C", 0, 3), spot("D", 0, 4)}

	days, err := NewDayPlanner(ai).PlanDays(context.Background(), origin, places, 2)

	require.NoError(t, err)
	// Unknown and repeated ids are dropped; C and D were never placed and go
	// through the fallback, one per day.
	assert.Equal(t, [][]string{{"B", "A", "C"}, {"D"}}, dayIDs(days))
}

func TestPlanDays_AIFailureFallsBack(t *testing.T) {
	places := []Place{spot("A", 0, 1), spot("B", 0, 2)}

	for name, ai := range map[string]*fakeAIClient{
		"error":    {err: errors.New("quota exceeded")},
		"bad json": {grouping: `days: 1`},
	} {
		t.Run(name, func(t *testing.T) {
			days, err := NewDayPlanner(ai).PlanDays(context.Background(), origin, places, 2)

			require.NoError(t, err)
			assert.Equal(t, 1, ai.calls)
			assert.Equal(t, [][]string{{"A"}, {"B"}}, dayIDs(days))
		})
	}
}
