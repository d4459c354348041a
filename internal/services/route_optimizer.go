package services

import (
	"fmt"
	"math"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// Place is a point of interest handed to the optimizer. Two places are the
// same place iff their ContentID matches.
type Place struct {
	ContentID string
	Title     string
	Latitude  float64
	Longitude float64
	Category  string
}

func (p Place) SameAs(o Place) bool { return p.ContentID == o.ContentID }

func (p Place) IsLodging() bool { return p.Category == db_models.CategoryAccommodation }

func (p Place) DistanceTo(o Place) float64 {
	return utils.Haversine(p.Latitude, p.Longitude, o.Latitude, o.Longitude)
}

// DailyPlan is the unordered set of places assigned to one trip day.
type DailyPlan struct {
	Day    int
	Places []Place
}

// RoutePlan is a whole trip, days in chronological order.
type RoutePlan struct {
	ScheduleID string
	Days       []DailyPlan
}

// OptimizedStop is one visit in the optimized route. CarryOver marks the
// order-1 restatement of the previous day's last stop.
type OptimizedStop struct {
	Day       int
	Order     int
	ContentID string
	CarryOver bool
}

type OptimizedRoute struct {
	ScheduleID string
	Stops      []OptimizedStop
}

// Validate checks the input contract of OptimizeRoute. The optimizer itself
// never calls it.
func (rp RoutePlan) Validate() error {
	prevDay := 0
	for _, d := range rp.Days {
		if d.Day <= prevDay {
			return fmt.Errorf("%w: day %d is not after day %d", utils.ErrInvalidItinerary, d.Day, prevDay)
		}
		prevDay = d.Day

		seen := make(map[string]struct{}, len(d.Places))
		for _, p := range d.Places {
			if p.ContentID == "" {
				return fmt.Errorf("%w: day %d has a place without content id", utils.ErrInvalidItinerary, d.Day)
			}
			if _, dup := seen[p.ContentID]; dup {
				return fmt.Errorf("%w: day %d lists %q twice", utils.ErrInvalidItinerary, d.Day, p.ContentID)
			}
			seen[p.ContentID] = struct{}{}

			if !utils.ValidCoordinate(p.Latitude, p.Longitude) {
				return fmt.Errorf("%w: place %q has invalid coordinates (%v, %v)",
					utils.ErrInvalidItinerary, p.ContentID, p.Latitude, p.Longitude)
			}
		}
	}
	return nil
}

// routeCursor is the carry-over threaded from one day to the next.
// visited is false while at is still the trip origin, which is never emitted.
type routeCursor struct {
	at      Place
	visited bool
}

// OptimizeRoute sequences every day of plan with greedy nearest neighbour,
// starting the first day at start and each later day at the previous day's
// last stop. On every day but the last, the first lodging place is pinned to
// the end of the day.
func OptimizeRoute(plan RoutePlan, start Place) OptimizedRoute {
	out := OptimizedRoute{
		ScheduleID: plan.ScheduleID,
		Stops:      []OptimizedStop{},
	}

	cursor := routeCursor{at: start}
	for i, day := range plan.Days {
		var stops []OptimizedStop
		stops, cursor = sequenceDay(cursor, day, i == len(plan.Days)-1)
		out.Stops = append(out.Stops, stops...)
	}

	return out
}

func sequenceDay(cursor routeCursor, day DailyPlan, lastDay bool) ([]OptimizedStop, routeCursor) {
	if len(day.Places) == 0 {
		return nil, cursor
	}

	pool := make([]Place, 0, len(day.Places))
	for _, p := range day.Places {
		if cursor.visited && p.SameAs(cursor.at) {
			continue
		}
		pool = append(pool, p)
	}

	var pinned *Place
	if !lastDay {
		pool, pinned = extractPin(pool, cursor.at)
	}

	order := nearestNeighborOrder(cursor.at, pool)
	if pinned != nil {
		order = append(order, *pinned)
	}

	stops := make([]OptimizedStop, 0, len(order)+1)
	if cursor.visited {
		stops = append(stops, OptimizedStop{Day: day.Day, Order: 1, ContentID: cursor.at.ContentID, CarryOver: true})
	}
	for _, p := range order {
		stops = append(stops, OptimizedStop{Day: day.Day, Order: len(stops) + 1, ContentID: p.ContentID})
	}

	if len(order) > 0 {
		cursor = routeCursor{at: order[len(order)-1], visited: true}
	}
	return stops, cursor
}

// extractPin removes the first lodging place that is not current.
func extractPin(pool []Place, current Place) ([]Place, *Place) {
	for i, p := range pool {
		if !p.IsLodging() || p.SameAs(current) {
			continue
		}
		rest := make([]Place, 0, len(pool)-1)
		rest = append(rest, pool[:i]...)
		rest = append(rest, pool[i+1:]...)
		pin := p
		return rest, &pin
	}
	return pool, nil
}

// nearestNeighborOrder visits pool greedily from origin. Ties keep input
// order. A NaN distance is never chosen while a real one remains; when every
// candidate is NaN the first one is taken.
func nearestNeighborOrder(origin Place, pool []Place) []Place {
	remaining := append([]Place(nil), pool...)
	order := make([]Place, 0, len(remaining))

	current := origin
	for len(remaining) > 0 {
		best := 0
		bestDist := math.Inf(1)
		for i := range remaining {
			if d := current.DistanceTo(remaining[i]); d < bestDist {
				best, bestDist = i, d
			}
		}

		current = remaining[best]
		order = append(order, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return order
}

// LegDistancesKm returns the straight-line length of each leg of path;
// leg i runs from path[i] to path[i+1].
func LegDistancesKm(path []Place) []float64 {
	if len(path) < 2 {
		return nil
	}
	legs := make([]float64, len(path)-1)
	for i := range legs {
		legs[i] = path[i].DistanceTo(path[i+1])
	}
	return legs
}

// RouteDistanceKm sums straight-line legs over an ordered path.
func RouteDistanceKm(path []Place) float64 {
	total := 0.0
	for _, d := range LegDistancesKm(path) {
		total += d
	}
	return total
}
