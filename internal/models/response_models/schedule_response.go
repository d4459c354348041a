package response_models

type ScheduleSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`
	GroupID   string `json:"group_id,omitempty"`
}

type ScheduleStart struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ScheduleStop struct {
	ItemID string `json:"item_id"`
	Order  int    `json:"order"`
	Memo   string `json:"memo,omitempty"`
	Place  Place  `json:"place"`

	// CarryOver is the previous day's last stop restated as today's start.
	CarryOver bool `json:"carry_over,omitempty"`

	DistanceToNextKm *float64 `json:"distance_to_next_km,omitempty"`
}

type ScheduleDay struct {
	Day             int            `json:"day"`
	Date            string         `json:"date"`
	Stops           []ScheduleStop `json:"stops"`
	TotalDistanceKm float64        `json:"total_distance_km"`
}

type ScheduleDetail struct {
	ScheduleSummary
	Start ScheduleStart `json:"start"`
	Days  []ScheduleDay `json:"days"`
}
