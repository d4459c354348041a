package response_models

type Place struct {
	ContentID string   `json:"content_id"`
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category"`
	ImageURL  string   `json:"image_url,omitempty"`
	Overview  string   `json:"overview,omitempty"`
	Tags      []string `json:"tags"`

	DistanceKm *float64 `json:"distance_km,omitempty"`
}
