package request_models

type UpsertPlaceRequest struct {
	ContentID string   `json:"content_id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64  `json:"longitude" binding:"min=-180,max=180"`
	Category  string   `json:"category" binding:"required"`
	ImageURL  string   `json:"image_url"`
	Overview  string   `json:"overview"`
	Tags      []string `json:"tags"`
}

type SearchPlacesRequest struct {
	Category string
	Keyword  string
	Page     int
	PageSize int
}
