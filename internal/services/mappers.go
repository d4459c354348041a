package services

import (
	"github.com/google/uuid"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

func toPlaceResponse(p db_models.Place) response_models.Place {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.Place{
		ContentID: p.ContentID,
		Title:     p.Title,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Category:  p.Category,
		ImageURL:  p.ImageURL,
		Overview:  p.Overview,
		Tags:      tags,
	}
}

func toRoutePlace(p db_models.Place) Place {
	return Place{
		ContentID: p.ContentID,
		Title:     p.Title,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Category:  p.Category,
	}
}

func toPlaceSummary(p Place) utils.PlaceSummary {
	return utils.PlaceSummary{
		ContentID: p.ContentID,
		Title:     p.Title,
		Category:  p.Category,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func parseID(raw string, onInvalid error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, onInvalid
	}
	return id, nil
}

func formatUnix(sec int64) string {
	return utils.FormatRFC3339KST(utils.UnixToTime(sec))
}
