package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const (
	maxNearbyRadiusKm = 50.0
	nearbyCandidates  = 500
)

type PlaceServiceInterface interface {
	UpsertPlace(ctx context.Context, request request_models.UpsertPlaceRequest) (*response_models.Place, error)
	GetPlace(ctx context.Context, contentID string) (*response_models.Place, error)
	SearchPlaces(ctx context.Context, request request_models.SearchPlacesRequest) ([]response_models.Place, error)
	NearbyPlaces(ctx context.Context, contentID string, radiusKm float64, limit int) ([]response_models.Place, error)
	SimilarPlaces(ctx context.Context, contentID string, limit int) ([]response_models.Place, error)
}

type PlaceService struct {
	placeRepo     repositories.PlaceRepository
	embeddingRepo repositories.PlaceEmbeddingRepository
	aiClient      utils.AIClientInterface
}

// NewPlaceService accepts a nil aiClient; similarity search is then unavailable.
func NewPlaceService(placeRepo repositories.PlaceRepository, embeddingRepo repositories.PlaceEmbeddingRepository, aiClient utils.AIClientInterface) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:     placeRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

func (s *PlaceService) UpsertPlace(ctx context.Context, request request_models.UpsertPlaceRequest) (*response_models.Place, error) {
	category := strings.ToLower(strings.TrimSpace(request.Category))
	if !db_models.IsPlaceCategory(category) {
		return nil, utils.ErrInvalidInput
	}
	if !utils.ValidCoordinate(request.Latitude, request.Longitude) {
		return nil, utils.ErrInvalidInput
	}

	place := &db_models.Place{
		ContentID: strings.TrimSpace(request.ContentID),
		Title:     strings.TrimSpace(request.Title),
		Address:   request.Address,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Category:  category,
		ImageURL:  request.ImageURL,
		Overview:  request.Overview,
		Tags:      request.Tags,
	}
	if place.ContentID == "" || place.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	if err := s.placeRepo.Upsert(ctx, place); err != nil {
		zap.L().Error("upsert place", zap.String("content_id", place.ContentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if s.aiClient != nil {
		if err := s.refreshEmbedding(ctx, *place); err != nil {
			zap.L().Warn("place embedding not updated", zap.String("content_id", place.ContentID), zap.Error(err))
		}
	}

	res := toPlaceResponse(*place)
	return &res, nil
}

func (s *PlaceService) GetPlace(ctx context.Context, contentID string) (*response_models.Place, error) {
	place, err := s.findPlace(ctx, contentID)
	if err != nil {
		return nil, err
	}
	res := toPlaceResponse(*place)
	return &res, nil
}

func (s *PlaceService) SearchPlaces(ctx context.Context, request request_models.SearchPlacesRequest) ([]response_models.Place, error) {
	if request.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if request.PageSize < 1 || request.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	category := strings.ToLower(strings.TrimSpace(request.Category))
	if category != "" && !db_models.IsPlaceCategory(category) {
		return nil, utils.ErrInvalidInput
	}

	places, err := s.placeRepo.Search(ctx, category, request.Keyword, request.Page, request.PageSize)
	if err != nil {
		zap.L().Error("search places", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceResponse(p))
	}
	return out, nil
}

// NearbyPlaces prefilters with a bounding box in SQL and then keeps the
// places whose great-circle distance is within radiusKm, closest first.
func (s *PlaceService) NearbyPlaces(ctx context.Context, contentID string, radiusKm float64, limit int) ([]response_models.Place, error) {
	if radiusKm <= 0 || radiusKm > maxNearbyRadiusKm || limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidInput
	}

	origin, err := s.findPlace(ctx, contentID)
	if err != nil {
		return nil, err
	}

	minLat, maxLat, minLng, maxLng := utils.BoundingBox(origin.Latitude, origin.Longitude, radiusKm)
	candidates, err := s.placeRepo.ListInBox(ctx, minLat, maxLat, minLng, maxLng, nearbyCandidates)
	if err != nil {
		zap.L().Error("list places in box", zap.String("content_id", contentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	type hit struct {
		place db_models.Place
		dist  float64
	}
	hits := make([]hit, 0, len(candidates))
	for _, c := range candidates {
		if c.ContentID == origin.ContentID {
			continue
		}
		d := utils.Haversine(origin.Latitude, origin.Longitude, c.Latitude, c.Longitude)
		if d <= radiusKm {
			hits = append(hits, hit{place: c, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]response_models.Place, 0, len(hits))
	for _, h := range hits {
		res := toPlaceResponse(h.place)
		dist := h.dist
		res.DistanceKm = &dist
		out = append(out, res)
	}
	return out, nil
}

func (s *PlaceService) SimilarPlaces(ctx context.Context, contentID string, limit int) ([]response_models.Place, error) {
	if s.aiClient == nil {
		return nil, utils.ErrAIUnavailable
	}
	if limit < 1 || limit > 50 {
		return nil, utils.ErrInvalidInput
	}

	place, err := s.findPlace(ctx, contentID)
	if err != nil {
		return nil, err
	}

	stored, err := s.embeddingRepo.GetByContentID(ctx, place.ContentID)
	if err != nil {
		zap.L().Error("get place embedding", zap.String("content_id", contentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if stored == nil || stored.Provider != s.aiClient.Provider() {
		if err := s.refreshEmbedding(ctx, *place); err != nil {
			zap.L().Error("embed place", zap.String("content_id", contentID), zap.Error(err))
			return nil, err
		}
		if stored, err = s.embeddingRepo.GetByContentID(ctx, place.ContentID); err != nil || stored == nil {
			return nil, utils.ErrDatabaseError
		}
	}

	ids, err := s.embeddingRepo.FindSimilar(ctx, stored.Embedding, stored.Provider, place.ContentID, limit)
	if err != nil {
		zap.L().Error("find similar places", zap.String("content_id", contentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	places, err := s.placeRepo.ListByContentIDs(ctx, ids)
	if err != nil {
		zap.L().Error("list places by content ids", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[string]db_models.Place, len(places))
	for _, p := range places {
		byID[p.ContentID] = p
	}

	out := make([]response_models.Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, toPlaceResponse(p))
		}
	}
	return out, nil
}

func (s *PlaceService) findPlace(ctx context.Context, contentID string) (*db_models.Place, error) {
	place, err := s.placeRepo.GetByContentID(ctx, strings.TrimSpace(contentID))
	if err != nil {
		zap.L().Error("get place", zap.String("content_id", contentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func (s *PlaceService) refreshEmbedding(ctx context.Context, place db_models.Place) error {
	vec, err := s.aiClient.GetEmbedding(ctx, embeddingText(place))
	if err != nil {
		return err
	}
	return s.embeddingRepo.Upsert(ctx, &db_models.PlaceEmbedding{
		ContentID: place.ContentID,
		Provider:  s.aiClient.Provider(),
		Embedding: vec,
	})
}

func embeddingText(p db_models.Place) string {
	parts := []string{p.Title, p.Category}
	if p.Address != "" {
		parts = append(parts, p.Address)
	}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, ", "))
	}
	if p.Overview != "" {
		parts = append(parts, p.Overview)
	}
	return strings.Join(parts, "\n")
}
