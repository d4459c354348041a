package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func TestPlaceService_Upsert(t *testing.T) {
	places := newFakePlaceRepo()
	embeddings := newFakeEmbeddingRepo()
	svc := NewPlaceService(places, embeddings, &fakeAIClient{})

	res, err := svc.UpsertPlace(context.Background(), request_models.UpsertPlaceRequest{
		ContentID: "126508", Title: "Gyeongbokgung", Latitude: 37.5796, Longitude: 126.9770,
		Category: "Culture", Tags: []string{"palace"},
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.CategoryCulture, res.Category)
	assert.Equal(t, []string{"palace"}, res.Tags)

	stored, ok := embeddings.rows["126508"]
	require.True(t, ok, "embedding stored on upsert")
	assert.Equal(t, "fake", stored.Provider)

	_, err = svc.UpsertPlace(context.Background(), request_models.UpsertPlaceRequest{
		ContentID: "x", Title: "x", Category: "spaceport",
	})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPlaceService_Nearby(t *testing.T) {
	places := newFakePlaceRepo(
		spot("center", 37.5665, 126.9780),
		spot("near", 37.5700, 126.9800),
		spot("mid", 37.5800, 126.9900),
		spot("far", 37.7000, 127.2000),
	)
	svc := NewPlaceService(places, newFakeEmbeddingRepo(), nil)

	res, err := svc.NearbyPlaces(context.Background(), "center", 3, 10)
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, "near", res[0].ContentID)
	assert.Equal(t, "mid", res[1].ContentID)
	require.NotNil(t, res[0].DistanceKm)
	assert.Less(t, *res[0].DistanceKm, *res[1].DistanceKm)

	_, err = svc.NearbyPlaces(context.Background(), "center", 0, 10)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.NearbyPlaces(context.Background(), "missing", 3, 10)
	require.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestPlaceService_Similar(t *testing.T) {
	places := newFakePlaceRepo(spot("A", 0, 1), spot("B", 0, 2), spot("C", 0, 3))

	_, err := NewPlaceService(places, newFakeEmbeddingRepo(), nil).SimilarPlaces(context.Background(), "A", 5)
	require.ErrorIs(t, err, utils.ErrAIUnavailable)

	embeddings := newFakeEmbeddingRepo()
	embeddings.similar = []string{"C", "A", "B"}
	svc := NewPlaceService(places, embeddings, &fakeAIClient{})

	res, err := svc.SimilarPlaces(context.Background(), "A", 5)
	require.NoError(t, err)

	ids := []string{}
	for _, p := range res {
		ids = append(ids, p.ContentID)
	}
	assert.Equal(t, []string{"C", "B"}, ids)
	assert.Contains(t, embeddings.rows, "A", "missing embedding is computed on demand")
}

func TestPlaceService_SearchPaging(t *testing.T) {
	svc := NewPlaceService(newFakePlaceRepo(spot("A", 0, 1)), newFakeEmbeddingRepo(), nil)

	_, err := svc.SearchPlaces(context.Background(), request_models.SearchPlacesRequest{Page: 0, PageSize: 10})
	require.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.SearchPlaces(context.Background(), request_models.SearchPlacesRequest{Page: 1, PageSize: 101})
	require.ErrorIs(t, err, utils.ErrInvalidPageSize)

	res, err := svc.SearchPlaces(context.Background(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryTouristSpot, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
