package services

import (
	"context"

	"go.uber.org/zap"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, accountID, contentID string) error
	RemoveFavorite(ctx context.Context, accountID, contentID string) error
	ListFavorites(ctx context.Context, accountID string) ([]response_models.Favorite, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	placeRepo    repositories.PlaceRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, placeRepo repositories.PlaceRepository) FavoriteServiceInterface {
	return &FavoriteService{favoriteRepo: favoriteRepo, placeRepo: placeRepo}
}

// AddFavorite succeeds without change when the place is already a favorite.
func (f *FavoriteService) AddFavorite(ctx context.Context, accountID, contentID string) error {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}

	place, err := f.placeRepo.GetByContentID(ctx, contentID)
	if err != nil {
		zap.L().Error("get place", zap.String("content_id", contentID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}

	if err := f.favoriteRepo.Add(ctx, &db_models.Favorite{AccountID: owner, ContentID: place.ContentID}); err != nil {
		zap.L().Error("add favorite", zap.String("account_id", accountID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) RemoveFavorite(ctx context.Context, accountID, contentID string) error {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}

	removed, err := f.favoriteRepo.Delete(ctx, owner, contentID)
	if err != nil {
		zap.L().Error("delete favorite", zap.String("account_id", accountID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrPlaceNotFound
	}
	return nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, accountID string) ([]response_models.Favorite, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}

	favorites, err := f.favoriteRepo.ListByAccount(ctx, owner)
	if err != nil {
		zap.L().Error("list favorites", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Favorite, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, response_models.Favorite{
			ID:        fav.ID.String(),
			CreatedAt: formatUnix(fav.CreatedAt),
			Place:     toPlaceResponse(fav.Place),
		})
	}
	return out, nil
}
