package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	favoriteDomain "github.com/allisson/echo/internal/favorite/domain"
	"github.com/allisson/echo/internal/metrics"
)

// favoriteUseCaseWithMetrics decorates FavoriteUseCase with metrics instrumentation.
type favoriteUseCaseWithMetrics struct {
	next    FavoriteUseCase
	metrics metrics.BusinessMetrics
}

// NewFavoriteUseCaseWithMetrics wraps a FavoriteUseCase with metrics recording.
func NewFavoriteUseCaseWithMetrics(useCase FavoriteUseCase, m metrics.BusinessMetrics) FavoriteUseCase {
	return &favoriteUseCaseWithMetrics{next: useCase, metrics: m}
}

func (f *favoriteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	f.metrics.RecordOperation(ctx, "favorites", operation, status)
	f.metrics.RecordDuration(ctx, "favorites", operation, time.Since(start), status)
}

func (f *favoriteUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*favoriteDomain.FavoriteSong, error) {
	start := time.Now()
	favorites, err := f.next.List(ctx, userID, offset, limit)
	f.record(ctx, "favorite_list", start, err)
	return favorites, err
}

func (f *favoriteUseCaseWithMetrics) Add(
	ctx context.Context,
	userID, songID uuid.UUID,
) (*favoriteDomain.Favorite, error) {
	start := time.Now()
	favorite, err := f.next.Add(ctx, userID, songID)
	f.record(ctx, "favorite_add", start, err)
	return favorite, err
}

func (f *favoriteUseCaseWithMetrics) Remove(ctx context.Context, userID, songID uuid.UUID) error {
	start := time.Now()
	err := f.next.Remove(ctx, userID, songID)
	f.record(ctx, "favorite_remove", start, err)
	return err
}
