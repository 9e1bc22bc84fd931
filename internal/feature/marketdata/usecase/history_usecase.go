package usecase

import (
	"context"
	"fmt"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultHistoryDays はヒストリカル系列のデフォルト日数です。
	DefaultHistoryDays = 30
	// MaxHistoryDays はヒストリカル系列の最大日数です。
	MaxHistoryDays = 3650
)

// SeriesSource abstracts the historical-series source. The concrete source
// is the synthetic generator, optionally wrapped by a Redis caching decorator.
type SeriesSource interface {
	Series(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error)
}

// HistoryRepository abstracts the persistence layer for historical points.
type HistoryRepository interface {
	UpsertSeries(ctx context.Context, isin string, points []entity.HistoricalPoint) error
}

// HistoryUsecase はヒストリカル系列の取得と永続化のユースケースを定義します。
type HistoryUsecase struct {
	source SeriesSource
	repo   HistoryRepository
}

// NewHistoryUsecase は新しい HistoryUsecase を作成します。
func NewHistoryUsecase(source SeriesSource, repo HistoryRepository) *HistoryUsecase {
	return &HistoryUsecase{source: source, repo: repo}
}

// GetSeries returns a daily series of the given length ending today for the
// given ISIN, persisting it as the latest cached series. The ISIN is an
// opaque label: it is not validated against any instrument registry.
// A window above MaxHistoryDays is clamped; a window below one day is
// rejected by the generator.
func (u *HistoryUsecase) GetSeries(ctx context.Context, isin string, days int) ([]entity.HistoricalPoint, error) {
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}

	points, err := u.source.Series(ctx, isin, days)
	if err != nil {
		return nil, err
	}

	if err := u.repo.UpsertSeries(ctx, isin, points); err != nil {
		return nil, fmt.Errorf("store historical series: %w", err)
	}

	return points, nil
}
