package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
)

type historyGorm struct {
	db *gorm.DB
}

var _ usecase.HistoryRepository = (*historyGorm)(nil)

// NewHistoryRepository は指定されたDB接続でヒストリカルデータの
// リポジトリを作成します。
func NewHistoryRepository(db *gorm.DB) *historyGorm {
	return &historyGorm{db: db}
}

// HistoryPointModel is the persistence model for the price_history table.
type HistoryPointModel struct {
	ID         uint      `gorm:"primaryKey"`
	ISIN       string    `gorm:"column:isin;size:12;not null;uniqueIndex:hist_isin_date,priority:1"`
	Date       time.Time `gorm:"not null;uniqueIndex:hist_isin_date,priority:2"`
	YieldValue float64   `gorm:"not null"`
	Spread     int       `gorm:"not null"`
	Price      float64   `gorm:"not null"`
}

func (HistoryPointModel) TableName() string {
	return "price_history"
}

// UpsertSeries はひとつの銘柄の日次系列を一括で挿入または更新します。
// (isin, date) をキーとした INSERT OR REPLACE 相当で、バッチ全体が
// ひとつのトランザクションで適用されます。
func (r *historyGorm) UpsertSeries(ctx context.Context, isin string, points []entity.HistoricalPoint) error {
	if len(points) == 0 {
		return nil
	}
	ms := make([]HistoryPointModel, 0, len(points))
	for _, p := range points {
		ms = append(ms, HistoryPointModel{
			ISIN:       isin,
			Date:       p.Date,
			YieldValue: p.YieldValue,
			Spread:     p.Spread,
			Price:      p.Price,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "isin"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"yield_value", "spread", "price"}),
	}).Create(&ms).Error
}
