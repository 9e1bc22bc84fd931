package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
	"github.com/analysestock/bond-analysis/internal/feature/marketdata/usecase"
)

type bondGorm struct {
	db *gorm.DB
}

var _ usecase.BondRepository = (*bondGorm)(nil)

// NewBondRepository は指定されたDB接続で債券リポジトリを作成します。
func NewBondRepository(db *gorm.DB) *bondGorm {
	return &bondGorm{db: db}
}

// BondModel is the persistence model for the bonds table. The table holds
// the latest synthetic snapshot keyed by ISIN, not an authoritative ledger.
type BondModel struct {
	ISIN        string    `gorm:"column:isin;primaryKey;size:12"`
	Ticker      string    `gorm:"size:32;not null"`
	Coupon      float64   `gorm:"not null"`
	Maturity    time.Time `gorm:"not null"`
	YieldValue  float64   `gorm:"not null"`
	Spread      int       `gorm:"not null"`
	Duration    float64   `gorm:"not null"`
	Rating      string    `gorm:"size:8;not null"`
	Sector      string    `gorm:"size:32;not null"`
	Currency    string    `gorm:"size:8;not null"`
	Price       float64   `gorm:"not null"`
	IssueSize   float64   `gorm:"not null"`
	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

func (BondModel) TableName() string {
	return "bonds"
}

func toBondModel(e entity.Bond) BondModel {
	return BondModel{
		ISIN:       e.ISIN,
		Ticker:     e.Ticker,
		Coupon:     e.Coupon,
		Maturity:   e.Maturity,
		YieldValue: e.YieldValue,
		Spread:     e.Spread,
		Duration:   e.Duration,
		Rating:     e.Rating,
		Sector:     e.Sector,
		Currency:   e.Currency,
		Price:      e.Price,
		IssueSize:  e.IssueSize,
	}
}

// UpsertBatch は債券スナップショットを一括で挿入または更新します
// （INSERT OR REPLACE 相当）。バッチ全体がひとつのトランザクションで
// 適用されるため、部分適用は発生しません。
func (r *bondGorm) UpsertBatch(ctx context.Context, bonds []entity.Bond) error {
	if len(bonds) == 0 {
		return nil
	}
	ms := make([]BondModel, 0, len(bonds))
	for _, e := range bonds {
		ms = append(ms, toBondModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "isin"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ticker", "coupon", "maturity", "yield_value", "spread",
			"duration", "rating", "sector", "currency", "price", "issue_size",
			"last_updated",
		}),
	}).Create(&ms).Error
}

// ListStored returns the persisted snapshot ordered by ISIN, up to limit
// rows. It reads what the last refresh wrote and never triggers generation.
func (r *bondGorm) ListStored(ctx context.Context, limit int) ([]entity.Bond, error) {
	var rows []BondModel
	q := r.db.WithContext(ctx).Order("isin ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Bond, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Bond{
			ISIN:       m.ISIN,
			Ticker:     m.Ticker,
			Coupon:     m.Coupon,
			Maturity:   m.Maturity,
			YieldValue: m.YieldValue,
			Spread:     m.Spread,
			Duration:   m.Duration,
			Rating:     m.Rating,
			Sector:     m.Sector,
			Currency:   m.Currency,
			Price:      m.Price,
			IssueSize:  m.IssueSize,
		})
	}
	return out, nil
}
