// Package usecase は債券マーケットデータ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"github.com/analysestock/bond-analysis/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultBondCount は一度の読み取りで生成される債券のデフォルト件数です。
	DefaultBondCount = 20
	// MaxBondCount は一度の読み取りで生成される債券の上限件数です。
	MaxBondCount = 500
)

// BondSource abstracts the synthetic generator for bond snapshots.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type BondSource interface {
	GenerateBonds(count int) ([]entity.Bond, error)
}

// BondRepository abstracts the persistence layer for bond snapshots.
// UpsertBatch must apply the whole batch or none of it.
type BondRepository interface {
	UpsertBatch(ctx context.Context, bonds []entity.Bond) error
	ListStored(ctx context.Context, limit int) ([]entity.Bond, error)
}

// BondsUsecase は債券スナップショットの生成と永続化のユースケースを定義します。
type BondsUsecase struct {
	source BondSource
	repo   BondRepository
}

// NewBondsUsecase は新しい BondsUsecase を作成します。
func NewBondsUsecase(source BondSource, repo BondRepository) *BondsUsecase {
	return &BondsUsecase{source: source, repo: repo}
}

// GetBonds generates a fresh batch of count bonds, overwrites the stored
// snapshot, and returns the batch. This is a deliberate refresh-on-read
// policy: the store holds the latest synthetic snapshot, not historical
// truth. A negative count is rejected by the generator; a count above
// MaxBondCount is clamped.
func (u *BondsUsecase) GetBonds(ctx context.Context, count int) ([]entity.Bond, error) {
	if count > MaxBondCount {
		count = MaxBondCount
	}

	bonds, err := u.source.GenerateBonds(count)
	if err != nil {
		return nil, err
	}

	if err := u.repo.UpsertBatch(ctx, bonds); err != nil {
		// 永続化エラーは握りつぶさず、呼び出し元へそのまま返します。
		return nil, fmt.Errorf("store bond snapshot: %w", err)
	}

	return bonds, nil
}

// StoredBonds returns the persisted snapshot without regenerating it.
// This backs the CSV export: the export reflects what the last refresh
// wrote, so a download matches the table the user was looking at.
func (u *BondsUsecase) StoredBonds(ctx context.Context, limit int) ([]entity.Bond, error) {
	if limit <= 0 || limit > MaxBondCount {
		limit = MaxBondCount
	}
	bonds, err := u.repo.ListStored(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read bond snapshot: %w", err)
	}
	return bonds, nil
}
