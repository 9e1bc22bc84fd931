package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// RefreshUsecase regenerates the stored bond snapshot outside of the
// read path. It backs the one-shot seed command and the cron-scheduled
// background refresh, so a deployment can choose to serve reads from the
// store instead of relying on refresh-on-read alone.
type RefreshUsecase struct {
	source BondSource
	repo   BondRepository
	count  int
}

// NewRefreshUsecase creates a RefreshUsecase producing count bonds per run.
// A non-positive count falls back to DefaultBondCount.
func NewRefreshUsecase(source BondSource, repo BondRepository, count int) *RefreshUsecase {
	if count <= 0 {
		count = DefaultBondCount
	}
	return &RefreshUsecase{source: source, repo: repo, count: count}
}

// Refresh generates a fresh batch and overwrites the stored snapshot.
func (u *RefreshUsecase) Refresh(ctx context.Context) error {
	bonds, err := u.source.GenerateBonds(u.count)
	if err != nil {
		return fmt.Errorf("refresh bonds: %w", err)
	}
	if err := u.repo.UpsertBatch(ctx, bonds); err != nil {
		return fmt.Errorf("refresh bonds: %w", err)
	}
	slog.Info("bond snapshot refreshed", "count", len(bonds))
	return nil
}
