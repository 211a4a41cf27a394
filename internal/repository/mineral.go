package repository

import (
	"context"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Mineral defines persistence for discovered mineral deposits
type Mineral interface {
	InsertMineralDeposit(ctx context.Context, deposit domain.MineralDeposit) (int64, error)
	ListMineralDeposits(ctx context.Context, owner string) ([]domain.MineralDeposit, error)
}
