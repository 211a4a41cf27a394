package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// MineralRepository implements repository.Mineral
type MineralRepository struct {
	db *pgxpool.Pool
}

// NewMineralRepository creates a new MineralRepository
func NewMineralRepository(db *pgxpool.Pool) *MineralRepository {
	return &MineralRepository{db: db}
}

// InsertMineralDeposit stores a deposit and returns its id
func (r *MineralRepository) InsertMineralDeposit(ctx context.Context, deposit domain.MineralDeposit) (int64, error) {
	uid, err := parseUserUUID(deposit.Owner)
	if err != nil {
		return 0, err
	}
	raw, err := json.Marshal(deposit.Configuration)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	var discovery *int64
	if deposit.Discovery != 0 {
		discovery = &deposit.Discovery
	}
	var id int64
	err = r.db.QueryRow(ctx, SQLInsertMineralDeposit,
		uid, deposit.AnomalyID, discovery, raw, deposit.Location, deposit.RoverName,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgMineralDepositFailed, err)
	}
	return id, nil
}

// ListMineralDeposits returns the owner's deposits, newest first
func (r *MineralRepository) ListMineralDeposits(ctx context.Context, owner string) ([]domain.MineralDeposit, error) {
	uid, err := parseUserUUID(owner)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, SQLListMineralDeposits, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMineralDepositFailed, err)
	}
	defer rows.Close()

	var deposits []domain.MineralDeposit
	for rows.Next() {
		var (
			d         domain.MineralDeposit
			ownerID   uuid.UUID
			discovery *int64
			raw       []byte
			rover     *string
		)
		if err := rows.Scan(&d.ID, &ownerID, &d.AnomalyID, &discovery, &raw, &d.Location, &rover, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgMineralDepositFailed, err)
		}
		if err := json.Unmarshal(raw, &d.Configuration); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
		}
		d.Owner = ownerID.String()
		if discovery != nil {
			d.Discovery = *discovery
		}
		d.RoverName = derefString(rover)
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgMineralDepositFailed, err)
	}
	return deposits, nil
}
