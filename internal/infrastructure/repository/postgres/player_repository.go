package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/futdb-sync/internal/domain/player"
	qb "github.com/riskibarqy/futdb-sync/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExecerContext
}

func NewPlayerRepository(db sqlx.ExecerContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Insert writes one players row. Nation and club ids are stored as given;
// the table's own constraints decide whether dangling references fail.
func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		ID:       item.ID,
		Name:     item.Name,
		Position: item.Position,
		NationID: item.NationID,
		ClubID:   item.ClubID,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageError("insert player", item.ID, err)
	}
	return nil
}
