package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/futdb-sync/internal/domain/club"
	qb "github.com/riskibarqy/futdb-sync/internal/platform/querybuilder"
)

type ClubRepository struct {
	db sqlx.ExecerContext
}

func NewClubRepository(db sqlx.ExecerContext) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Insert(ctx context.Context, item club.Club) error {
	query, args, err := qb.InsertModel("clubs", clubInsertModel{
		ID:   item.ID,
		Name: item.Name,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageError("insert club", item.ID, err)
	}
	return nil
}
