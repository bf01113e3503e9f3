package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/futdb-sync/internal/domain/nation"
	qb "github.com/riskibarqy/futdb-sync/internal/platform/querybuilder"
)

type NationRepository struct {
	db sqlx.ExecerContext
}

func NewNationRepository(db sqlx.ExecerContext) *NationRepository {
	return &NationRepository{db: db}
}

func (r *NationRepository) Insert(ctx context.Context, item nation.Nation) error {
	query, args, err := qb.InsertModel("nations", nationInsertModel{
		ID:   item.ID,
		Name: item.Name,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert nation query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storageError("insert nation", item.ID, err)
	}
	return nil
}
