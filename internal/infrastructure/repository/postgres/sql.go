package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
)

const pqUniqueViolation = pq.ErrorCode("23505")

// storageError marks err as usecase.ErrStorage, keeping the driver error in
// the chain.
func storageError(op string, id int64, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s id=%d: duplicate id: %w", usecase.ErrStorage, op, id, err)
	}
	return fmt.Errorf("%w: %s id=%d: %w", usecase.ErrStorage, op, id, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
