package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Player) error
}
