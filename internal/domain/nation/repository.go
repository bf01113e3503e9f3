package nation

import "context"

// Repository describes nation persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Nation) error
}
