package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Club) error
}
