package club

// Club is a football club record from the reference API.
type Club struct {
	ID   int64
	Name *string
}
