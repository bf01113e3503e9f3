package nation

// Nation is a national team / country record from the reference API.
type Nation struct {
	ID   int64
	Name *string
}
