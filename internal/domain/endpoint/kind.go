package endpoint

import "fmt"

// Kind identifies a reference-data endpoint and the entity type it serves.
type Kind string

const (
	KindNation Kind = "nations"
	KindClub   Kind = "clubs"
	KindPlayer Kind = "players"
)

// All returns the endpoints in ingestion order. Nations and clubs come
// before players so referenced rows are usually present first.
func All() []Kind {
	return []Kind{KindNation, KindClub, KindPlayer}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Validate() error {
	switch k {
	case KindNation, KindClub, KindPlayer:
		return nil
	default:
		return fmt.Errorf("unknown endpoint kind: %q", string(k))
	}
}
