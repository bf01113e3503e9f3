package player

// Player is an athlete record from the reference API. NationID and ClubID
// are foreign identifiers and are not checked against stored nations/clubs.
type Player struct {
	ID       int64
	Name     *string
	Position *string
	NationID *int64
	ClubID   *int64
}
