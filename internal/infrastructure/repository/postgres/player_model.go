package postgres

type playerInsertModel struct {
	ID       int64   `db:"id"`
	Name     *string `db:"name"`
	Position *string `db:"position"`
	NationID *int64  `db:"nation_id"`
	ClubID   *int64  `db:"club_id"`
}
