package postgres

type nationInsertModel struct {
	ID   int64   `db:"id"`
	Name *string `db:"name"`
}
