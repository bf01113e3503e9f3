package postgres

type clubInsertModel struct {
	ID   int64   `db:"id"`
	Name *string `db:"name"`
}
