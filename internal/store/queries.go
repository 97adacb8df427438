package store

// SQL query constants. All SQL lives here; PostgresStore methods reference
// these constants.

const (
	queryInsertList = `
		INSERT INTO saved_lists (id, name, items, total, created_at)
		VALUES (@id, @name, @items, @total, @created_at)`

	queryGetList = `
		SELECT id, name, items, total, created_at
		FROM saved_lists
		WHERE id = $1`

	queryListLists = `
		SELECT id, name, items, total, created_at
		FROM saved_lists
		ORDER BY created_at DESC
		LIMIT $1`

	queryDeleteList = `
		DELETE FROM saved_lists
		WHERE id = $1`
)
