package sqlite

import (
	"time"
)

// Timestamps are stored as RFC3339 TEXT: rows stay readable from the
// sqlite3 shell and lexicographic order matches chronological order,
// which the canonical-order index relies on for created_at ties.

func timeToDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// timePtrToDB maps a nil completion time to a NULL completed_at column.
func timePtrToDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return timeToDB(*t)
}

func timeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
