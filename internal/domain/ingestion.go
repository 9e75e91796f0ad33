package domain

import "time"

// IngestionRecord is the last recorded ingestion of one medication type by
// one user. There is at most one record per (UserID, PillType); a new
// ingestion overwrites the previous timestamp.
type IngestionRecord struct {
	UserID   string
	PillType string
	TakenAt  time.Time
}

// SameCalendarDay reports whether two instants fall on the same UTC
// calendar date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
