// Package sqlite loads a snapshot of the wardrobe into an in-memory SQLite
// database and answers aggregate questions about it. The database lives
// only as long as the Snapshot; nothing is written to disk.
package sqlite

// Schema DDL for the snapshot table.
const (
	createGarments = `CREATE TABLE garments (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    season TEXT NOT NULL,
    type TEXT NOT NULL,
    color TEXT NOT NULL,
    size TEXT NOT NULL,
    feature TEXT NOT NULL
);`

	createIndexes = `CREATE INDEX idx_garments_season ON garments(season);
CREATE INDEX idx_garments_type ON garments(type);`
)

// Columns that CountBy accepts, keyed by the field name callers use.
var groupColumns = map[string]string{
	FieldSeason: "season",
	FieldType:   "type",
	FieldColor:  "color",
	FieldSize:   "size",
}

// Field names accepted by CountBy.
const (
	FieldSeason = "season"
	FieldType   = "type"
	FieldColor  = "color"
	FieldSize   = "size"
)
