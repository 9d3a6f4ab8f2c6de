package repository

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// Page selects the [Offset, Offset+Limit) window of a listing.
type Page struct {
	Offset int
	Limit  int
}

// PageNumber converts a 1-indexed page into an offset window. An offset too
// large for an int is clamped, so the page still lies past the data.
func PageNumber(page, size int) Page {
	if size > 0 && page-1 > math.MaxInt/size {
		return Page{Offset: math.MaxInt, Limit: size}
	}
	return Page{Offset: (page - 1) * size, Limit: size}
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ilike builds a case-insensitive "column contains ?" condition that behaves
// the same on SQLite and Postgres. Pair it with containsPattern.
func ilike(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// reusable lets one filtered chain be used for both the COUNT and the page.
func reusable(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{})
}
