package database

import (
	"strings"

	"github.com/google/uuid"
)

// RowScanner is implemented by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching values that contain s literally.
// Both PostgreSQL and MySQL use backslash as the default LIKE escape character.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// UUIDBytes encodes an id for a MySQL BINARY(16) column.
func UUIDBytes(id uuid.UUID) []byte {
	b, _ := id.MarshalBinary() // MarshalBinary never fails for uuid.UUID
	return b
}

// NullableUUIDBytes encodes an optional id for a MySQL BINARY(16) column.
func NullableUUIDBytes(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return UUIDBytes(*id)
}

// NullableUUID converts a scanned uuid.NullUUID to a pointer.
func NullableUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}

type appendScanner struct {
	row   RowScanner
	extra []any
}

func (s appendScanner) Scan(dest ...any) error {
	return s.row.Scan(append(dest, s.extra...)...)
}

// ScanAlso returns a RowScanner that appends extra destinations after the ones
// passed to Scan. It lets an entity scanner read a joined row that carries
// additional trailing columns.
func ScanAlso(row RowScanner, extra ...any) RowScanner {
	return appendScanner{row: row, extra: extra}
}
