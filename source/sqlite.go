// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: source/sqlite.go
// Summary: Byte source over a BLOB column in a SQLite database. Ranges
// are read with substr() so the blob never has to fit in memory.

package source

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBlob serves the bytes of one BLOB cell, addressed by table,
// column and rowid.
type SQLiteBlob struct {
	db     *sql.DB
	sizeQ  string
	rangeQ string
	rowid  int64
}

// OpenSQLiteBlob opens the database at path and binds to the BLOB in
// column of the row with rowid in table. Table and column names are
// embedded in the queries and must be trusted input.
func OpenSQLiteBlob(path, table, column string, rowid int64) (*SQLiteBlob, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteBlob{
		db:     db,
		sizeQ:  fmt.Sprintf(`SELECT length(%q) FROM %q WHERE rowid = ?`, column, table),
		rangeQ: fmt.Sprintf(`SELECT substr(%q, ?, ?) FROM %q WHERE rowid = ?`, column, table),
		rowid:  rowid,
	}
	if _, err := s.Size(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteBlob) Read(offset uint64, p []byte) (int, error) {
	var chunk []byte
	// substr is 1-based.
	err := s.db.QueryRow(s.rangeQ, offset+1, len(p), s.rowid).Scan(&chunk)
	if err != nil {
		return 0, fmt.Errorf("read blob at %d: %w", offset, err)
	}
	return copy(p, chunk), nil
}

func (s *SQLiteBlob) Size() (uint64, error) {
	var size sql.NullInt64
	if err := s.db.QueryRow(s.sizeQ, s.rowid).Scan(&size); err != nil {
		return 0, fmt.Errorf("query blob size: %w", err)
	}
	if !size.Valid {
		// NULL cell; treat as empty.
		return 0, nil
	}
	return uint64(size.Int64), nil
}

// Close releases the database handle.
func (s *SQLiteBlob) Close() error {
	return s.db.Close()
}
