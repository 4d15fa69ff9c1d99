// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/ong-site/internal/storage"
	"github.com/aanand-mishra/ong-site/internal/types"

	// Side-effect only: registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB, which is a connection pool safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

const volunteerColumns = `id, reference, name, email, birth_date, cpf, phone,
	cep, street, district, city, state, created_at`

// New opens the SQLite database at path, creates the volunteers table if
// it does not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent, so this runs on every start.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS volunteers (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			reference  TEXT    NOT NULL UNIQUE,
			name       TEXT    NOT NULL,
			email      TEXT    NOT NULL,
			birth_date TEXT    NOT NULL,
			cpf        TEXT    NOT NULL,
			phone      TEXT    NOT NULL,
			cep        TEXT    NOT NULL,
			street     TEXT    NOT NULL,
			district   TEXT    NOT NULL,
			city       TEXT    NOT NULL,
			state      TEXT    NOT NULL,
			created_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateVolunteer inserts a new row into the volunteers table.
//
// Values are bound through ? placeholders; user input is never spliced
// into the SQL text. A zero CreatedAt is stamped with the current time.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateVolunteer(v types.Volunteer) (int64, error) {
	stmt, err := s.Db.Prepare(`
		INSERT INTO volunteers (reference, name, email, birth_date, cpf, phone,
			cep, street, district, city, state, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("CreateVolunteer: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := stmt.Exec(v.Reference, v.Name, v.Email, v.BirthDate, v.CPF,
		v.Phone, v.CEP, v.Street, v.District, v.City, v.State, createdAt)
	if err != nil {
		return 0, fmt.Errorf("CreateVolunteer: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateVolunteer: last insert id: %w", err)
	}

	return lastID, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVolunteer(row scanner) (types.Volunteer, error) {
	var v types.Volunteer
	err := row.Scan(
		&v.ID,
		&v.Reference,
		&v.Name,
		&v.Email,
		&v.BirthDate,
		&v.CPF,
		&v.Phone,
		&v.CEP,
		&v.Street,
		&v.District,
		&v.City,
		&v.State,
		&v.CreatedAt,
	)
	return v, err
}

// GetVolunteerByID fetches exactly one row matched by primary key.
func (s *SQLite) GetVolunteerByID(id int64) (types.Volunteer, error) {
	stmt, err := s.Db.Prepare(
		"SELECT " + volunteerColumns + " FROM volunteers WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Volunteer{}, fmt.Errorf("GetVolunteerByID: prepare: %w", err)
	}
	defer stmt.Close()

	v, err := scanVolunteer(stmt.QueryRow(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Volunteer{}, fmt.Errorf("no volunteer found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Volunteer{}, fmt.Errorf("GetVolunteerByID: scan: %w", err)
	}

	return v, nil
}

// GetVolunteers returns all rows ordered by id.
func (s *SQLite) GetVolunteers() ([]types.Volunteer, error) {
	stmt, err := s.Db.Prepare(
		"SELECT " + volunteerColumns + " FROM volunteers ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetVolunteers: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetVolunteers: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so the JSON encoding is [] rather than null.
	volunteers := make([]types.Volunteer, 0)

	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("GetVolunteers: scan row: %w", err)
		}
		volunteers = append(volunteers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetVolunteers: rows iteration: %w", err)
	}

	return volunteers, nil
}

// DeleteVolunteerByID removes a row by primary key. Deleting an id that
// does not exist reports storage.ErrNotFound.
func (s *SQLite) DeleteVolunteerByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM volunteers WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteVolunteerByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteVolunteerByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteVolunteerByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no volunteer found with id %d: %w", id, storage.ErrNotFound)
	}

	return nil
}
