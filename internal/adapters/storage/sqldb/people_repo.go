package sqldb

import (
	"context"
	"database/sql"
	"strings"

	"people-directory/internal/domain/people"
	"people-directory/internal/ports/storage"
)

type PeopleRepo struct {
	db *sql.DB
	d  Dialect
}

func NewPeopleRepo(db *sql.DB, d Dialect) *PeopleRepo {
	return &PeopleRepo{db: db, d: d}
}

// GetPeople pagina ordenado por id para que los offsets sean estables.
func (r *PeopleRepo) GetPeople(ctx context.Context, limit *int, offset int) ([]people.Person, error) {
	q, args := r.d.Page(`SELECT id, first_name, last_name FROM people ORDER BY id`, limit, offset)

	rows, err := r.db.QueryContext(ctx, r.d.Rebind(q), args...)
	if err != nil {
		return nil, classify("sqldb.GetPeople", err)
	}
	defer rows.Close()

	out := make([]people.Person, 0)
	for rows.Next() {
		var p people.Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName); err != nil {
			return nil, classify("sqldb.GetPeople", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("sqldb.GetPeople", err)
	}
	return out, nil
}

func (r *PeopleRepo) GetPerson(ctx context.Context, id string) (people.Person, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return people.Person{}, storage.NotFound("sqldb.GetPerson")
	}

	var p people.Person
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, first_name, last_name
		FROM people
		WHERE id = ?
	`), id).Scan(&p.ID, &p.FirstName, &p.LastName)
	if err != nil {
		return people.Person{}, classify("sqldb.GetPerson", err)
	}
	return p, nil
}

func (r *PeopleRepo) AddPerson(ctx context.Context, p people.Person) (people.Person, error) {
	_, err := r.db.ExecContext(ctx, r.d.Rebind(`
		INSERT INTO people (id, first_name, last_name) VALUES (?, ?, ?)
	`), p.ID, p.FirstName, p.LastName)
	if err != nil {
		return people.Person{}, classify("sqldb.AddPerson", err)
	}
	return p, nil
}

func (r *PeopleRepo) UpdatePerson(ctx context.Context, p people.Person) (people.Person, error) {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE people
		SET first_name = ?, last_name = ?
		WHERE id = ?
	`), p.FirstName, p.LastName, p.ID)
	if err != nil {
		return people.Person{}, classify("sqldb.UpdatePerson", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return people.Person{}, classify("sqldb.UpdatePerson", err)
	}
	if n == 0 {
		return people.Person{}, storage.NotFound("sqldb.UpdatePerson")
	}
	return p, nil
}

// DeletePerson depende de ON DELETE CASCADE para los pets.
func (r *PeopleRepo) DeletePerson(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM people WHERE id = ?`), id)
	if err != nil {
		return false, classify("sqldb.DeletePerson", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify("sqldb.DeletePerson", err)
	}
	if n == 0 {
		return false, storage.NotFound("sqldb.DeletePerson")
	}
	return true, nil
}

func (r *PeopleRepo) AddPet(ctx context.Context, p people.Pet) (people.Pet, error) {
	_, err := r.db.ExecContext(ctx, r.d.Rebind(`
		INSERT INTO pets (id, name, person_id) VALUES (?, ?, ?)
	`), p.ID, p.Name, p.PersonID)
	if err != nil {
		return people.Pet{}, classify("sqldb.AddPet", err)
	}
	return p, nil
}

var _ people.Storer = (*PeopleRepo)(nil)
