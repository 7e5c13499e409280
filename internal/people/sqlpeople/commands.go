// Package sqlpeople stores people and pets in PostgreSQL.
package sqlpeople

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/pkg/txn/pgtxn"
)

const (
	insertPerson = `INSERT INTO people (name) VALUES ($1) RETURNING id`
	insertPet    = `INSERT INTO pets (person_id, name) VALUES ($1, $2)`
)

type CreatePerson struct {
	Name string `validate:"required,max=255"`
}

func (c CreatePerson) Validate() error {
	return people.Validate(c)
}

func (c CreatePerson) Execute(ctx context.Context, _ pgtxn.Conn, tx pgx.Tx) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertPerson, c.Name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

type AddPet struct {
	PersonID int64  `validate:"gt=0"`
	Name     string `validate:"required,max=255"`
}

func (c AddPet) Validate() error {
	return people.Validate(c)
}

func (c AddPet) Execute(ctx context.Context, _ pgtxn.Conn, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, insertPet, c.PersonID, c.Name)
	return err
}
