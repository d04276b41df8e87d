package store

import (
	"context"
	"fmt"

	"github.com/abhisek/molkkylog/ent"
	"github.com/abhisek/molkkylog/ent/user"
)

// DefaultUserName is the protected identity every installation starts with.
// Reconciliation falls back to it when a persisted user id no longer exists.
const DefaultUserName = "Player 1"

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Insert(ctx context.Context, name string) (*User, error) {
	created, err := r.client.User.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u := entUserToUser(created)
	return &u, nil
}

func (r *userRepo) ByID(ctx context.Context, id int) (*User, error) {
	row, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	u := entUserToUser(row)
	return &u, nil
}

func (r *userRepo) ByName(ctx context.Context, name string) (*User, error) {
	row, err := r.client.User.Query().
		Where(user.NameEqualFold(name)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by name: %w", err)
	}
	u := entUserToUser(row)
	return &u, nil
}

func (r *userRepo) All(ctx context.Context) ([]User, error) {
	rows, err := r.client.User.Query().
		Order(ent.Asc(user.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, entUserToUser(row))
	}
	return users, nil
}

func (r *userRepo) Delete(ctx context.Context, id int) error {
	_, err := r.client.User.Delete().
		Where(user.ID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (r *userRepo) EnsureDefault(ctx context.Context) (*User, error) {
	existing, err := r.ByName(ctx, DefaultUserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return r.Insert(ctx, DefaultUserName)
}

// entUserToUser converts an ent row to the repo's plain struct.
func entUserToUser(row *ent.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
