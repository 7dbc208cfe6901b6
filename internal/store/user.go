package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyhall/ent"
	entuser "github.com/abhisek/studyhall/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, name string, role Role) (*User, error) {
	u, err := r.client.User.Create().
		SetName(name).
		SetRole(entuser.Role(role)).
		Save(ctx)
	if err != nil {
		return nil, &ErrPersistence{Op: "create user", Err: err}
	}
	return entUserToUser(u), nil
}

func (r *userRepo) Get(ctx context.Context, id int) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{Kind: "user", ID: id}
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return entUserToUser(u), nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Role:      Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
