package repository

import (
	"context"

	"instituteapi/model"
)

// UsersRepo adds account lookups on top of the generic store
type UsersRepo struct {
	Store[model.User]
}

func NewUsersRepo(store Store[model.User]) *UsersRepo {
	return &UsersRepo{Store: store}
}

// FindByEmail expects an already normalized address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, Filter{"email": email})
}

func (r *UsersRepo) CountAdmins(ctx context.Context) (int64, error) {
	return r.Count(ctx, Filter{"role": model.RoleAdmin})
}
