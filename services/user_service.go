package services

import (
	"context"

	"quill/api"
	"quill/models"
)

// UserService handles business logic for author accounts. Admin surface.
type UserService struct {
	users UsersAPI
}

func NewUserService(users UsersAPI) *UserService {
	return &UserService{users: users}
}

func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	return us.users.List(ctx)
}

func (us *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := us.users.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (us *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	return us.users.Create(ctx, req)
}

func (us *UserService) Update(ctx context.Context, id string, req *models.CreateUserRequest) (*models.User, error) {
	user, err := us.users.Update(ctx, id, req)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (us *UserService) Delete(ctx context.Context, id string) error {
	if err := us.users.Delete(ctx, id); err != nil {
		if api.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
