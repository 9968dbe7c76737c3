package api

import (
	"context"

	"quill/models"
)

// UsersClient talks to /api/v1/users.
type UsersClient struct {
	c *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{c: c}
}

func (uc *UsersClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := uc.c.get(ctx, "/api/v1/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (uc *UsersClient) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := uc.c.get(ctx, "/api/v1/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := uc.c.post(ctx, "/api/v1/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Update(ctx context.Context, id string, req *models.CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := uc.c.put(ctx, "/api/v1/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *UsersClient) Delete(ctx context.Context, id string) error {
	return uc.c.delete(ctx, "/api/v1/users/"+id)
}
