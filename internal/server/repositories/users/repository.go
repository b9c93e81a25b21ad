package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usercatalog/internal/server/models"
)

// ErrNotFound is returned when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// Repository stores users. List returns the users matching q (case-insensitive
// substring of name, email or role; empty matches all), newest first.
type Repository interface {
	List(ctx context.Context, q string) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
