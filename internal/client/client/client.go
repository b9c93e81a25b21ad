package client

import (
	"context"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
)

// Client is the contract of the remote users resource. None of the
// operations retries; failures on non-success responses are *TransportError.
type Client interface {
	List(ctx context.Context, query string) ([]models.User, error)
	Create(ctx context.Context, draft models.Draft) (models.User, error)
	Update(ctx context.Context, id models.ID, draft models.Draft) (models.User, error)
	Delete(ctx context.Context, id models.ID) error
}
