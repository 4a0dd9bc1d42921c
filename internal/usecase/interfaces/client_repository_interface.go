package interfaces

import (
	"context"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Lookups follow the zero-value convention: a missing record comes back as an
// empty Client with a nil error, and the use case decides on not-found.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByDocumento(ctx context.Context, documento string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
}
