package interfaces

import (
	"context"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

// IActivityRepository abstracts DynamoDB persistence for Activity.
//
// The service must be able to:
//   - create an activity bound to a client
//   - read by id, list all and list by client (reads are status-reconciled by
//     the use case, which calls UpdateStatus when the derived status moved)
//   - mark an activity completed exactly once

type IActivityRepository interface {
	Create(ctx context.Context, a entities.Activity) (entities.Activity, error)
	GetByID(ctx context.Context, id string) (entities.Activity, error)
	List(ctx context.Context) ([]entities.Activity, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Activity, error)
	UpdateStatus(ctx context.Context, id string, status entities.ActivityStatus) (entities.Activity, error)
	Complete(ctx context.Context, id string, dataConclusao time.Time) (entities.Activity, error)
}
