package interfaces

import (
	"context"
	"imagine_hub/internal/domain/entities"
)

// IOrderRepository abstracts the session store for in-progress orders.
//
// Orders exist only for the lifetime of an editing session, so the
// store is in-memory by contract: a restart discards every session.
// Lookups for unknown IDs return a zero-value Order with a nil error;
// the use case turns that into ErrOrderNotFound.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
