package repository

import (
	"context"
	"errors"
	"sync"

	"imagine_hub/internal/domain/entities"
	"imagine_hub/internal/usecase/interfaces"
)

var ErrDuplicateOrderID = errors.New("order id already exists")

// MemoryOrderRepository holds the live editing sessions.
//
// Storage model:
//   - one Order per session, keyed by order id
//   - nothing survives a restart; persistence across sessions is out
//     of the product's scope
//
// Orders are deep-copied on the way in and out so no caller ever
// shares the extras slice or image handle with the store.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*MemoryOrderRepository)(nil)

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]entities.Order)}
}

func (r *MemoryOrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return entities.Order{}, ErrDuplicateOrderID
	}
	r.orders[o.ID] = o.Clone()
	return o, nil
}

func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return o.Clone(), nil
}

func (r *MemoryOrderRepository) Save(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID] = o.Clone()
	return o, nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orders, id)
	return nil
}

// Len reports the number of live sessions. Used by the liveness probe.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
