package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"imagine_hub/internal/domain/entities"
	"imagine_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidSize    = errors.New("invalid size")
	ErrEmptyImage     = errors.New("empty image upload")
)

// IOrderUseCase exposes the order editing session operations.
//
// Every operation is a discrete field-edit command: it loads the
// session order, applies exactly one mutation and saves the result.
// Out-of-range extra indexes are absorbed silently (the order comes
// back unchanged), matching the document editor's forgiving behavior.
type IOrderUseCase interface {
	Create(ctx context.Context) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Discard(ctx context.Context, id string) error
	UpdateFields(ctx context.Context, id string, edit entities.OrderEdit) (entities.Order, error)
	AttachImage(ctx context.Context, id string, data []byte, filename string) (entities.Order, error)
	ClearImage(ctx context.Context, id string) (entities.Order, error)
	AddExtra(ctx context.Context, id string) (entities.Order, error)
	RemoveExtra(ctx context.Context, id string, index int) (entities.Order, error)
	UpdateExtra(ctx context.Context, id string, index int, edit entities.ExtraEdit) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	ingestor interfaces.IImageIngestor
	contact  entities.Contact
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, ingestor interfaces.IImageIngestor, contact entities.Contact) *OrderUseCase {
	return &OrderUseCase{repo: repo, ingestor: ingestor, contact: contact}
}

func (u *OrderUseCase) Create(ctx context.Context) (entities.Order, error) {
	o := entities.NewOrder(uuid.NewString(), u.contact, time.Now().UTC())
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] session created order_id=%s", created.ID)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Discard(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}
	log.Printf("[order][usecase] session discarded order_id=%s", o.ID)
	return nil
}

func (u *OrderUseCase) UpdateFields(ctx context.Context, id string, edit entities.OrderEdit) (entities.Order, error) {
	if edit.SelectedSize != nil && !edit.SelectedSize.IsValid() {
		return entities.Order{}, ErrInvalidSize
	}
	return u.mutate(ctx, id, func(o *entities.Order) {
		o.ApplyEdit(edit)
	})
}

// AttachImage ingests the uploaded bytes and stores the resulting
// handle. When ingestion fails the order is left untouched and the
// ingestion error surfaces unchanged.
func (u *OrderUseCase) AttachImage(ctx context.Context, id string, data []byte, filename string) (entities.Order, error) {
	if len(data) == 0 {
		return entities.Order{}, ErrEmptyImage
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	handle, err := u.ingestor.Ingest(ctx, data, filename)
	if err != nil {
		log.Printf("[order][usecase] image ingestion failed order_id=%s file=%q err=%v", o.ID, filename, err)
		return entities.Order{}, err
	}

	return u.mutate(ctx, id, func(o *entities.Order) {
		o.SetImage(&handle)
	})
}

func (u *OrderUseCase) ClearImage(ctx context.Context, id string) (entities.Order, error) {
	return u.mutate(ctx, id, func(o *entities.Order) {
		o.SetImage(nil)
	})
}

func (u *OrderUseCase) AddExtra(ctx context.Context, id string) (entities.Order, error) {
	return u.mutate(ctx, id, func(o *entities.Order) {
		o.AddExtra()
	})
}

func (u *OrderUseCase) RemoveExtra(ctx context.Context, id string, index int) (entities.Order, error) {
	return u.mutate(ctx, id, func(o *entities.Order) {
		if !o.RemoveExtra(index) {
			log.Printf("[order][usecase] remove extra out of bounds order_id=%s index=%d", o.ID, index)
		}
	})
}

func (u *OrderUseCase) UpdateExtra(ctx context.Context, id string, index int, edit entities.ExtraEdit) (entities.Order, error) {
	return u.mutate(ctx, id, func(o *entities.Order) {
		if !o.UpdateExtra(index, edit) {
			log.Printf("[order][usecase] update extra out of bounds order_id=%s index=%d", o.ID, index)
		}
	})
}

func (u *OrderUseCase) mutate(ctx context.Context, id string, apply func(o *entities.Order)) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	apply(&o)
	o.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	return saved, nil
}
