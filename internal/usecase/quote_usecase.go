package usecase

import (
	"context"
	"errors"
	"log"

	"imagine_hub/internal/domain/quote"
	"imagine_hub/internal/usecase/interfaces"
)

var ErrPrinterNotConfigured = errors.New("document printer not configured")

// IQuoteUseCase derives the document view-model from an order and
// drives the external rendering collaborators.
type IQuoteUseCase interface {
	Snapshot(ctx context.Context, orderID string) (quote.Snapshot, error)
	Document(ctx context.Context, orderID string) ([]byte, error)
	Print(ctx context.Context, orderID string) error
}

type QuoteUseCase struct {
	orders   IOrderUseCase
	renderer interfaces.IDocumentRenderer
	printer  interfaces.IDocumentPrinter
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(orders IOrderUseCase, renderer interfaces.IDocumentRenderer, printer interfaces.IDocumentPrinter) *QuoteUseCase {
	return &QuoteUseCase{orders: orders, renderer: renderer, printer: printer}
}

func (u *QuoteUseCase) Snapshot(ctx context.Context, orderID string) (quote.Snapshot, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return quote.Snapshot{}, err
	}
	return quote.BuildSnapshot(o), nil
}

func (u *QuoteUseCase) Document(ctx context.Context, orderID string) ([]byte, error) {
	s, err := u.Snapshot(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(s)
}

// Print dispatches the current snapshot to the printer collaborator and
// returns immediately. Completion is never observed; a failed print is
// only logged.
func (u *QuoteUseCase) Print(ctx context.Context, orderID string) error {
	if u.printer == nil {
		return ErrPrinterNotConfigured
	}

	s, err := u.Snapshot(ctx, orderID)
	if err != nil {
		return err
	}

	go func() {
		if err := u.printer.Print(context.Background(), s); err != nil {
			log.Printf("[quote][usecase] print failed order_id=%s err=%v", orderID, err)
			return
		}
		log.Printf("[quote][usecase] print dispatched order_id=%s total=%s", orderID, s.TotalFormatted)
	}()
	return nil
}
