package request

import (
	"testing"

	"imagine_hub/internal/domain/entities"
)

func TestUpdateOrderRequestToEdit(t *testing.T) {
	t.Run("maps only provided fields", func(t *testing.T) {
		client := "Maria"
		qty := 7
		edit := UpdateOrderRequest{ClientName: &client, Quantity: &qty}.ToEdit()

		if edit.ClientName == nil || *edit.ClientName != "Maria" {
			t.Fatalf("client name not mapped: %+v", edit)
		}
		if edit.Quantity == nil || *edit.Quantity != 7 {
			t.Fatalf("quantity not mapped: %+v", edit)
		}
		if edit.UnitPrice != nil || edit.SelectedSize != nil || edit.SendDate != nil {
			t.Fatalf("absent fields mapped: %+v", edit)
		}
	})

	t.Run("converts size to the domain type", func(t *testing.T) {
		size := "XG"
		edit := UpdateOrderRequest{SelectedSize: &size}.ToEdit()

		if edit.SelectedSize == nil || *edit.SelectedSize != entities.SizeXG {
			t.Fatalf("size not mapped: %+v", edit)
		}
	})
}

func TestUpdateExtraRequestToEdit(t *testing.T) {
	desc := "Frete"
	value := 15.0
	included := false
	edit := UpdateExtraRequest{Description: &desc, Value: &value, IsIncluded: &included}.ToEdit()

	if edit.Description == nil || *edit.Description != "Frete" {
		t.Fatalf("description not mapped: %+v", edit)
	}
	if edit.Value == nil || *edit.Value != 15.0 {
		t.Fatalf("value not mapped: %+v", edit)
	}
	if edit.IsIncluded == nil || *edit.IsIncluded {
		t.Fatalf("is_included not mapped: %+v", edit)
	}
}
