package entities

import (
	"reflect"
	"testing"
	"time"
)

func TestNewOrderSeedDefaults(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	contact := Contact{Phone: "(83) 99391-3523", Email: "imaginehub.oficial@gmail.com", Instagram: "@imagine.hub_"}

	o := NewOrder("order-1", contact, now)

	if o.ID != "order-1" {
		t.Fatalf("unexpected id: %s", o.ID)
	}
	if o.ClientName != "" || o.ModelName != "" || o.CreatorName != "" {
		t.Fatalf("expected empty names, got %+v", o)
	}
	if o.Quantity != 1 || o.UnitPrice != 40.00 {
		t.Fatalf("unexpected quantity/price: %d %f", o.Quantity, o.UnitPrice)
	}
	if o.SelectedSize != SizeM {
		t.Fatalf("expected default size M, got %s", o.SelectedSize)
	}
	if o.SendDate != "2024-03-07" {
		t.Fatalf("unexpected send date: %s", o.SendDate)
	}
	if o.Image != nil {
		t.Fatalf("expected no image")
	}
	want := []LineItem{
		{Description: "Pintura", Value: 0, IsIncluded: true},
		{Description: "Acabamento", Value: 0, IsIncluded: true},
	}
	if !reflect.DeepEqual(o.Extras, want) {
		t.Fatalf("unexpected seed extras: %+v", o.Extras)
	}
	if o.Contact != contact {
		t.Fatalf("unexpected contact: %+v", o.Contact)
	}
}

func TestOrderApplyEdit(t *testing.T) {
	t.Run("applies provided fields only", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		client := "Maria"
		qty := 7
		o.ApplyEdit(OrderEdit{ClientName: &client, Quantity: &qty})

		if o.ClientName != "Maria" || o.Quantity != 7 {
			t.Fatalf("edit not applied: %+v", o)
		}
		if o.UnitPrice != 40.00 || o.SelectedSize != SizeM {
			t.Fatalf("untouched fields changed: %+v", o)
		}
	})

	t.Run("accepts negative quantity and price", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		qty := -3
		price := -10.0
		o.ApplyEdit(OrderEdit{Quantity: &qty, UnitPrice: &price})

		if o.Quantity != -3 || o.UnitPrice != -10.0 {
			t.Fatalf("permissive values rejected: %+v", o)
		}
	})

	t.Run("unknown size keeps current selection", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		bad := Size("XXL")
		o.ApplyEdit(OrderEdit{SelectedSize: &bad})

		if o.SelectedSize != SizeM {
			t.Fatalf("expected size to stay M, got %s", o.SelectedSize)
		}
	})

	t.Run("malformed send date stored as-is", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		raw := "2024-02-31"
		o.ApplyEdit(OrderEdit{SendDate: &raw})

		if o.SendDate != "2024-02-31" {
			t.Fatalf("expected raw date to be stored, got %s", o.SendDate)
		}
	})
}

func TestOrderExtras(t *testing.T) {
	t.Run("add then remove last restores prior state", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		before := make([]LineItem, len(o.Extras))
		copy(before, o.Extras)

		item := o.AddExtra()
		if item.Description != "Novo Item" || item.Value != 0 || item.IsIncluded {
			t.Fatalf("unexpected default extra: %+v", item)
		}
		if !o.RemoveExtra(len(o.Extras) - 1) {
			t.Fatalf("expected removal to succeed")
		}
		if !reflect.DeepEqual(o.Extras, before) {
			t.Fatalf("extras not restored: %+v", o.Extras)
		}
	})

	t.Run("remove out of bounds is a no-op", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		before := make([]LineItem, len(o.Extras))
		copy(before, o.Extras)

		for _, index := range []int{-1, len(o.Extras), 99} {
			if o.RemoveExtra(index) {
				t.Fatalf("expected no-op for index %d", index)
			}
		}
		if !reflect.DeepEqual(o.Extras, before) {
			t.Fatalf("extras changed: %+v", o.Extras)
		}
	})

	t.Run("remove keeps display order", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		o.Extras = []LineItem{
			{Description: "A"}, {Description: "B"}, {Description: "C"}, {Description: "D"},
		}
		if !o.RemoveExtra(1) {
			t.Fatalf("expected removal to succeed")
		}
		got := []string{o.Extras[0].Description, o.Extras[1].Description, o.Extras[2].Description}
		if !reflect.DeepEqual(got, []string{"A", "C", "D"}) {
			t.Fatalf("order not preserved: %v", got)
		}
	})

	t.Run("marking included zeroes the value", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		o.AddExtra()
		index := len(o.Extras) - 1
		value := 15.0
		if !o.UpdateExtra(index, ExtraEdit{Value: &value}) {
			t.Fatalf("expected update to succeed")
		}

		included := true
		o.UpdateExtra(index, ExtraEdit{IsIncluded: &included})
		if o.Extras[index].Value != 0 {
			t.Fatalf("expected value zeroed, got %f", o.Extras[index].Value)
		}

		// Toggling back does not resurrect the old value.
		included = false
		o.UpdateExtra(index, ExtraEdit{IsIncluded: &included})
		if o.Extras[index].Value != 0 {
			t.Fatalf("expected value to stay 0 after round trip, got %f", o.Extras[index].Value)
		}
	})

	t.Run("update out of bounds is a no-op", func(t *testing.T) {
		o := NewOrder("o-1", Contact{}, time.Now())
		desc := "Frete"
		if o.UpdateExtra(len(o.Extras), ExtraEdit{Description: &desc}) {
			t.Fatalf("expected no-op")
		}
		if o.UpdateExtra(-1, ExtraEdit{Description: &desc}) {
			t.Fatalf("expected no-op")
		}
	})
}

func TestOrderSetImage(t *testing.T) {
	o := NewOrder("o-1", Contact{}, time.Now())

	first := &ImageHandle{DataURI: "data:image/png;base64,aa", ContentType: "image/png"}
	o.SetImage(first)
	if o.Image == nil || o.Image.DataURI != first.DataURI {
		t.Fatalf("image not set: %+v", o.Image)
	}

	second := &ImageHandle{DataURI: "data:image/jpeg;base64,bb", ContentType: "image/jpeg"}
	o.SetImage(second)
	if o.Image.ContentType != "image/jpeg" {
		t.Fatalf("expected newest upload to win, got %+v", o.Image)
	}

	o.SetImage(nil)
	if o.Image != nil {
		t.Fatalf("expected image cleared")
	}
}

func TestOrderClone(t *testing.T) {
	o := NewOrder("o-1", Contact{}, time.Now())
	o.SetImage(&ImageHandle{DataURI: "data:image/png;base64,aa"})

	c := o.Clone()
	c.Extras[0].Description = "changed"
	c.Image.DataURI = "changed"

	if o.Extras[0].Description == "changed" {
		t.Fatalf("clone shares extras slice")
	}
	if o.Image.DataURI == "changed" {
		t.Fatalf("clone shares image handle")
	}
}
