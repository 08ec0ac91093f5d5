package entities

import "time"

// Size is one of the five fixed physical-dimension bands of a product.
//
// Domain notes:
//   - An order always has exactly one selected size (radio-button
//     semantics, never a set). New orders default to SizeM.

type Size string

const (
	SizePP Size = "PP"
	SizeP  Size = "P"
	SizeM  Size = "M"
	SizeG  Size = "G"
	SizeXG Size = "XG"
)

// Sizes lists the bands in the fixed display order of the document.
func Sizes() []Size {
	return []Size{SizePP, SizeP, SizeM, SizeG, SizeXG}
}

// IsValid reports whether s is one of the five known bands.
func (s Size) IsValid() bool {
	switch s {
	case SizePP, SizeP, SizeM, SizeG, SizeXG:
		return true
	}
	return false
}

// LineItem is an "extra" row in the quote description table.
//
// An included item is advertised on the document but contributes zero
// to the total regardless of any value it once carried.
type LineItem struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	IsIncluded  bool    `json:"is_included"`
}

// Contact is the fixed contact block printed on every document.
// It is process-wide configuration, not per-order state.
type Contact struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
}

// ImageHandle is a displayable reference to an ingested product image.
// The order stores whatever handle ingestion produced without
// inspecting its content.
type ImageHandle struct {
	DataURI     string `json:"data_uri"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Order is the single in-progress quote being edited in one session.
//
// Domain notes:
//   - Orders live only in memory for the lifetime of the editing
//     session; there is no persistence across sessions.
//   - Quantity has no enforced lower bound and UnitPrice no enforced
//     sign: out-of-range values are accepted on purpose and surface
//     only in the rendered document.
//   - SendDate is the raw YYYY-MM-DD string; malformed content is
//     stored as-is and reformatted without calendar validation.

type Order struct {
	ID           string       `json:"id"`
	ClientName   string       `json:"client_name"`
	ModelName    string       `json:"model_name"`
	CreatorName  string       `json:"creator_name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    float64      `json:"unit_price"`
	SelectedSize Size         `json:"selected_size"`
	SendDate     string       `json:"send_date"`
	Image        *ImageHandle `json:"image,omitempty"`
	Extras       []LineItem   `json:"extras"`
	Contact      Contact      `json:"contact"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

const (
	defaultQuantity         = 1
	defaultUnitPrice        = 40.00
	defaultExtraDescription = "Novo Item"
)

// NewOrder seeds an order for a fresh editing session: empty names,
// quantity 1, unit price 40.00, size M, today's send date and the two
// pre-populated included extras.
func NewOrder(id string, contact Contact, now time.Time) Order {
	return Order{
		ID:           id,
		Quantity:     defaultQuantity,
		UnitPrice:    defaultUnitPrice,
		SelectedSize: SizeM,
		SendDate:     now.Format("2006-01-02"),
		Extras: []LineItem{
			{Description: "Pintura", Value: 0, IsIncluded: true},
			{Description: "Acabamento", Value: 0, IsIncluded: true},
		},
		Contact:   contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OrderEdit carries one batch of scalar field edits. Nil fields are
// left untouched.
type OrderEdit struct {
	ClientName   *string
	ModelName    *string
	CreatorName  *string
	Quantity     *int
	UnitPrice    *float64
	SelectedSize *Size
	SendDate     *string
}

// ExtraEdit carries field edits for one line item. Nil fields are left
// untouched.
type ExtraEdit struct {
	Description *string
	Value       *float64
	IsIncluded  *bool
}

// ApplyEdit applies the provided scalar fields. A SelectedSize outside
// the five known bands is ignored so the order never loses its single
// selected size.
func (o *Order) ApplyEdit(e OrderEdit) {
	if e.ClientName != nil {
		o.ClientName = *e.ClientName
	}
	if e.ModelName != nil {
		o.ModelName = *e.ModelName
	}
	if e.CreatorName != nil {
		o.CreatorName = *e.CreatorName
	}
	if e.Quantity != nil {
		o.Quantity = *e.Quantity
	}
	if e.UnitPrice != nil {
		o.UnitPrice = *e.UnitPrice
	}
	if e.SelectedSize != nil && e.SelectedSize.IsValid() {
		o.SelectedSize = *e.SelectedSize
	}
	if e.SendDate != nil {
		o.SendDate = *e.SendDate
	}
}

// AddExtra appends a line item with the default placeholder fields and
// returns it.
func (o *Order) AddExtra() LineItem {
	item := LineItem{Description: defaultExtraDescription, Value: 0, IsIncluded: false}
	o.Extras = append(o.Extras, item)
	return item
}

// RemoveExtra deletes the line item at index, preserving the order of
// the remaining items. Out-of-bounds indexes are a silent no-op; the
// return value reports whether anything changed.
func (o *Order) RemoveExtra(index int) bool {
	if index < 0 || index >= len(o.Extras) {
		return false
	}
	o.Extras = append(o.Extras[:index], o.Extras[index+1:]...)
	return true
}

// UpdateExtra applies an edit to the line item at index. Setting
// IsIncluded to true also zeroes the stored value, so no stale nonzero
// "included" line survives a toggle round trip. Out-of-bounds indexes
// are a silent no-op.
func (o *Order) UpdateExtra(index int, e ExtraEdit) bool {
	if index < 0 || index >= len(o.Extras) {
		return false
	}
	item := &o.Extras[index]
	if e.Description != nil {
		item.Description = *e.Description
	}
	if e.Value != nil {
		item.Value = *e.Value
	}
	if e.IsIncluded != nil {
		item.IsIncluded = *e.IsIncluded
		if item.IsIncluded {
			item.Value = 0
		}
	}
	return true
}

// SetImage replaces the product image, or clears it when handle is nil.
// There is only ever one image slot; the newest upload wins.
func (o *Order) SetImage(handle *ImageHandle) {
	if handle == nil {
		o.Image = nil
		return
	}
	h := *handle
	o.Image = &h
}

// Clone returns a deep copy so callers can hand orders across the
// repository boundary without sharing the extras slice or image.
func (o Order) Clone() Order {
	c := o
	if o.Extras != nil {
		c.Extras = make([]LineItem, len(o.Extras))
		copy(c.Extras, o.Extras)
	}
	if o.Image != nil {
		img := *o.Image
		c.Image = &img
	}
	return c
}
