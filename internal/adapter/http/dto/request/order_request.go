package request

import "imagine_hub/internal/domain/entities"

// UpdateOrderRequest carries one batch of scalar field edits. Absent
// fields are left untouched, so a UI can send one field per keystroke.
//
// Quantity and unit price are typed JSON numbers: non-numeric input is
// rejected during binding and the stored value stays what it was.
// Negative or zero amounts pass through on purpose. SendDate is a free
// string; the document reformats whatever it holds.
type UpdateOrderRequest struct {
	ClientName   *string  `json:"client_name"`
	ModelName    *string  `json:"model_name"`
	CreatorName  *string  `json:"creator_name"`
	Quantity     *int     `json:"quantity"`
	UnitPrice    *float64 `json:"unit_price"`
	SelectedSize *string  `json:"selected_size" validate:"omitempty,oneof=PP P M G XG"`
	SendDate     *string  `json:"send_date"`
}

func (r UpdateOrderRequest) ToEdit() entities.OrderEdit {
	edit := entities.OrderEdit{
		ClientName:  r.ClientName,
		ModelName:   r.ModelName,
		CreatorName: r.CreatorName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		SendDate:    r.SendDate,
	}
	if r.SelectedSize != nil {
		size := entities.Size(*r.SelectedSize)
		edit.SelectedSize = &size
	}
	return edit
}

// UpdateExtraRequest edits one line item. Setting is_included to true
// zeroes the stored value downstream; sending a nonzero value together
// with is_included=true is rejected during validation.
type UpdateExtraRequest struct {
	Description *string  `json:"description"`
	Value       *float64 `json:"value"`
	IsIncluded  *bool    `json:"is_included"`
}

func (r UpdateExtraRequest) ToEdit() entities.ExtraEdit {
	return entities.ExtraEdit{
		Description: r.Description,
		Value:       r.Value,
		IsIncluded:  r.IsIncluded,
	}
}
