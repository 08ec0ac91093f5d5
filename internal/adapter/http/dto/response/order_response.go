package response

import (
	"time"

	"imagine_hub/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	IsIncluded  bool    `json:"is_included"`
}

type ImageResponse struct {
	DataURI     string `json:"data_uri"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type ContactResponse struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
}

type OrderResponse struct {
	ID           string             `json:"id"`
	ClientName   string             `json:"client_name"`
	ModelName    string             `json:"model_name"`
	CreatorName  string             `json:"creator_name"`
	Quantity     int                `json:"quantity"`
	UnitPrice    float64            `json:"unit_price"`
	SelectedSize string             `json:"selected_size"`
	SendDate     string             `json:"send_date"`
	Image        *ImageResponse     `json:"image,omitempty"`
	Extras       []LineItemResponse `json:"extras"`
	Contact      ContactResponse    `json:"contact"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	extras := make([]LineItemResponse, 0, len(o.Extras))
	for _, item := range o.Extras {
		extras = append(extras, LineItemResponse{
			Description: item.Description,
			Value:       item.Value,
			IsIncluded:  item.IsIncluded,
		})
	}

	var img *ImageResponse
	if o.Image != nil {
		img = &ImageResponse{
			DataURI:     o.Image.DataURI,
			ContentType: o.Image.ContentType,
			Width:       o.Image.Width,
			Height:      o.Image.Height,
		}
	}

	return OrderResponse{
		ID:           o.ID,
		ClientName:   o.ClientName,
		ModelName:    o.ModelName,
		CreatorName:  o.CreatorName,
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice,
		SelectedSize: string(o.SelectedSize),
		SendDate:     o.SendDate,
		Image:        img,
		Extras:       extras,
		Contact: ContactResponse{
			Phone:     o.Contact.Phone,
			Email:     o.Contact.Email,
			Instagram: o.Contact.Instagram,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
