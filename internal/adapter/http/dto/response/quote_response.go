package response

import "imagine_hub/internal/domain/quote"

type SizeBandResponse struct {
	Label      string `json:"label"`
	Range      string `json:"range"`
	IsSelected bool   `json:"is_selected"`
}

// QuoteResponse is the immutable view-model consumed by rendering: the
// order fields as-is plus every derived presentation value.
type QuoteResponse struct {
	Order              OrderResponse      `json:"order"`
	Total              float64            `json:"total"`
	TotalFormatted     string             `json:"total_formatted"`
	UnitPriceFormatted string             `json:"unit_price_formatted"`
	SendDateFormatted  string             `json:"send_date_formatted"`
	Sizes              []SizeBandResponse `json:"sizes"`
}

func FromSnapshot(s quote.Snapshot) QuoteResponse {
	sizes := make([]SizeBandResponse, 0, len(s.Sizes))
	for _, band := range s.Sizes {
		sizes = append(sizes, SizeBandResponse{
			Label:      string(band.Label),
			Range:      band.Range,
			IsSelected: band.IsSelected,
		})
	}

	return QuoteResponse{
		Order:              FromOrder(s.Order),
		Total:              s.Total,
		TotalFormatted:     s.TotalFormatted,
		UnitPriceFormatted: s.UnitPriceFormatted,
		SendDateFormatted:  s.SendDateFormatted,
		Sizes:              sizes,
	}
}
