// Package quote derives the read-only presentation data of a quote
// document from an Order. Everything here is a pure function: the
// renderer consumes the Snapshot and nothing in this package mutates
// the order or performs I/O.
package quote

import (
	"strings"

	"imagine_hub/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SizeBand is one row of the document's size table.
type SizeBand struct {
	Label      entities.Size `json:"label"`
	Range      string        `json:"range"`
	IsSelected bool          `json:"is_selected"`
}

var sizeRanges = map[entities.Size]string{
	entities.SizePP: "< 50 mm",
	entities.SizeP:  "50 a 80 mm",
	entities.SizeM:  "80 a 150 mm",
	entities.SizeG:  "150 a 250 mm",
	entities.SizeXG: "> 250 mm",
}

// ptBR localizes numbers with comma decimals and period grouping,
// matching the document's fixed Brazilian Real rendering.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Total computes quantity * unit price plus the value of every
// non-included extra. Included extras contribute exactly zero no matter
// what value they carry. No rounding happens here; only currency
// formatting rounds, and only for display.
func Total(o entities.Order) float64 {
	total := float64(o.Quantity) * o.UnitPrice
	for _, item := range o.Extras {
		if !item.IsIncluded {
			total += item.Value
		}
	}
	return total
}

// FormatCurrency renders an amount in Brazilian Real: "R$" symbol,
// comma decimal separator, period thousands separator, two decimal
// digits. The locale is a fixed product decision, not configurable.
func FormatCurrency(v float64) string {
	return "R$ " + ptBR.Sprintf("%.2f", v)
}

// FormatDate converts YYYY-MM-DD into DD/MM/YYYY. Empty input yields
// empty output. No calendar validation happens: any dash-separated
// three-part string is reformatted as-is, and anything else is passed
// through unchanged.
func FormatDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// SizeTable returns the five fixed bands in display order PP, P, M, G,
// XG, with exactly one marked selected.
func SizeTable(selected entities.Size) []SizeBand {
	sizes := entities.Sizes()
	table := make([]SizeBand, 0, len(sizes))
	for _, s := range sizes {
		table = append(table, SizeBand{
			Label:      s,
			Range:      sizeRanges[s],
			IsSelected: s == selected,
		})
	}
	return table
}

// Snapshot is the immutable, fully-computed view-model handed to
// rendering for one document instance.
type Snapshot struct {
	Order              entities.Order `json:"order"`
	Total              float64        `json:"total"`
	TotalFormatted     string         `json:"total_formatted"`
	UnitPriceFormatted string         `json:"unit_price_formatted"`
	SendDateFormatted  string         `json:"send_date_formatted"`
	Sizes              []SizeBand     `json:"sizes"`
}

// BuildSnapshot projects an order into its document view-model. The
// embedded order is a deep copy, so later edits never show through a
// snapshot already handed to the renderer.
func BuildSnapshot(o entities.Order) Snapshot {
	total := Total(o)
	return Snapshot{
		Order:              o.Clone(),
		Total:              total,
		TotalFormatted:     FormatCurrency(total),
		UnitPriceFormatted: FormatCurrency(o.UnitPrice),
		SendDateFormatted:  FormatDate(o.SendDate),
		Sizes:              SizeTable(o.SelectedSize),
	}
}
