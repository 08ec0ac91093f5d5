// Command preview renders a quote document as terminal tables: the
// description rows, the totals block and the size table. It reads an
// order from a JSON file (the shape served by GET /v1/orders/{id}) so
// a quote can be eyeballed without a browser.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"imagine_hub/internal/domain/entities"
	"imagine_hub/internal/domain/quote"

	"github.com/olekukonko/tablewriter"
)

func main() {
	var (
		orderFile = flag.String("order", "", "path to an order JSON file")
	)
	flag.Parse()

	if *orderFile == "" {
		log.Fatal("missing -order flag")
	}

	data, err := os.ReadFile(*orderFile)
	if err != nil {
		log.Fatalf("failed to read order file: %v", err)
	}

	var order entities.Order
	if err := json.Unmarshal(data, &order); err != nil {
		log.Fatalf("failed to parse order file: %v", err)
	}

	s := quote.BuildSnapshot(order)

	fmt.Println("IMAGINE — ORÇAMENTO DE PEDIDO")
	fmt.Printf("Cliente: %s  Modelo: %s  Criador: %s  Envio: %s\n\n",
		order.ClientName, order.ModelName, order.CreatorName, s.SendDateFormatted)

	printExtras(s)
	printTotals(s)
	printSizes(s)

	fmt.Printf("\n%s | %s | %s\n", order.Contact.Phone, order.Contact.Email, order.Contact.Instagram)
}

func printExtras(s quote.Snapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("DESCRIÇÃO", "VALORES (R$)")
	for _, item := range s.Order.Extras {
		value := "Incluso"
		if !item.IsIncluded {
			value = strconv.FormatFloat(item.Value, 'f', 2, 64)
		}
		if err := table.Append([]string{item.Description, value}); err != nil {
			log.Fatalf("failed to build extras table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		log.Fatalf("failed to render extras table: %v", err)
	}
}

func printTotals(s quote.Snapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("QUANTIDADE", "PREÇO UNIT.", "VALOR TOTAL")
	row := []string{strconv.Itoa(s.Order.Quantity), s.UnitPriceFormatted, s.TotalFormatted}
	if err := table.Append(row); err != nil {
		log.Fatalf("failed to build totals table: %v", err)
	}
	if err := table.Render(); err != nil {
		log.Fatalf("failed to render totals table: %v", err)
	}
}

func printSizes(s quote.Snapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("TAMANHO", "FAIXA", "SELECIONADO")
	for _, band := range s.Sizes {
		selected := ""
		if band.IsSelected {
			selected = "X"
		}
		if err := table.Append([]string{string(band.Label), band.Range, selected}); err != nil {
			log.Fatalf("failed to build size table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		log.Fatalf("failed to render size table: %v", err)
	}
}
