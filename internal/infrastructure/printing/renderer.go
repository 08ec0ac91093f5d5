// Package printing holds the rendering collaborators behind the quote
// document: an HTML renderer for screen preview and a spool printer
// that emits the document for physical/PDF printing.
package printing

import (
	"bytes"
	"html/template"

	"imagine_hub/internal/domain/quote"
	"imagine_hub/internal/usecase/interfaces"
)

// HTMLRenderer renders the snapshot view-model into the fixed-layout
// A4 quote document. Styling decisions live entirely in the template;
// the renderer only feeds it the snapshot.

type HTMLRenderer struct {
	tmpl *template.Template
}

var _ interfaces.IDocumentRenderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		// html/template rewrites data: URLs to #ZgotmplZ unless they
		// are marked trusted. The handle is produced by our own
		// ingestor, never by user-controlled markup.
		"dataURI": func(s string) template.URL { return template.URL(s) },
	}
	return &HTMLRenderer{
		tmpl: template.Must(template.New("quote").Funcs(funcs).Parse(documentTemplate)),
	}
}

func (r *HTMLRenderer) Render(s quote.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Orçamento de Pedido</title>
<style>
  @page { size: A4; margin: 0; }
  body { margin: 0; font-family: 'Bebas Neue', sans-serif; background: #FFF5F7; }
  .page { width: 595px; min-height: 842px; margin: 0 auto; position: relative; display: flex; flex-direction: column; }
  .stripe { position: absolute; top: 0; left: 50%; transform: translateX(-50%); width: 160px; height: 65%; background: #00FF55; z-index: 0; }
  header { position: relative; z-index: 1; text-align: center; padding-top: 2rem; }
  header h1 { font-size: 110px; line-height: 0.8; letter-spacing: -1px; color: #333; margin: 0; }
  header p { font-size: 1.6rem; letter-spacing: 0.2em; color: #444; margin-top: -8px; }
  .body { position: relative; z-index: 1; flex: 1; padding: 0 0.5rem; }
  .model { float: left; max-width: 35%; color: #444; text-transform: uppercase; }
  .client { float: right; max-width: 35%; text-align: right; color: #444; text-transform: uppercase; }
  .image { text-align: center; clear: both; padding: 2rem 0; }
  .image img { max-width: 100%; max-height: 420px; }
  .no-image { color: #999; opacity: 0.5; font-size: 1.4rem; padding: 4rem 0; }
  .send-date { text-align: right; color: #333; }
  table.extras { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.8); }
  table.extras thead { background: #444; color: #fff; }
  table.extras td, table.extras th { border: 1px solid #ccc; padding: 2px 8px; font-size: 1.1rem; }
  .totals { margin-top: 0.75rem; }
  .totals .row { display: flex; justify-content: flex-end; gap: 1rem; font-size: 1.4rem; color: #444; }
  .totals .box { border: 1px solid #999; min-width: 10rem; text-align: center; background: #fff; color: #666; }
  .sizes { border-left: 1px solid #333; padding-left: 0.5rem; }
  .sizes .band { display: flex; justify-content: flex-end; gap: 0.5rem; align-items: center; }
  .sizes .cell { width: 2.2rem; height: 2.2rem; border: 2px solid #444; display: flex; align-items: center; justify-content: center; }
  .sizes .selected { background: #333; color: #fff; }
  footer { background: #333; color: #fff; display: flex; justify-content: space-between; padding: 0.4rem 0.5rem; margin-top: auto; z-index: 1; }
</style>
</head>
<body>
<div class="page">
  <div class="stripe"></div>
  <header>
    <h1>IMAGINE</h1>
    <p>ORÇAMENTO DE PEDIDO</p>
  </header>
  <div class="body">
    <div class="model">
      <h2>{{.Order.ModelName}}</h2>
      <p>CRIADOR:<br>{{.Order.CreatorName}}</p>
    </div>
    <div class="client">
      <h2>CLIENTE</h2>
      <p>{{.Order.ClientName}}</p>
    </div>
    <div class="image">
      {{if .Order.Image}}<img src="{{dataURI .Order.Image.DataURI}}" alt="Produto">{{else}}<div class="no-image">[Sem Imagem]</div>{{end}}
    </div>
    <div class="send-date">
      <p>DATA DE ENVIO<br><strong>{{.SendDateFormatted}}</strong></p>
    </div>
    <table class="extras">
      <thead><tr><th>DESCRIÇÃO</th><th>VALORES (R$)</th></tr></thead>
      <tbody>
        {{range .Order.Extras}}
        <tr><td>{{.Description}}</td><td>{{if .IsIncluded}}Incluso{{else}}{{printf "%.2f" .Value}}{{end}}</td></tr>
        {{end}}
      </tbody>
    </table>
    <div class="totals">
      <div class="row"><span>QUANTIDADE</span><div class="box">{{.Order.Quantity}}</div></div>
      <div class="row"><span>PREÇO UNIT.</span><div class="box">{{.UnitPriceFormatted}}</div></div>
      <div class="row"><span>VALOR TOTAL</span><div class="box">{{.TotalFormatted}}</div></div>
    </div>
    <div class="sizes">
      <h3>TAMANHO</h3>
      {{range .Sizes}}
      <div class="band"><span>{{.Range}}</span><div class="cell{{if .IsSelected}} selected{{end}}">{{.Label}}</div></div>
      {{end}}
    </div>
  </div>
  <footer>
    <span>{{.Order.Contact.Phone}}</span>
    <span>{{.Order.Contact.Email}}</span>
    <span>{{.Order.Contact.Instagram}}</span>
  </footer>
</div>
</body>
</html>
`
