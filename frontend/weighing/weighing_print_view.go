package weighing

import (
	"context"
	"io"

	"github.com/a-h/templ"

	sharedhtml "pesagem/frontend/shared/html"
)

const printScript = `<script>
window.addEventListener("load", function () { window.print(); });
window.addEventListener("afterprint", function () { window.close(); });
</script>`

// PrintPage is the standalone document sent to the browser print dialog.
func PrintPage(r Receipt) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := sharedhtml.NewWriter(w)
		out.Raw(`<!doctype html><html lang="pt-BR"><head><meta charset="utf-8"><title>`)
		out.Text(r.PrintTitle())
		out.Raw(`</title></head><body>`)

		out.Raw(`<h1>Informações do Cliente</h1>`)
		out.Raw(`<p><strong>Nome:</strong> `)
		out.Text(r.ClientName)
		out.Raw(`</p><p><strong>Telefone:</strong> `)
		out.Text(r.Phone)
		out.Raw(`</p><p><strong>Tipo de Café:</strong> `)
		out.Text(r.Product)
		out.Raw(`</p>`)

		out.Raw(`<h2>Pesos</h2>`)
		out.Raw(`<table border="1" style="width: 100%; text-align: left; border-collapse: collapse;">`)
		out.Raw(`<thead><tr><th>Peso (KG)</th></tr></thead><tbody>`)
		for _, line := range r.Lines {
			out.Raw(`<tr><td>`)
			out.Text(line.Value)
			out.Raw(`</td></tr>`)
		}
		out.Raw(`</tbody><tfoot><tr><td><strong>Total (KG):</strong> `)
		out.Text(r.Total)
		out.Raw(`</td></tr></tfoot></table>`)

		out.Raw(`<p>Todos os direitos reservados.</p><p><strong>`)
		out.Text(r.Business.Name)
		out.Raw(` <br/> `)
		out.Text(r.Business.Phone)
		out.Raw(`</strong></p><span>`)
		out.Text(r.Business.Disclaimer)
		out.Raw(`</span>`)

		out.Raw(printScript)
		out.Raw(`</body></html>`)
		return out.Err()
	})
}
