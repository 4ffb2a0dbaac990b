package weighing

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	sharedhtml "pesagem/frontend/shared/html"
)

// WeighingPage renders the whole form. Every button posts the same form to
// its own action so the typed values always travel with the action.
func WeighingPage(data PageData) templ.Component {
	return sharedhtml.Layout(data.BusinessName, weighingBody(data))
}

func weighingBody(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := sharedhtml.NewWriter(w)
		out.Raw(`<header class="topbar"><h1>`)
		out.Text(data.BusinessName)
		out.Raw(`</h1></header>`)

		out.Raw(`<form method="post" action="` + FieldsPath + `" class="card" autocomplete="off">`)
		if data.Editing {
			// Enter submits the first button of the form.
			out.Raw(`<button type="submit" class="default-submit" formaction="` + CommitEditPath + `" tabindex="-1" aria-hidden="true"></button>`)
		}
		if data.Message != "" {
			out.Raw(`<div class="alert alert-error" role="alert">`)
			out.Text(data.Message)
			out.Raw(`</div>`)
		}
		if data.Status != "" {
			out.Raw(`<div class="alert alert-success" role="status">`)
			out.Text(data.Status)
			if data.DownloadURL != "" {
				out.Raw(` <a`)
				out.Attr("href", data.DownloadURL)
				out.Raw(`>Baixar PDF novamente</a><iframe class="hidden"`)
				out.Attr("src", data.DownloadURL)
				out.Raw(`></iframe>`)
			}
			out.Raw(`</div>`)
		}

		out.Raw(`<fieldset><legend>Informações do cliente:</legend>`)
		out.Raw(`<label for="name">Nome:</label><input type="text" id="name" name="name" placeholder="Digite o nome do cliente"`)
		out.Attr("value", data.Name)
		out.Raw(`><label for="phone">Telefone:</label><input type="tel" id="phone" name="phone" placeholder="Digite o telefone do cliente"`)
		out.Attr("value", data.Phone)
		out.Raw(`></fieldset>`)

		out.Raw(`<fieldset><legend>Café:</legend><label for="type">Tipo:</label><select id="type" name="product"><option value="">Selecione</option>`)
		for _, p := range data.Products {
			out.Raw(`<option`)
			out.Attr("value", p.Value)
			if p.Selected {
				out.Raw(` selected`)
			}
			out.Raw(`>`)
			out.Text(p.Label)
			out.Raw(`</option>`)
		}
		out.Raw(`</select></fieldset>`)

		out.Raw(`<section class="control"><h2>Controle</h2><div class="add-row">`)
		out.Raw(`<input type="text" name="new_weight" inputmode="decimal" placeholder="Digite o peso (KG)"`)
		out.Attr("value", data.NewWeight)
		out.Raw(`><button type="submit" class="btn btn-add" formaction="` + AddWeightPath + `">Adicionar</button></div>`)

		out.Raw(`<table><thead><tr><th>Peso (KG)</th><th>Ações</th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			index := strconv.Itoa(row.Index)
			out.Raw(`<tr><td>`)
			if row.Editing {
				out.Raw(`<input type="text" name="edit_value" inputmode="decimal"`)
				out.Attr("value", row.Scratch)
				out.Raw(`></td><td class="actions">`)
				out.Raw(`<button type="submit" class="link" formaction="` + CommitEditPath + `">Salvar</button>`)
				out.Raw(`<button type="submit" class="link danger" formaction="` + CancelEditPath + `">Cancelar</button>`)
			} else {
				out.Text(row.Value)
				out.Raw(`</td><td class="actions">`)
				out.Raw(`<button type="submit" class="link" formaction="` + weightActionPath(index, "edit") + `" aria-label="Editar peso ` + index + `">Editar</button>`)
				out.Raw(`<button type="submit" class="link danger" formaction="` + weightActionPath(index, "delete") + `" aria-label="Excluir peso ` + index + `">Excluir</button>`)
			}
			out.Raw(`</td></tr>`)
		}
		out.Raw(`</tbody><tfoot><tr><td>Total (KG)</td><td>`)
		out.Text(data.Total)
		out.Raw(`</td></tr></tfoot></table>`)

		out.Raw(`<div class="export-row">`)
		out.Raw(`<button type="submit" class="btn btn-save" formaction="` + SavePath + `" onclick="return confirm('Deseja realmente salvar os dados?')">Salvar</button>`)
		out.Raw(`<button type="submit" class="btn btn-print" formaction="` + PrintPath + `" formtarget="_blank">Imprimir</button>`)
		out.Raw(`</div></section></form>`)
		return out.Err()
	})
}
