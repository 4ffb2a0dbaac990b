package html

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the application document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		out.Raw(`<!doctype html><html lang="pt-BR"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		out.Text(title)
		out.Raw(`</title><link rel="stylesheet" href="/assets/app.css"></head><body>`)
		if err := out.Err(); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		out.Raw(CSRFFormScript())
		out.Raw(`</body></html>`)
		return out.Err()
	})
}
