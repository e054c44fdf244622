// Package templates renders templ components into standalone HTML email documents.
package templates

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ErrRenderFailed wraps any error returned by a component during rendering.
var ErrRenderFailed = errors.New("failed to render email template")

// Render renders tpl to a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	if tpl == nil {
		return "", errors.Join(ErrRenderFailed, errors.New("nil component"))
	}
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return sb.String(), nil
}

// Document wraps body in a complete HTML document with an inline stylesheet.
// Mail clients strip external CSS, so the style block travels with every message.
// title is escaped; css is trusted and written verbatim.
func Document(title, css string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`+
			templ.EscapeString(title)+`</title><style>`+css+`</style></head><body>`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
