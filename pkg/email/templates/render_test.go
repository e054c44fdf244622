package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/email/templates"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders component", func(t *testing.T) {
		t.Parallel()
		out, err := templates.Render(context.Background(), text("<p>hi</p>"))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", out)
	})

	t.Run("component error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		out, err := templates.Render(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
			return boom
		}))
		assert.Empty(t, out)
		assert.ErrorIs(t, err, templates.ErrRenderFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil component", func(t *testing.T) {
		t.Parallel()
		_, err := templates.Render(context.Background(), nil)
		assert.ErrorIs(t, err, templates.ErrRenderFailed)
	})
}

func TestDocument(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(),
		templates.Document("A <b>title</b>", "body { color: #333; }", text("<main>content</main>")))
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>A &lt;b&gt;title&lt;/b&gt;</title>")
	assert.Contains(t, out, "<style>body { color: #333; }</style>")
	assert.Contains(t, out, "<body><main>content</main></body></html>")
}
