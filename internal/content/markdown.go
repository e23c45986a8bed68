package content

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", errors.Wrap(err, "failed to render markdown")
	}

	return policy.Sanitize(buf.String()), nil
}

// MarkdownField returns a decorator adding <field>Html with the rendered
// value of field when the resolved entity has it.
func MarkdownField(field string) func(map[string]any) error {
	return func(out map[string]any) error {
		src, ok := out[field].(string)
		if !ok {
			return nil
		}

		html, err := RenderMarkdown(src)
		if err != nil {
			return err
		}

		out[field+"Html"] = html

		return nil
	}
}
