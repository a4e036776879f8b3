package pipeline

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestExtractText(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		name        string
		raw         string
		contentType string
		want        string
	}{
		{
			name:        "plain text is kept as is",
			raw:         "Line one.\n\n  Line two <b>not markup</b>.\n",
			contentType: "text/plain",
			want:        "Line one.\n\n  Line two <b>not markup</b>.\n",
		},
		{
			name:        "markdown is kept as is",
			raw:         "# Title\n\nSome *text*.",
			contentType: "text/markdown",
			want:        "# Title\n\nSome *text*.",
		},
		{
			name:        "content type parameters are ignored",
			raw:         "# Title\n\nBody",
			contentType: "Text/Markdown; charset=utf-8",
			want:        "# Title\n\nBody",
		},
		{
			name:        "x-markdown is kept as is",
			raw:         "- a\n- b",
			contentType: "text/x-markdown",
			want:        "- a\n- b",
		},
		{
			name:        "html is stripped and collapsed",
			raw:         "<html><body>\n<h1>Title</h1>\n<p>First&nbsp;paragraph &amp; more.</p>\n\n<p>Second</p></body></html>",
			contentType: "text/html",
			want:        "Title First paragraph & more. Second",
		},
		{
			name:        "csv is collapsed",
			raw:         "name,role\nada,engineer\n",
			contentType: "text/csv",
			want:        "name,role ada,engineer",
		},
		{
			name:        "unknown types are kept as is",
			raw:         "{\"key\": \"value\"}\n",
			contentType: "application/json",
			want:        "{\"key\": \"value\"}\n",
		},
		{
			name:        "missing content type",
			raw:         "raw content",
			contentType: "",
			want:        "raw content",
		},
		{
			name:        "NUL bytes and invalid UTF-8 are dropped",
			raw:         "\ufeffva\x00lid\xff text",
			contentType: "text/plain",
			want:        "valid text",
		},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			c.Check(ExtractText([]byte(tc.raw), tc.contentType), qt.Equals, tc.want)
		})
	}
}

func TestCountTokens(t *testing.T) {
	c := qt.New(t)

	c.Check(CountTokens(""), qt.Equals, 0)
	c.Check(CountTokens("The quick brown fox jumps over the lazy dog.") > 0, qt.IsTrue)
}
