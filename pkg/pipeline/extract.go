package pipeline

import (
	"html"
	"mime"
	"regexp"
	"strings"

	"github.com/instill-ai/knowledge-backend/pkg/constant"
)

var markupTag = regexp.MustCompile(`<[^>]*>`)

// ExtractText normalizes raw document content into plain text according to
// its declared content type:
//   - plain text and markdown are returned as is,
//   - any other text/* type is stripped of markup tags and whitespace runs
//     are collapsed,
//   - anything else is returned as is.
//
// NUL bytes and invalid UTF-8 sequences are always dropped, since they can't
// be stored in a text column.
func ExtractText(raw []byte, contentType string) string {
	text := sanitize(raw)

	mediaType := normalizeContentType(contentType)
	switch {
	case mediaType == constant.ContentTypePlain,
		mediaType == constant.ContentTypeMarkdown,
		mediaType == constant.ContentTypeXMarkdown:
		return text
	case strings.HasPrefix(mediaType, "text"):
		text = markupTag.ReplaceAllString(text, " ")
		text = html.UnescapeString(text)
		return strings.Join(strings.Fields(text), " ")
	default:
		return text
	}
}

func normalizeContentType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func sanitize(raw []byte) string {
	text := strings.ToValidUTF8(string(raw), "")
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.ReplaceAll(text, "\x00", "")
}
