package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/instill-ai/knowledge-backend/pkg/constant"
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

const (
	paragraphSeparator = "\n\n"
	sentenceSeparator  = " "
)

// TextSplitter splits text into overlapping chunks that respect paragraph
// and, when a paragraph run is too long, sentence boundaries. Lengths are
// measured in characters.
type TextSplitter struct {
	ChunkSize    int
	ChunkOverlap int
}

// NewTextSplitter returns a splitter with the given size and overlap. Non
// positive values fall back to the defaults.
func NewTextSplitter(chunkSize, chunkOverlap int) *TextSplitter {
	if chunkSize <= 0 {
		chunkSize = constant.ChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = min(constant.ChunkOverlap, chunkSize/2)
	}
	return &TextSplitter{ChunkSize: chunkSize, ChunkOverlap: chunkOverlap}
}

// Split breaks text into chunks. An empty or whitespace-only text yields no
// chunks. A single sentence longer than the chunk size is emitted as is.
func (ts *TextSplitter) Split(text string) []string {
	chunks := []string{}

	// buf starts with seed, the overlap carried from the previous chunk.
	var buf, seed string
	for _, p := range paragraphs(text) {
		if runeLen(buf)+runeLen(p)+len(paragraphSeparator) > ts.ChunkSize && hasContent(buf, seed) {
			var chunk string
			chunk, seed = ts.finalize(buf, "", paragraphSeparator)
			chunks = append(chunks, chunk)
			buf = seed
		}

		buf += p + paragraphSeparator

		if runeLen(buf) > ts.ChunkSize {
			var emitted []string
			emitted, buf, seed = ts.splitSentences(buf, seed)
			chunks = append(chunks, emitted...)
		}
	}

	if last := strings.TrimSpace(buf); last != "" {
		chunks = append(chunks, last)
	}

	return chunks
}

// SplitChunks splits text and annotates each chunk with its position and
// token count.
func (ts *TextSplitter) SplitChunks(text string) []TextChunk {
	texts := ts.Split(text)
	chunks := make([]TextChunk, len(texts))
	for i, t := range texts {
		chunks[i] = TextChunk{
			Index:  i,
			Text:   t,
			Tokens: CountTokens(t),
		}
	}
	return chunks
}

// splitSentences re-packs an oversized buffer sentence by sentence. buf
// starts with seed, which is carried over as is and dropped when it can't fit
// alongside the first sentence. It returns the finalized chunks, the remaining
// buffer and the seed it starts with.
func (ts *TextSplitter) splitSentences(buf, seed string) ([]string, string, string) {
	var chunks []string

	next := seed
	for _, s := range sentences(strings.TrimPrefix(buf, seed)) {
		size := runeLen(next) + runeLen(trimRight(s))
		if size > ts.ChunkSize && !hasContent(next, seed) {
			next, seed = "", ""
		}
		if size > ts.ChunkSize && hasContent(next, seed) {
			var chunk string
			chunk, seed = ts.finalize(next, s, sentenceSeparator)
			chunks = append(chunks, chunk)
			next = seed
		}
		next += s
	}

	return chunks, next, seed
}

// hasContent reports whether buf holds text beyond the seed it starts with.
func hasContent(buf, seed string) bool {
	return strings.TrimSpace(buf) != "" && runeLen(strings.TrimSpace(buf)) > runeLen(strings.TrimSpace(seed))
}

// finalize returns the trimmed buffer as a chunk, along with the buffer that
// seeds the following chunk: the last ChunkOverlap characters of the chunk.
// The seed is dropped when it can't fit alongside the upcoming sentence,
// which can't be split any further.
func (ts *TextSplitter) finalize(buf, upcoming, sep string) (chunk, seed string) {
	chunk = strings.TrimSpace(buf)

	tail := strings.TrimSpace(lastRunes(chunk, ts.ChunkOverlap))
	if tail == "" || runeLen(tail)+len(sep)+runeLen(strings.TrimSpace(upcoming)) > ts.ChunkSize {
		return chunk, ""
	}

	return chunk, tail + sep
}

// paragraphs splits text on blank lines and drops empty paragraphs.
func paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// sentences splits text after each run of terminal punctuation that is
// followed by whitespace or the end of the text. Punctuation and the
// whitespace that follows it stay with the sentence, so concatenating the
// result gives back the text without its leading whitespace.
func sentences(text string) []string {
	var out []string
	runes := []rune(strings.TrimLeftFunc(text, unicode.IsSpace))

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		j := i + 1
		for j < len(runes) && isTerminal(runes[j]) {
			j++
		}
		if j < len(runes) && !unicode.IsSpace(runes[j]) {
			// Decimal point, abbreviation or URL.
			i = j - 1
			continue
		}
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}

		out = append(out, string(runes[start:j]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}

	return out
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
