package pipeline

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// CountTokens estimates the token count of text with the GPT-4 tokenizer.
// When the tokenizer can't be loaded, it falls back to ~4 characters per
// token.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}

	encoderOnce.Do(func() {
		tkm, err := tiktoken.EncodingForModel("gpt-4")
		if err == nil {
			encoder = tkm
		}
	})

	if encoder == nil {
		return max(len(text)/4, 1)
	}
	return len(encoder.Encode(text, nil, nil))
}
