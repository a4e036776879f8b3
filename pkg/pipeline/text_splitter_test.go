package pipeline

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	qt "github.com/frankban/quicktest"
)

// paragraph returns a paragraph of exactly n characters made of short
// sentences.
func paragraph(n int) string {
	const sentence = "Lorem ipsum dolor sit amet. "
	s := strings.Repeat(sentence, n/len(sentence)+1)[:n-1]
	if strings.HasSuffix(s, " ") {
		s = s[:len(s)-1] + "x"
	}
	return s + "."
}

// randomText builds paragraphs of sentences no longer than maxSentence.
func randomText(r *rand.Rand, paragraphs, maxSentence int) string {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	var ps []string
	for range paragraphs {
		var sentences []string
		for range 1 + r.Intn(12) {
			var sb strings.Builder
			for sb.Len() < 10+r.Intn(maxSentence-20) {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(words[r.Intn(len(words))])
			}
			sb.WriteString([]string{".", "!", "?"}[r.Intn(3)])
			sentences = append(sentences, sb.String())
		}
		ps = append(ps, strings.Join(sentences, " "))
	}
	return strings.Join(ps, "\n\n")
}

func TestTextSplitter_Split(t *testing.T) {
	c := qt.New(t)
	ts := NewTextSplitter(2000, 200)

	c.Run("empty input", func(c *qt.C) {
		c.Check(ts.Split(""), qt.HasLen, 0)
		c.Check(ts.Split(" \n\n\t \n "), qt.HasLen, 0)
	})

	c.Run("single paragraph", func(c *qt.C) {
		text := "  A short note about the onboarding process. It has two sentences.\n"
		c.Check(ts.Split(text), qt.DeepEquals, []string{strings.TrimSpace(text)})
	})

	c.Run("three paragraphs totaling 3500 characters", func(c *qt.C) {
		text := strings.Join([]string{paragraph(900), paragraph(900), paragraph(1696)}, "\n\n")
		c.Assert(utf8.RuneCountInString(text), qt.Equals, 3500)

		chunks := ts.Split(text)
		c.Assert(chunks, qt.HasLen, 2)
		c.Check(chunks[0], qt.Equals, paragraph(900)+"\n\n"+paragraph(900))
		c.Check(strings.HasSuffix(chunks[1], paragraph(1696)), qt.IsTrue)

		tail := strings.TrimSpace(lastRunes(chunks[0], 200))
		c.Check(strings.HasPrefix(chunks[1], tail), qt.IsTrue)
	})

	c.Run("long paragraph is split on sentences", func(c *qt.C) {
		chunks := ts.Split(paragraph(5000))
		c.Assert(len(chunks) > 2, qt.IsTrue)
		for i, chunk := range chunks {
			c.Check(utf8.RuneCountInString(chunk) <= 2000, qt.IsTrue, qt.Commentf("chunk %d", i))
			if i < len(chunks)-1 {
				c.Check(strings.HasSuffix(chunk, "."), qt.IsTrue, qt.Commentf("chunk %d", i))
			}
		}
	})

	c.Run("oversized sentence is kept whole", func(c *qt.C) {
		sentence := strings.Repeat("word ", 600) + "end"
		chunks := ts.Split("Intro.\n\n" + sentence)
		c.Assert(chunks, qt.HasLen, 2)
		c.Check(chunks[0], qt.Equals, "Intro.")
		c.Check(chunks[1], qt.Equals, sentence)
	})

	c.Run("overlap is dropped when it would exceed the chunk size", func(c *qt.C) {
		long := strings.Repeat("x", 1899) + "."
		text := strings.Repeat("a", 1900) + "\n\n" + long + " Short tail."

		chunks := ts.Split(text)
		c.Assert(chunks, qt.HasLen, 2)
		c.Check(chunks[0], qt.Equals, strings.Repeat("a", 1900))
		c.Check(chunks[1], qt.Equals, long+" Short tail.")
		for i, chunk := range chunks {
			c.Check(utf8.RuneCountInString(chunk) <= 2000, qt.IsTrue, qt.Commentf("chunk %d", i))
		}
	})

	c.Run("multibyte text is measured in characters", func(c *qt.C) {
		text := strings.Repeat("日本語の文章です。 ", 300)
		for _, chunk := range ts.Split(text) {
			c.Check(utf8.RuneCountInString(chunk) <= 2000, qt.IsTrue)
		}
	})
}

func TestTextSplitter_Properties(t *testing.T) {
	c := qt.New(t)

	for seed := int64(1); seed <= 25; seed++ {
		c.Run(fmt.Sprintf("seed %d", seed), func(c *qt.C) {
			r := rand.New(rand.NewSource(seed))
			size := 300 + r.Intn(1700)
			overlap := r.Intn(size / 4)
			ts := NewTextSplitter(size, overlap)
			text := randomText(r, 1+r.Intn(15), min(300, size/2))

			chunks := ts.Split(text)
			c.Check(ts.Split(text), qt.DeepEquals, chunks, qt.Commentf("deterministic"))
			c.Assert(len(chunks) > 0, qt.IsTrue)

			for i, chunk := range chunks {
				c.Check(utf8.RuneCountInString(chunk) <= size, qt.IsTrue,
					qt.Commentf("chunk %d has %d characters, size %d", i, utf8.RuneCountInString(chunk), size))
				c.Check(chunk, qt.Equals, strings.TrimSpace(chunk))

				if i == 0 || overlap == 0 {
					continue
				}
				tail := strings.TrimSpace(lastRunes(chunks[i-1], overlap))
				c.Check(strings.HasPrefix(chunk, tail), qt.IsTrue, qt.Commentf("overlap between chunks %d and %d", i-1, i))
			}
		})
	}
}

func TestTextSplitter_SplitChunks(t *testing.T) {
	c := qt.New(t)

	text := strings.Join([]string{paragraph(900), paragraph(900), paragraph(1696)}, "\n\n")
	chunks := NewTextSplitter(0, -1).SplitChunks(text)

	c.Assert(chunks, qt.HasLen, 2)
	for i, chunk := range chunks {
		c.Check(chunk.Index, qt.Equals, i)
		c.Check(chunk.Tokens > 0, qt.IsTrue)
	}
}

func TestSentences(t *testing.T) {
	c := qt.New(t)

	got := sentences("  First one. Version 1.2 shipped!  Really?! trailing")
	c.Check(got, qt.DeepEquals, []string{"First one. ", "Version 1.2 shipped!  ", "Really?! ", "trailing"})
	c.Check(strings.Join(got, ""), qt.Equals, "First one. Version 1.2 shipped!  Really?! trailing")
}
