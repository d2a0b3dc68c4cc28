// Package segment splits long text into chunks the provider accepts in one request.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/translate-service/internal/domain/model"
)

// DefaultMaxChars is the provider-safe chunk size in runes.
const DefaultMaxChars = 4500

// sentencePattern matches a run of text up to and including its terminators
// and any whitespace that follows them.
var sentencePattern = regexp.MustCompile(`(?s).*?[.!?]+(?:\s+|$)`)

// Sentences splits text at terminal punctuation. The returned pieces
// concatenate exactly to text; trailing text without a terminator is the last piece.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}
	locs := sentencePattern.FindAllStringIndex(text, -1)
	sentences := make([]string, 0, len(locs)+1)
	end := 0
	for _, loc := range locs {
		if loc[1] == loc[0] {
			continue
		}
		sentences = append(sentences, text[loc[0]:loc[1]])
		end = loc[1]
	}
	if end < len(text) {
		sentences = append(sentences, text[end:])
	}
	return sentences
}

// Segment packs sentences greedily into chunks of at most maxLen runes.
// Packed chunks are trimmed and blank ones are dropped. A sentence longer
// than maxLen after trimming its outer whitespace is cut into maxLen-rune
// pieces that are kept as is, so they concatenate exactly to that sentence.
func Segment(text string, maxLen int) []model.Chunk {
	if maxLen <= 0 {
		maxLen = DefaultMaxChars
	}

	var (
		chunks []model.Chunk
		buf    strings.Builder
		bufLen int
	)
	emit := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		chunks = append(chunks, model.Chunk{Index: len(chunks), Text: s})
	}
	flush := func() {
		emit(buf.String())
		buf.Reset()
		bufLen = 0
	}

	for _, sentence := range Sentences(text) {
		n := utf8.RuneCountInString(sentence)
		if n > maxLen {
			sentence = strings.TrimSpace(sentence)
			n = utf8.RuneCountInString(sentence)
		}
		if n > maxLen {
			flush()
			for _, piece := range sliceRunes(sentence, maxLen) {
				chunks = append(chunks, model.Chunk{Index: len(chunks), Text: piece})
			}
			continue
		}
		if bufLen+n > maxLen {
			flush()
		}
		buf.WriteString(sentence)
		bufLen += n
	}
	flush()

	return chunks
}

// SliceByLength cuts text into consecutive pieces of size runes without looking
// at sentence boundaries. The pieces concatenate exactly to text.
func SliceByLength(text string, size int) []model.Chunk {
	if size <= 0 {
		size = DefaultMaxChars
	}
	pieces := sliceRunes(text, size)
	chunks := make([]model.Chunk, len(pieces))
	for i, p := range pieces {
		chunks[i] = model.Chunk{Index: i, Text: p}
	}
	return chunks
}

func sliceRunes(s string, size int) []string {
	if s == "" {
		return nil
	}
	var out []string
	start, count := 0, 0
	for i := range s {
		if count == size {
			out = append(out, s[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(out, s[start:])
}
