package extract

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Destination groups whose content is not document text.
var rtfSkipDestinations = map[string]bool{
	"fonttbl":            true,
	"colortbl":           true,
	"stylesheet":         true,
	"info":               true,
	"pict":               true,
	"object":             true,
	"themedata":          true,
	"colorschememapping": true,
	"latentstyles":       true,
	"datastore":          true,
	"listtable":          true,
	"listoverridetable":  true,
	"rsidtbl":            true,
	"generator":          true,
	"xmlnstbl":           true,
	"header":             true,
	"footer":             true,
}

var rtfSymbols = map[string]rune{
	"emdash":    '—',
	"endash":    '–',
	"bullet":    '•',
	"lquote":    '‘',
	"rquote":    '’',
	"ldblquote": '“',
	"rdblquote": '”',
}

// rtfCodepages maps \ansicpg values to decoders for \'hh escapes.
var rtfCodepages = map[int]encoding.Encoding{
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// RTF strips control words and groups from an RTF file and returns its text.
func RTF(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read rtf: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return parseRTF(data), nil
}

type rtfGroup struct {
	skip bool
	uc   int
}

type rtfParser struct {
	src       []byte
	pos       int
	out       strings.Builder
	pending   []byte
	codepage  encoding.Encoding
	group     rtfGroup
	stack     []rtfGroup
	skipChars int
}

func parseRTF(src []byte) string {
	p := &rtfParser{
		src:      src,
		codepage: charmap.Windows1252,
		group:    rtfGroup{uc: 1},
	}
	p.run()
	return strings.TrimSpace(p.out.String())
}

func (p *rtfParser) run() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '{':
			p.pos++
			p.stack = append(p.stack, p.group)
		case '}':
			p.pos++
			if n := len(p.stack); n > 0 {
				p.group = p.stack[n-1]
				p.stack = p.stack[:n-1]
			}
		case '\\':
			p.control()
		case '\r', '\n':
			p.pos++
		default:
			p.pos++
			if p.consumeSkipped() {
				continue
			}
			if c >= utf8.RuneSelf {
				p.writeRaw(c)
				continue
			}
			p.writeRune(rune(c))
		}
	}
	p.flush()
}

// consumeSkipped drops one character following a \u escape.
func (p *rtfParser) consumeSkipped() bool {
	if p.skipChars > 0 {
		p.skipChars--
		return true
	}
	return false
}

func (p *rtfParser) control() {
	p.pos++
	if p.pos >= len(p.src) {
		return
	}
	c := p.src[p.pos]
	if !isASCIILetter(c) {
		p.pos++
		p.symbol(c)
		return
	}

	start := p.pos
	for p.pos < len(p.src) && isASCIILetter(p.src[p.pos]) {
		p.pos++
	}
	word := string(p.src[start:p.pos])

	param, hasParam := 0, false
	neg := false
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		neg = true
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		param = param*10 + int(p.src[p.pos]-'0')
		hasParam = true
		p.pos++
	}
	if neg {
		param = -param
	}
	if p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}

	switch word {
	case "par", "line", "sect", "page", "row":
		p.writeRune('\n')
	case "tab", "cell":
		p.writeRune('\t')
	case "u":
		if hasParam {
			if param < 0 {
				param += 65536
			}
			p.writeRune(rune(param))
			p.skipChars = p.group.uc
		}
	case "uc":
		if hasParam && param >= 0 {
			p.group.uc = param
		}
	case "ansicpg":
		if enc, ok := rtfCodepages[param]; ok {
			p.flush()
			p.codepage = enc
		}
	default:
		if r, ok := rtfSymbols[word]; ok {
			p.writeRune(r)
			return
		}
		if rtfSkipDestinations[word] {
			p.group.skip = true
		}
	}
}

func (p *rtfParser) symbol(c byte) {
	switch c {
	case '\\', '{', '}':
		if !p.consumeSkipped() {
			p.writeRune(rune(c))
		}
	case '\'':
		if p.pos+2 > len(p.src) {
			p.pos = len(p.src)
			return
		}
		b, err := hex.DecodeString(string(p.src[p.pos : p.pos+2]))
		p.pos += 2
		if err != nil || p.consumeSkipped() {
			return
		}
		p.writeRaw(b[0])
	case '*':
		p.group.skip = true
	case '~':
		p.writeRune(' ')
	case '_':
		p.writeRune('-')
	case '\n', '\r':
		p.writeRune('\n')
	}
}

func (p *rtfParser) writeRaw(b byte) {
	if p.group.skip {
		return
	}
	p.pending = append(p.pending, b)
}

func (p *rtfParser) writeRune(r rune) {
	if p.group.skip {
		return
	}
	p.flush()
	p.out.WriteRune(r)
}

// flush decodes buffered codepage bytes.
func (p *rtfParser) flush() {
	if len(p.pending) == 0 {
		return
	}
	decoded, err := p.codepage.NewDecoder().Bytes(p.pending)
	if err != nil {
		decoded = p.pending
	}
	p.out.Write(decoded)
	p.pending = p.pending[:0]
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
