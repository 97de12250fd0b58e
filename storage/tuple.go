package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gpu-benchmark-scraper/models"
)

// ErrMalformedRecord is returned for a line that is not a three-string tuple.
var ErrMalformedRecord = errors.New("malformed record")

// EncodeRecord renders a record as a parenthesised triple of quoted strings,
// e.g. ('GeForce RTX 3080', '17435', '699').
func EncodeRecord(r models.GpuRecord) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(quote(r.Name))
	b.WriteString(", ")
	b.WriteString(quote(r.Benchmark))
	b.WriteString(", ")
	b.WriteString(quote(r.Price))
	b.WriteByte(')')
	return b.String()
}

// quote uses single quotes unless the value holds a single quote and no
// double quote.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case !unicode.IsPrint(r):
			switch {
			case r <= 0xff:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}

// ParseRecord reads back a line written by EncodeRecord. It accepts only a
// tuple of exactly three string literals (an optional trailing comma is
// allowed) and never evaluates anything else.
func ParseRecord(line string) (models.GpuRecord, error) {
	p := &tupleParser{s: line}

	p.skipSpace()
	if err := p.expect('('); err != nil {
		return models.GpuRecord{}, err
	}

	var fields [3]string
	for i := range fields {
		p.skipSpace()
		s, err := p.str()
		if err != nil {
			return models.GpuRecord{}, err
		}
		fields[i] = s

		p.skipSpace()
		if i < len(fields)-1 {
			if err := p.expect(','); err != nil {
				return models.GpuRecord{}, err
			}
		}
	}

	if p.peek() == ',' {
		p.pos++
		p.skipSpace()
	}
	if err := p.expect(')'); err != nil {
		return models.GpuRecord{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return models.GpuRecord{}, p.errorf("unexpected trailing input %q", p.s[p.pos:])
	}

	return models.GpuRecord{Name: fields[0], Benchmark: fields[1], Price: fields[2]}, nil
}

type tupleParser struct {
	s   string
	pos int
}

func (p *tupleParser) eof() bool { return p.pos >= len(p.s) }

func (p *tupleParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *tupleParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: column %d: %s", ErrMalformedRecord, p.pos+1, fmt.Sprintf(format, args...))
}

func (p *tupleParser) skipSpace() {
	for !p.eof() {
		switch p.s[p.pos] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *tupleParser) expect(c byte) error {
	if p.peek() != c {
		if p.eof() {
			return p.errorf("expected %q, found end of line", c)
		}
		return p.errorf("expected %q, found %q", c, p.s[p.pos])
	}
	p.pos++
	return nil
}

func (p *tupleParser) str() (string, error) {
	q := p.peek()
	if q != '\'' && q != '"' {
		if p.eof() {
			return "", p.errorf("expected string, found end of line")
		}
		return "", p.errorf("expected string, found %q", q)
	}
	p.pos++

	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.s[p.pos]
		switch {
		case c == q:
			p.pos++
			return b.String(), nil
		case c == '\n':
			return "", p.errorf("newline in string")
		case c == '\\':
			if err := p.escape(&b, q); err != nil {
				return "", err
			}
		default:
			r, size := utf8.DecodeRuneInString(p.s[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *tupleParser) escape(b *strings.Builder, q byte) error {
	p.pos++
	if p.eof() {
		return p.errorf("unterminated escape")
	}
	c := p.s[p.pos]
	p.pos++

	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case 'x':
		return p.hexRune(b, 2)
	case 'u':
		return p.hexRune(b, 4)
	case 'U':
		return p.hexRune(b, 8)
	default:
		// unknown escapes are kept verbatim
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func (p *tupleParser) hexRune(b *strings.Builder, digits int) error {
	if p.pos+digits > len(p.s) {
		return p.errorf("truncated \\x/\\u escape")
	}
	n, err := strconv.ParseUint(p.s[p.pos:p.pos+digits], 16, 32)
	if err != nil || n > unicode.MaxRune {
		return p.errorf("invalid escape %q", p.s[p.pos:p.pos+digits])
	}
	p.pos += digits
	b.WriteRune(rune(n))
	return nil
}
