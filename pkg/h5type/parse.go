package h5type

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a type expression and returns its validated descriptor.
//
//	i8 i16 i32 i64 u8 u16 u32 u64 f16 f32 f64 bool c64 c128
//	ascii[N] asciiz[N] unicode[N] vascii vunicode
//	[T; N]  vlen<T>  (T, U, ...)
//	enum<i16>{X = -2, Y as "coord.y" = 3}
//	struct{first: i32, second as "field.second": i64}
//
// Errors wrap [ErrParse] or [ErrInvalidDescriptor].
func Parse(expr string) (Descriptor, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return Descriptor{}, err
	}

	p := &parser{toks: toks}

	d, err := p.parseType()
	if err != nil {
		return Descriptor{}, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		return Descriptor{}, p.errorf(tok, "unexpected %q after type", tok.text)
	}

	err = d.Validate()
	if err != nil {
		return Descriptor{}, err
	}

	return d, nil
}

// MustParse is like [Parse] but panics on error. For package-level fixture
// declarations only.
func MustParse(expr string) Descriptor {
	d, err := Parse(expr)
	if err != nil {
		panic("h5type: MustParse(" + strconv.Quote(expr) + "): " + err.Error())
	}

	return d
}

var scalarTypes = map[string]Descriptor{
	"i8":   TypeInt(1),
	"i16":  TypeInt(2),
	"i32":  TypeInt(4),
	"i64":  TypeInt(8),
	"u8":   TypeUint(1),
	"u16":  TypeUint(2),
	"u32":  TypeUint(4),
	"u64":  TypeUint(8),
	"f16":  TypeFloat(2),
	"f32":  TypeFloat(4),
	"f64":  TypeFloat(8),
	"bool": TypeBool(),
	"c64":  TypeComplex(8),
	"c128": TypeComplex(16),
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokString
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

const punctuation = "[];<>(),{}:="

func tokenize(s string) ([]token, error) {
	var toks []token

	i := 0
	for i < len(s) {
		c := s[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isIdentStart(c):
			start := i
			for i < len(s) && isIdentPart(s[i]) {
				i++
			}

			toks = append(toks, token{kind: tokIdent, text: s[start:i], pos: start})
		case c == '-' || isDigit(c):
			start := i
			i++

			for i < len(s) && isDigit(s[i]) {
				i++
			}

			if s[start:i] == "-" {
				return nil, fmt.Errorf("%w: offset %d: lone '-'", ErrParse, start)
			}

			toks = append(toks, token{kind: tokInt, text: s[start:i], pos: start})
		case c == '"':
			start := i
			i++

			for i < len(s) && s[i] != '"' {
				if s[i] == '\\' {
					i++
				}

				i++
			}

			if i >= len(s) {
				return nil, fmt.Errorf("%w: offset %d: unterminated string", ErrParse, start)
			}

			i++

			text, err := strconv.Unquote(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("%w: offset %d: %w", ErrParse, start, err)
			}

			toks = append(toks, token{kind: tokString, text: text, pos: start})
		case strings.IndexByte(punctuation, c) >= 0:
			toks = append(toks, token{kind: tokPunct, text: string(c), pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: offset %d: unexpected %q", ErrParse, i, c)
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(s)}), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrParse, tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(punct string) error {
	tok := p.next()
	if tok.kind != tokPunct || tok.text != punct {
		return p.errorf(tok, "expected %q, got %q", punct, tok.text)
	}

	return nil
}

func isPunct(tok token, punct string) bool {
	return tok.kind == tokPunct && tok.text == punct
}

func (p *parser) parseType() (Descriptor, error) {
	tok := p.next()

	switch {
	case isPunct(tok, "["):
		elem, err := p.parseType()
		if err != nil {
			return Descriptor{}, err
		}

		err = p.expect(";")
		if err != nil {
			return Descriptor{}, err
		}

		n, err := p.parseCount()
		if err != nil {
			return Descriptor{}, err
		}

		return TypeArray(elem, n), p.expect("]")
	case isPunct(tok, "("):
		return p.parseTuple()
	case tok.kind == tokIdent:
		if d, ok := scalarTypes[tok.text]; ok {
			return d, nil
		}

		return p.parseNamed(tok)
	}

	return Descriptor{}, p.errorf(tok, "expected type, got %q", tok.text)
}

func (p *parser) parseNamed(tok token) (Descriptor, error) {
	switch tok.text {
	case "ascii", "asciiz", "unicode":
		err := p.expect("[")
		if err != nil {
			return Descriptor{}, err
		}

		n, err := p.parseCount()
		if err != nil {
			return Descriptor{}, err
		}

		err = p.expect("]")
		if err != nil {
			return Descriptor{}, err
		}

		switch tok.text {
		case "ascii":
			return TypeFixedASCII(n), nil
		case "asciiz":
			return TypeFixedASCIITerm(n), nil
		default:
			return TypeFixedUnicode(n), nil
		}
	case "vascii":
		return TypeVarLenASCII(), nil
	case "vunicode":
		return TypeVarLenUnicode(), nil
	case "vlen":
		err := p.expect("<")
		if err != nil {
			return Descriptor{}, err
		}

		elem, err := p.parseType()
		if err != nil {
			return Descriptor{}, err
		}

		return TypeVarLenArray(elem), p.expect(">")
	case "enum":
		return p.parseEnum()
	case "struct":
		return p.parseRecord()
	}

	return Descriptor{}, p.errorf(tok, "unknown type %q", tok.text)
}

func (p *parser) parseCount() (int, error) {
	tok := p.next()
	if tok.kind != tokInt {
		return 0, p.errorf(tok, "expected count, got %q", tok.text)
	}

	n, err := strconv.Atoi(tok.text)
	if err != nil || n < 0 {
		return 0, p.errorf(tok, "invalid count %q", tok.text)
	}

	return n, nil
}

// parseRename consumes an optional `as "external"` clause.
func (p *parser) parseRename() (string, error) {
	if tok := p.peek(); tok.kind != tokIdent || tok.text != "as" {
		return "", nil
	}

	p.next()

	tok := p.next()
	if tok.kind != tokString {
		return "", p.errorf(tok, "expected quoted name after 'as', got %q", tok.text)
	}

	return tok.text, nil
}

// parseListEnd consumes the separator after a list item and reports whether
// the list closed with end.
func (p *parser) parseListEnd(end string) (bool, error) {
	tok := p.next()

	switch {
	case isPunct(tok, end):
		return true, nil
	case isPunct(tok, ","):
		return false, nil
	}

	return false, p.errorf(tok, "expected ',' or %q, got %q", end, tok.text)
}

func (p *parser) parseTuple() (Descriptor, error) {
	var elems []Descriptor

	for {
		elem, err := p.parseType()
		if err != nil {
			return Descriptor{}, err
		}

		elems = append(elems, elem)

		done, err := p.parseListEnd(")")
		if err != nil {
			return Descriptor{}, err
		}

		if done {
			return TypeTuple(elems...), nil
		}
	}
}

func (p *parser) parseEnum() (Descriptor, error) {
	err := p.expect("<")
	if err != nil {
		return Descriptor{}, err
	}

	tok := p.next()

	base, ok := scalarTypes[tok.text]
	if tok.kind != tokIdent || !ok || base.Class != ClassInteger {
		return Descriptor{}, p.errorf(tok, "expected integer enum base, got %q", tok.text)
	}

	err = p.expect(">")
	if err != nil {
		return Descriptor{}, err
	}

	err = p.expect("{")
	if err != nil {
		return Descriptor{}, err
	}

	var variants []Variant

	for {
		name := p.next()
		if name.kind != tokIdent {
			return Descriptor{}, p.errorf(name, "expected variant name, got %q", name.text)
		}

		rename, err := p.parseRename()
		if err != nil {
			return Descriptor{}, err
		}

		err = p.expect("=")
		if err != nil {
			return Descriptor{}, err
		}

		valueTok := p.next()
		if valueTok.kind != tokInt {
			return Descriptor{}, p.errorf(valueTok, "expected discriminant, got %q", valueTok.text)
		}

		value, err := strconv.ParseInt(valueTok.text, 10, 64)
		if err != nil {
			return Descriptor{}, p.errorf(valueTok, "invalid discriminant %q", valueTok.text)
		}

		variants = append(variants, Variant{Name: name.text, Rename: rename, Value: value})

		done, err := p.parseListEnd("}")
		if err != nil {
			return Descriptor{}, err
		}

		if done {
			return TypeEnum(base, variants...), nil
		}
	}
}

func (p *parser) parseRecord() (Descriptor, error) {
	err := p.expect("{")
	if err != nil {
		return Descriptor{}, err
	}

	var fields []Field

	for {
		// Tuple-style records name their fields by position.
		name := p.next()
		positional := name.kind == tokInt && name.text[0] != '-'

		if name.kind != tokIdent && !positional {
			return Descriptor{}, p.errorf(name, "expected field name, got %q", name.text)
		}

		rename, err := p.parseRename()
		if err != nil {
			return Descriptor{}, err
		}

		err = p.expect(":")
		if err != nil {
			return Descriptor{}, err
		}

		typ, err := p.parseType()
		if err != nil {
			return Descriptor{}, err
		}

		fields = append(fields, Field{Name: name.text, Rename: rename, Type: typ})

		done, err := p.parseListEnd("}")
		if err != nil {
			return Descriptor{}, err
		}

		if done {
			return TypeRecord(fields...), nil
		}
	}
}
