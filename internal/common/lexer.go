package common

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
	"unicode/utf8"

	"github.com/graph-gophers/graphql-editor/errors"
)

type syntaxError string

type Lexer struct {
	sc   *scanner.Scanner
	next rune
	loc  errors.Location // position of the next token
}

type Ident struct {
	Name string
	Loc  errors.Location
}

func NewLexer(s string) *Lexer {
	sc := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	sc.Init(strings.NewReader(s))
	l := &Lexer{sc: sc}
	sc.Error = l.scanError
	return l
}

// scanError reports errors found by text/scanner itself. Escape sequences are
// checked again with GraphQL rules when the string is decoded, so Go's opinion
// on them is ignored.
func (l *Lexer) scanError(_ *scanner.Scanner, msg string) {
	if msg == "invalid char escape" {
		return
	}
	l.SyntaxError(msg)
}

func (l *Lexer) CatchSyntaxError(f func()) (errRes *errors.ParseError) {
	defer func() {
		if err := recover(); err != nil {
			if err, ok := err.(syntaxError); ok {
				errRes = errors.Errorf("syntax error: %s", err)
				errRes.Locations = []errors.Location{l.Location()}
				return
			}
			panic(err)
		}
	}()

	f()
	return
}

func (l *Lexer) Peek() rune {
	return l.next
}

// PeekIdent returns the text of the next token when it is a name, "" otherwise.
func (l *Lexer) PeekIdent() string {
	if l.next != scanner.Ident {
		return ""
	}
	return l.sc.TokenText()
}

// ConsumeWhitespace consumes whitespace and tokens equivalent to whitespace (e.g. commas and comments).
func (l *Lexer) ConsumeWhitespace() {
	for {
		l.next = l.sc.Scan()

		if l.next == ',' {
			// Commas are insignificant.
			//
			// http://spec.graphql.org/draft/#sec-Insignificant-Commas
			continue
		}

		if l.next == '#' {
			l.consumeComment()
			continue
		}

		break
	}
	l.loc = errors.Location{Line: l.sc.Line, Column: l.sc.Column}
}

func (l *Lexer) ConsumeIdent() string {
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return name
}

func (l *Lexer) ConsumeIdentWithLoc() Ident {
	loc := l.Location()
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return Ident{name, loc}
}

func (l *Lexer) ConsumeKeyword(keyword string) {
	if l.next != scanner.Ident || l.sc.TokenText() != keyword {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %q", l.sc.TokenText(), keyword))
	}
	l.ConsumeWhitespace()
}

func (l *Lexer) ConsumeToken(expected rune) {
	if l.next != expected {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %s", l.sc.TokenText(), scanner.TokenString(expected)))
	}
	l.ConsumeWhitespace()
}

// ConsumeLiteral consumes an Int, Float or name token and returns its class and text.
func (l *Lexer) ConsumeLiteral() (rune, string) {
	typ, text := l.next, l.sc.TokenText()
	l.ConsumeWhitespace()
	return typ, text
}

// ConsumeString consumes a string or block string token and returns its value.
func (l *Lexer) ConsumeString() string {
	if l.next != scanner.String {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting String", l.sc.TokenText()))
	}
	var value string
	if text := l.sc.TokenText(); text == `""` && l.sc.Peek() == '"' {
		// A block string scans as an empty string followed by an open quote.
		l.sc.Next()
		value = l.consumeBlockString()
	} else {
		value = l.unquote(text)
	}
	l.ConsumeWhitespace()
	return value
}

// Description consumes an optional description preceding a definition.
//
// http://spec.graphql.org/draft/#sec-Descriptions
func (l *Lexer) Description() string {
	if l.next != scanner.String {
		return ""
	}
	return l.ConsumeString()
}

func (l *Lexer) SyntaxError(message string) {
	panic(syntaxError(message))
}

// Location returns the position of the next token. text/scanner forgets the
// token position once raw characters are read, so it is recorded on each scan.
func (l *Lexer) Location() errors.Location {
	return l.loc
}

func (l *Lexer) consumeBlockString() string {
	var raw strings.Builder
	for {
		r := l.sc.Next()
		switch r {
		case scanner.EOF:
			l.SyntaxError("unterminated block string")
		case '\\':
			if l.sc.Peek() == '"' {
				// \""" is the only escape sequence of block strings.
				var quotes string
				for l.sc.Peek() == '"' && len(quotes) < 3 {
					quotes += string(l.sc.Next())
				}
				if quotes != `"""` {
					raw.WriteByte('\\')
				}
				raw.WriteString(quotes)
				continue
			}
		case '"':
			if l.sc.Peek() == '"' {
				l.sc.Next()
				if l.sc.Peek() == '"' {
					l.sc.Next()
					return BlockStringValue(raw.String())
				}
				raw.WriteString(`""`)
				continue
			}
		}
		raw.WriteRune(r)
	}
}

// BlockStringValue strips the common indentation and the leading and trailing
// blank lines of a raw block string.
//
// http://spec.graphql.org/draft/#BlockStringValue()
func BlockStringValue(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	lines := strings.Split(raw, "\n")

	common := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if common == -1 || indent < common {
			common = indent
		}
	}
	if common > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= common {
				lines[i] = lines[i][common:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && leadingWhitespace(lines[0]) == len(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && leadingWhitespace(lines[len(lines)-1]) == len(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// unquote decodes a single-line string token using GraphQL escape rules.
//
// http://spec.graphql.org/draft/#EscapedCharacter
func (l *Lexer) unquote(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		l.SyntaxError(fmt.Sprintf("invalid string %s", text))
	}
	s := text[1 : len(text)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			l.SyntaxError("invalid escape at end of string")
		}
		switch s[i] {
		case '"', '\\', '/':
			b.WriteByte(s[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 > len(s) {
				l.SyntaxError("invalid unicode escape")
			}
			code, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				l.SyntaxError(fmt.Sprintf("invalid unicode escape \\u%s", s[i+1:i+5]))
			}
			r := rune(code)
			if !utf8.ValidRune(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
			i += 4
		default:
			l.SyntaxError(fmt.Sprintf("invalid escape sequence \\%c", s[i]))
		}
	}
	return b.String()
}

// consumeComment consumes all characters from `#` to the first encountered line terminator.
func (l *Lexer) consumeComment() {
	if l.next != '#' {
		panic("consumeComment used in wrong context")
	}
	for {
		next := l.sc.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}
	}
}
