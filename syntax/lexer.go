package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokKind uint8

const (
	tokEOF    tokKind = iota
	tokIdent          // name, _
	tokNumber         // -1.5e3
	tokString         // "…", value is unescaped
	tokSymbol         // :name, value without colon
	tokPunct          // ( ) [ ] , . ^ % [| |] {| |} |>
)

var tokNames = [...]string{"end of input", "identifier", "number", "string", "symbol", "punctuation"}

func (k tokKind) String() string {
	return tokNames[k]
}

type token struct {
	kind tokKind
	val  string
	pos  int
}

func (t token) is(kind tokKind, val string) bool {
	return t.kind == kind && t.val == val
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string"
	}
	return "'" + t.val + "'"
}

// lexer splits source text into tokens, with one token lookahead.
type lexer struct {
	text   string
	pos    int
	buffer *token
}

func newLexer(text string) *lexer {
	return &lexer{text: text}
}

func (l *lexer) peek() token {
	if l.buffer == nil {
		tok := l.nextToken()
		l.buffer = &tok
	}
	return *l.buffer
}

func (l *lexer) next() token {
	if l.buffer != nil {
		tok := *l.buffer
		l.buffer = nil
		return tok
	}
	return l.nextToken()
}

// expect consumes the next token, which has to be the punctuation p.
func (l *lexer) expect(p string) token {
	tok := l.next()
	if !tok.is(tokPunct, p) {
		fail(tok.pos, "expected '%s', found %s", p, tok)
	}
	return tok
}

func (l *lexer) peekRune() (rune, int) {
	if l.pos >= len(l.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.text[l.pos:])
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.text) {
		r, w := l.peekRune()
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += w
	}
}

var digraphs = []string{"[|", "|]", "{|", "|}", "|>"}

func (l *lexer) nextToken() token {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.text) {
		return token{kind: tokEOF, pos: start}
	}
	for _, d := range digraphs {
		if strings.HasPrefix(l.text[l.pos:], d) {
			l.pos += len(d)
			return token{kind: tokPunct, val: d, pos: start}
		}
	}
	ch := l.text[l.pos]
	switch {
	case strings.IndexByte("()[],.^%", ch) >= 0:
		l.pos++
		return token{kind: tokPunct, val: string(ch), pos: start}
	case ch == '"':
		return l.stringToken()
	case ch == ':':
		l.pos++
		name := l.word()
		if name == "" {
			fail(start, "symbol name missing after ':'")
		}
		return token{kind: tokSymbol, val: name, pos: start}
	case isDigit(ch) || (ch == '-' && l.pos+1 < len(l.text) && (isDigit(l.text[l.pos+1]) || l.text[l.pos+1] == '.')):
		return l.numberToken()
	}
	if name := l.word(); name != "" {
		return token{kind: tokIdent, val: name, pos: start}
	}
	r, _ := l.peekRune()
	fail(start, "unexpected character %q", r)
	return token{}
}

// word scans an identifier: a letter or underscore, followed by letters,
// digits and underscores.
func (l *lexer) word() string {
	start := l.pos
	for l.pos < len(l.text) {
		r, w := l.peekRune()
		if !(unicode.IsLetter(r) || r == '_' || (l.pos > start && unicode.IsDigit(r))) {
			break
		}
		l.pos += w
	}
	return l.text[start:l.pos]
}

// numberToken scans -?digits(.digits)?([eE][+-]?digits)?. A dot not followed
// by a digit ends the number, so 5.and(…) lexes as 5 . and ( ….
func (l *lexer) numberToken() token {
	start := l.pos
	if l.text[l.pos] == '-' {
		l.pos++
	}
	l.digits()
	if l.pos+1 < len(l.text) && l.text[l.pos] == '.' && isDigit(l.text[l.pos+1]) {
		l.pos++
		l.digits()
	}
	if l.pos < len(l.text) && (l.text[l.pos] == 'e' || l.text[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.text) && (l.text[l.pos] == '+' || l.text[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.text) || !isDigit(l.text[l.pos]) {
			l.pos = mark
		} else {
			l.digits()
		}
	}
	if l.pos == start+1 && l.text[start] == '-' {
		fail(start, "malformed number")
	}
	return token{kind: tokNumber, val: l.text[start:l.pos], pos: start}
}

func (l *lexer) digits() {
	for l.pos < len(l.text) && isDigit(l.text[l.pos]) {
		l.pos++
	}
}

func (l *lexer) stringToken() token {
	start := l.pos
	l.pos++ // opening quote
	b := strings.Builder{}
	for {
		if l.pos >= len(l.text) {
			fail(start, "unterminated string")
		}
		r, w := l.peekRune()
		if r == utf8.RuneError && w == 1 {
			fail(l.pos, "invalid UTF-8 in string")
		}
		l.pos += w
		switch r {
		case '"':
			return token{kind: tokString, val: b.String(), pos: start}
		case '\\':
			if l.pos >= len(l.text) {
				fail(start, "unterminated string")
			}
			esc := l.text[l.pos]
			l.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '0':
				b.WriteByte(0)
			case '"':
				b.WriteByte('"')
			default:
				fail(l.pos-2, "unknown escape sequence \\%c", esc)
			}
		default:
			b.WriteRune(r)
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
