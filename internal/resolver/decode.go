package resolver

import "strings"

// The source table stores some structured cells as python-style literals, e.g.
// "['Price', 'Support']" or "{'customer': 'Hindi', 'agent': 'Hindi'}". The
// decoders below accept exactly that grammar: bracketed, comma-separated,
// single- or double-quoted strings with backslash escapes. Anything else
// reports ok=false and the field stays absent.

// decodeListLiteral parses a list literal of quoted strings.
func decodeListLiteral(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	sc := &literalScanner{src: s[1 : len(s)-1]}
	sc.skipSpace()
	if sc.done() {
		return []string{}, true
	}
	var items []string
	for {
		item, ok := sc.quotedString()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		sc.skipSpace()
		if sc.done() {
			return items, true
		}
		if !sc.consume(',') {
			return nil, false
		}
		sc.skipSpace()
	}
}

// decodeDictLiteral parses a dict literal with quoted string keys and values.
func decodeDictLiteral(s string) (map[string]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	sc := &literalScanner{src: s[1 : len(s)-1]}
	sc.skipSpace()
	out := map[string]string{}
	if sc.done() {
		return out, true
	}
	for {
		key, ok := sc.quotedString()
		if !ok {
			return nil, false
		}
		sc.skipSpace()
		if !sc.consume(':') {
			return nil, false
		}
		sc.skipSpace()
		val, ok := sc.quotedString()
		if !ok {
			return nil, false
		}
		out[key] = val
		sc.skipSpace()
		if sc.done() {
			return out, true
		}
		if !sc.consume(',') {
			return nil, false
		}
		sc.skipSpace()
	}
}

type literalScanner struct {
	src string
	pos int
}

func (sc *literalScanner) done() bool {
	return sc.pos >= len(sc.src)
}

func (sc *literalScanner) skipSpace() {
	for !sc.done() && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *literalScanner) consume(ch byte) bool {
	if sc.done() || sc.src[sc.pos] != ch {
		return false
	}
	sc.pos++
	return true
}

// quotedString reads a single- or double-quoted string at the cursor.
func (sc *literalScanner) quotedString() (string, bool) {
	if sc.done() {
		return "", false
	}
	quote := sc.src[sc.pos]
	if quote != '\'' && quote != '"' {
		return "", false
	}
	sc.pos++
	var b strings.Builder
	for !sc.done() {
		c := sc.src[sc.pos]
		switch {
		case c == '\\' && sc.pos+1 < len(sc.src):
			b.WriteByte(sc.src[sc.pos+1])
			sc.pos += 2
		case c == quote:
			sc.pos++
			return b.String(), true
		default:
			b.WriteByte(c)
			sc.pos++
		}
	}
	return "", false // unterminated
}
