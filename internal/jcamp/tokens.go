package jcamp

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenValue tokenKind = iota
	tokenDiff
	tokenDup
	tokenMissing
	tokenInvalid
)

type token struct {
	kind tokenKind
	text string
}

// tokenizeLine splits one data line into value, difference, duplicate and
// missing tokens. With asdf false the line is read as AFFN/PAC: E/e act as
// exponent markers and any other letter is invalid. With asdf true letters
// are read through the SQZ, DIF and DUP alphabets.
func tokenizeLine(line string, asdf bool) []token {
	var (
		tokens []token
		cur    strings.Builder
		kind   tokenKind
		open   bool
	)
	flush := func() {
		if open {
			tokens = append(tokens, token{kind: kind, text: cur.String()})
		}
		cur.Reset()
		open = false
	}
	start := func(k tokenKind, b ...byte) {
		flush()
		kind = k
		open = true
		cur.Write(b)
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case isSeparator(c):
			flush()
		case isDigit(c) || c == '.':
			if !open || kind == tokenMissing {
				start(tokenValue)
			}
			cur.WriteByte(c)
		case c == '+' || c == '-':
			start(tokenValue, c)
		case c == '?':
			start(tokenMissing, c)
		case !asdf && (c == 'E' || c == 'e') && open && kind == tokenValue && isExponent(line, i):
			cur.WriteByte('e')
			if line[i+1] == '+' || line[i+1] == '-' {
				i++
				cur.WriteByte(line[i])
			}
		default:
			if !asdf {
				start(tokenInvalid, c)
				for i+1 < len(line) && !isSeparator(line[i+1]) {
					i++
					cur.WriteByte(line[i])
				}
				flush()
				continue
			}
			if d, neg, ok := sqzDigit(c); ok {
				start(tokenValue, sign(neg), d)
				continue
			}
			if d, neg, ok := difDigit(c); ok {
				start(tokenDiff, sign(neg), d)
				continue
			}
			if d, ok := dupDigit(c); ok {
				start(tokenDup, d)
				continue
			}
			// swallow bytes up to the next token start so one bad byte yields
			// one bad token
			start(tokenInvalid, c)
			for i+1 < len(line) && !startsASDFToken(line[i+1]) {
				i++
				cur.WriteByte(line[i])
			}
			flush()
		}
	}
	flush()
	return tokens
}

func startsASDFToken(c byte) bool {
	if isSeparator(c) || isDigit(c) || c == '.' || c == '+' || c == '-' || c == '?' {
		return true
	}
	if _, _, ok := sqzDigit(c); ok {
		return true
	}
	if _, _, ok := difDigit(c); ok {
		return true
	}
	_, ok := dupDigit(c)
	return ok
}

func sign(neg bool) byte {
	if neg {
		return '-'
	}
	return '+'
}

func (t token) float() (float64, bool) {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (t token) count() (int, bool) {
	n, err := strconv.Atoi(t.text)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
