// Package jsoncolor renders JSON text with theme-aware syntax coloring.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/colonyops/pokedex/internal/core/styles"
	"github.com/colonyops/pokedex/internal/jsontree"
)

type tokenKind int

const (
	tokenKey tokenKind = iota
	tokenString
	tokenNumber
	tokenBool
	tokenNull
	tokenBracket
	tokenPunct
	tokenSpace
)

type token struct {
	kind tokenKind
	text string
}

// Colorize pretty-prints JSON with two-space indentation and colors each
// token per the active theme. Invalid JSON is returned as-is.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	var out strings.Builder
	for _, tok := range scan(buf.String()) {
		out.WriteString(render(tok))
	}
	return out.String()
}

// Scalar colors one scalar value for inline display, matching the colors
// Colorize uses for the same value kind.
func Scalar(kind jsontree.Kind, text string) string {
	switch kind {
	case jsontree.KindString:
		return styles.TextSuccessStyle.Render(text)
	case jsontree.KindNumber:
		return styles.TextWarningStyle.Render(text)
	case jsontree.KindBool:
		return styles.TextSecondaryStyle.Render(text)
	case jsontree.KindNull:
		return styles.TextErrorStyle.Render(text)
	default:
		return styles.TextForegroundStyle.Render(text)
	}
}

func render(tok token) string {
	switch tok.kind {
	case tokenKey:
		return styles.TextPrimaryStyle.Render(tok.text)
	case tokenString:
		return styles.TextSuccessStyle.Render(tok.text)
	case tokenNumber:
		return styles.TextWarningStyle.Render(tok.text)
	case tokenBool:
		return styles.TextSecondaryStyle.Render(tok.text)
	case tokenNull:
		return styles.TextErrorStyle.Render(tok.text)
	case tokenBracket:
		return styles.TextForegroundStyle.Render(tok.text)
	case tokenPunct:
		return styles.TextMutedStyle.Render(tok.text)
	default:
		return tok.text
	}
}

// scan splits indented JSON into color tokens. Input is assumed valid since
// it already passed json.Indent.
func scan(raw string) []token {
	var toks []token

	i := 0
	for i < len(raw) {
		switch ch := raw[i]; {
		case ch == '"':
			end := stringEnd(raw, i)
			kind := tokenString
			if isKey(raw, end+1) {
				kind = tokenKey
			}
			toks = append(toks, token{kind: kind, text: raw[i : end+1]})
			i = end + 1

		case ch == '-' || ch >= '0' && ch <= '9':
			end := i + 1
			for end < len(raw) && isNumberByte(raw[end]) {
				end++
			}
			toks = append(toks, token{kind: tokenNumber, text: raw[i:end]})
			i = end

		case strings.HasPrefix(raw[i:], "true"):
			toks = append(toks, token{kind: tokenBool, text: "true"})
			i += len("true")

		case strings.HasPrefix(raw[i:], "false"):
			toks = append(toks, token{kind: tokenBool, text: "false"})
			i += len("false")

		case strings.HasPrefix(raw[i:], "null"):
			toks = append(toks, token{kind: tokenNull, text: "null"})
			i += len("null")

		case ch == '{' || ch == '}' || ch == '[' || ch == ']':
			toks = append(toks, token{kind: tokenBracket, text: string(ch)})
			i++

		case ch == ':' || ch == ',':
			toks = append(toks, token{kind: tokenPunct, text: string(ch)})
			i++

		default:
			toks = append(toks, token{kind: tokenSpace, text: string(ch)})
			i++
		}
	}

	return toks
}

// isKey reports whether the next non-blank byte after a string is a colon.
func isKey(raw string, pos int) bool {
	rest := strings.TrimLeft(raw[pos:], " \t")
	return len(rest) > 0 && rest[0] == ':'
}

func isNumberByte(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}

// stringEnd returns the index of the closing quote for the string opening at
// pos, honoring escapes.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			return i
		}
	}
	return len(s) - 1
}
