package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a word occurrence in a text together with its byte offsets in the
// original string. The offset table is what lets the extractor map a
// token-level answer span back to a verbatim substring of the context.
type Token struct {
	Text  string // original surface form
	Start int    // byte offset of the first byte
	End   int    // byte offset one past the last byte
}

// Norm returns the lowercased form used for matching.
func (t Token) Norm() string {
	return strings.ToLower(t.Text)
}

// Tokenize splits text into word tokens. A token is a maximal run of letters,
// digits and in-word apostrophes; everything else is a separator. Offsets
// always index into the exact string passed in.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) || (r == '\'' && start >= 0) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
