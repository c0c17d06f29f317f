package profilecss

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CheckSyntax lexes CSS text and reports lexer errors and unbalanced braces.
// It is not a validator for CSS grammar; the minifier is lenient and will
// accept most of what passes here.
func CheckSyntax(text string) error {
	lexer := css.NewLexer(parse.NewInputString(text))

	depth := 0
	offset := 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("syntax: %w", err)
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("syntax: %w", parse.NewError(bytes.NewBufferString(text), offset, "unexpected '}'"))
			}
		}
		offset += len(data)
	}

	if depth > 0 {
		return fmt.Errorf("syntax: %w", parse.NewError(bytes.NewBufferString(text), len(text), "%d unclosed block(s)", depth))
	}
	return nil
}
