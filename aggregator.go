package profilecss

import (
	"strings"
	"unicode/utf8"
)

// sourceSeparator goes between consecutive documents, never before the first or after the last.
const sourceSeparator = "\n"

// Aggregate concatenates sources in the order given.
func Aggregate(docs []SourceDocument) AggregatedStylesheet {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(sourceSeparator)
		}
		b.WriteString(doc.Text)
	}

	text := b.String()
	return AggregatedStylesheet{
		Text:      text,
		SizeChars: utf8.RuneCountInString(text),
	}
}
