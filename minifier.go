package profilecss

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
)

const cssMediaType = "text/css"

// Engine turns CSS text into minified CSS text.
type Engine interface {
	Minify(css string) (string, error)
}

// MinificationError is returned when the engine rejects the aggregated stylesheet.
type MinificationError struct {
	Message string
	Line    int // 1-based, 0 when the engine reported no position
	Column  int
	Err     error
}

func (e *MinificationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("minification failed at %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return "minification failed: " + e.Message
}

func (e *MinificationError) Unwrap() error {
	return e.Err
}

// newMinificationError extracts the position from tdewolff parse errors when present.
func newMinificationError(err error) *MinificationError {
	merr := &MinificationError{Message: err.Error(), Err: err}
	var perr *parse.Error
	if errors.As(err, &perr) {
		merr.Message = perr.Message
		merr.Line = perr.Line
		merr.Column = perr.Column
	}
	return merr
}

// tdewolffEngine minifies with github.com/tdewolff/minify. It never merges or
// drops vendor-prefixed declarations.
type tdewolffEngine struct {
	m *minify.M
}

// NewEngine creates the default minification engine.
func NewEngine(config MinifierConfig) Engine {
	m := minify.New()
	m.Add(cssMediaType, &css.Minifier{Precision: config.Precision})
	return &tdewolffEngine{m: m}
}

func (e *tdewolffEngine) Minify(text string) (string, error) {
	return e.m.String(cssMediaType, text)
}

// Minifier runs the engine and then repairs what it is known to strip.
type Minifier struct {
	engine Engine
	config MinifierConfig
}

// NewMinifier creates a minification adapter. A nil engine selects NewEngine(config).
func NewMinifier(engine Engine, config MinifierConfig) *Minifier {
	if engine == nil {
		engine = NewEngine(config)
	}
	return &Minifier{engine: engine, config: config}
}

// Minify minifies the aggregated stylesheet. Engine failures are returned as
// *MinificationError and no output is produced.
func (m *Minifier) Minify(in AggregatedStylesheet) (TransformResult, error) {
	text := in.Text
	if m.config.Enabled {
		out, err := m.engine.Minify(text)
		if err != nil {
			return TransformResult{}, newMinificationError(err)
		}
		text = out
	}

	// Nothing to restore a fallback for when prefixes may be rewritten.
	restored := 0
	if m.config.Preserves(FeatureVendorPrefixes) {
		text, restored = RestoreUnprefixed(text)
	}

	return TransformResult{
		Text:      text,
		SizeChars: utf8.RuneCountInString(text),
		Restored:  restored,
	}, nil
}
