package profilecss

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Pipeline runs a build: read, aggregate, minify, validate, publish.
// Zero-value fields fall back to the local filesystem, the default engine and
// FilePublisher.
type Pipeline struct {
	Sources   fs.FS // Source tree; nil means os.DirFS(config.Root)
	Engine    Engine
	Publisher Publisher
	Logger    *zap.Logger
}

// NewPipeline creates a pipeline on the local filesystem
func NewPipeline(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		Publisher: FilePublisher{},
		Logger:    log,
	}
}

// Run is the main entry point.
//
// Source read, minification and publish failures are returned as errors and leave
// the output untouched. Validation issues do not stop the build: the stylesheet is
// published and the returned report carries the issues, with Failed() telling
// whether any of them is an error.
func (p *Pipeline) Run(config Config) (*BuildReport, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fsys := p.Sources
	if fsys == nil {
		fsys = os.DirFS(rootDir(config.Root))
	}

	// 1. Read sources
	docs, err := ReadSources(fsys, config.Sources, config.Excludes)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		log.Debug("Read source", zap.Int("order", doc.Order), zap.String("path", doc.Path), zap.Int("bytes", len(doc.Text)))
	}

	// 2. Aggregate
	aggregated := Aggregate(docs)
	log.Debug("Aggregated sources", zap.Int("sources", len(docs)), zap.Int("chars", aggregated.SizeChars))

	// 3. Minify and repair
	minifier := NewMinifier(p.Engine, config.Minifier)
	result, err := minifier.Minify(aggregated)
	if err != nil {
		return nil, err
	}
	log.Debug("Minified stylesheet", zap.Int("chars", result.SizeChars), zap.Int("restored", result.Restored))

	// 4. Validate
	issues := Validate(result.Text, config.Rules)
	log.Debug("Validated stylesheet", zap.Int("issues", len(issues)))

	// 5. Publish
	outputPath := OutputFile(config)
	publisher := p.Publisher
	if publisher == nil {
		publisher = FilePublisher{}
	}
	if err := publisher.Publish(outputPath, result.Text); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	log.Debug("Published stylesheet", zap.String("path", outputPath))

	return &BuildReport{
		SourceCount:             len(docs),
		OriginalSizeChars:       aggregated.SizeChars,
		FinalSizeChars:          result.SizeChars,
		CompressionRatioPercent: CompressionRatio(aggregated.SizeChars, result.SizeChars),
		Restored:                result.Restored,
		Issues:                  issues,
		OutputPath:              outputPath,
		MaxOutputChars:          config.MaxOutputChars,
		SizeCeilingExceeded:     config.MaxOutputChars > 0 && result.SizeChars > config.MaxOutputChars,
	}, nil
}

// CompressionRatio returns how much smaller final is than original, in percent,
// rounded to two decimals. An empty original yields 0.
func CompressionRatio(original, final int) float64 {
	if original <= 0 {
		return 0
	}
	ratio := (1 - float64(final)/float64(original)) * 100
	return math.Round(ratio*100) / 100
}

func rootDir(root string) string {
	if root == "" {
		return "."
	}
	return root
}

// OutputFile returns where the stylesheet is published: OutputPath relative to Root.
func OutputFile(config Config) string {
	output := config.OutputPath
	if output == "" {
		output = DefaultOutputPath
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(rootDir(config.Root), output)
}
