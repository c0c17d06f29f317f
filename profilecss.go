// Package profilecss builds the stylesheet for the embedded profile widget.
//
// The widget is rendered inside a host page the widget does not control, so the
// published stylesheet must be small and must never reach outside the widget.
// A build runs four stages in order and never loops back:
//
//	sources -> Aggregate -> Minifier.Minify -> Validate -> Publisher.Publish
//
// # Building
//
//	config := profilecss.DefaultConfig()
//	pipeline := profilecss.NewPipeline(logger)
//	report, err := pipeline.Run(config)
//	if err != nil {
//		// *SourceReadError, *MinificationError or a publish error; nothing was written
//	}
//	if report.Failed() {
//		// at least one error-severity ValidationIssue
//	}
//
// # Validation
//
// Validate runs the host-safety checks on any CSS text:
//
//	issues := profilecss.Validate(css, profilecss.DefaultRules())
//
// # CLI Tool
//
//	go install github.com/yacobolo/profilecss/cmd/profilecss@latest
package profilecss
