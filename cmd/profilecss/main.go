// Package main provides the profilecss CLI tool for building the profile widget stylesheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/profilecss"
)

// exitError ends the process with a status after the report has been printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}

	useColors := profilecss.ShouldUseColors(getBoolWithFallback("color", false))
	fmt.Fprintln(os.Stderr, profilecss.RenderError("Error: "+err.Error(), useColors))
	os.Exit(1)
}
