package main

import (
	"io"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// extractFileName returns the last '/' segment of href, whitespace included.
func extractFileName(href string) string {
	return href[strings.LastIndex(href, "/")+1:]
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return newProgressBarTo(ansi.NewAnsiStdout(), total, description)
}

func newProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
