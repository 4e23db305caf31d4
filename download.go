package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/transform"
)

type downloadSummary struct {
	Written []string
	Failed  []*RequestFailedError
}

// downloadAll downloads every name under src.SubPath into destinationDir, in
// order. Request failures are logged and skipped; any other error stops the
// batch.
func downloadAll(client *http.Client, src Source, names []string, destinationDir string, createDirs bool, bar *progressbar.ProgressBar) (downloadSummary, error) {
	var summary downloadSummary

	for _, name := range names {
		relativeRemotePath := src.remotePath(name)

		outputPath, err := downloadOne(client, src, destinationDir, relativeRemotePath, createDirs)
		if reqErr, ok := isRequestFailed(err); ok {
			slog.Error(fmt.Sprintf("Failed to download %s. Status code: %d", reqErr.Item, reqErr.StatusCode))
			summary.Failed = append(summary.Failed, reqErr)
		} else if err != nil {
			return summary, fmt.Errorf("downloading %s: %w", relativeRemotePath, err)
		} else {
			summary.Written = append(summary.Written, outputPath)
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	return summary, nil
}

// downloadOne fetches relativeRemotePath from src and writes it to
// destinationDir/relativeRemotePath, decoding and re-encoding the text with
// src.Encoding. Nothing is written unless the server answers 200 OK.
func downloadOne(client *http.Client, src Source, destinationDir, relativeRemotePath string, createDirs bool) (string, error) {
	enc, err := lookupEncoding(src.Encoding)
	if err != nil {
		return "", err
	}

	url := src.rawURL(relativeRemotePath)
	slog.Debug(fmt.Sprintf("Downloading %s", url))

	body, err := getURL(client, url)
	if err != nil {
		if reqErr, ok := isRequestFailed(err); ok {
			reqErr.Item = relativeRemotePath
		}
		return "", err
	}

	text, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decoding %s as %s: %w", relativeRemotePath, src.Encoding, err)
	}

	outputPath := filepath.Join(destinationDir, filepath.FromSlash(relativeRemotePath))
	if createDirs {
		if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	slog.Info(fmt.Sprintf("Writing to %s", outputPath))

	// Create or truncate the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := transform.NewWriter(file, enc.NewEncoder())
	if _, err := writer.Write(text); err != nil {
		return "", fmt.Errorf("encoding %s as %s: %w", outputPath, src.Encoding, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("encoding %s as %s: %w", outputPath, src.Encoding, err)
	}

	return outputPath, file.Close()
}
