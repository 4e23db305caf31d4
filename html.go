package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const csvSuffix = ".csv"

// listCSVNames fetches pageURL and returns the base names of every anchor
// pointing at a CSV file. A non-200 answer is logged and yields an empty
// listing; transport and read errors are returned.
func listCSVNames(client *http.Client, pageURL string) ([]string, error) {
	slog.Info(fmt.Sprintf("Getting CSV listing from %s", pageURL))

	body, err := getURL(client, pageURL)
	if reqErr, ok := isRequestFailed(err); ok {
		slog.Error(fmt.Sprintf("Failed to list CSV files from %s. Status code: %d", pageURL, reqErr.StatusCode))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pageURL, err)
	}
	return extractCSVNames(string(body)), nil
}

func extractCSVNames(htmlContent string) []string {
	fileNames := []string{}

	tokenizer := html.NewTokenizer(strings.NewReader(htmlContent))

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			return fileNames
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			// a repeated href attribute overrides the earlier ones
			href, found := "", false
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					href, found = attr.Val, true
				}
			}
			if !found || !strings.HasSuffix(href, csvSuffix) {
				continue
			}
			if fileName := extractFileName(href); fileName != "" {
				fileNames = append(fileNames, fileName)
			}
		}
	}
}
