package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const defaultPageURL = "https://github.com/bambinos/bambi/tree/main/docs/notebooks/data/facial_feedback"

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("csv-http-fetcher", flag.ContinueOnError)
	pageURL := flags.String("page", defaultPageURL, "URL of the page listing the CSV files")
	outputDir := flags.String("output", "./data", "The base output directory for downloaded files (must exist unless -mkdir is set)")
	configPath := flags.String("config", "", "Path to an INI file with a [Source] section describing the remote dataset")
	encodingName := flags.String("encoding", "", "Legacy text encoding used to decode and write files (default from source, latin1)")
	subPath := flags.String("subpath", "", "Remote sub-path prepended to every file name (default from source, facial_feedback)")
	listingPath := flags.String("listing", "", "Path to a saved copy of the listing page (skips fetching -page)")
	namesPath := flags.String("names", "", "Path to a file with one CSV name per line (skips the listing step)")
	saveNames := flags.Bool("save-names", false, "Write the listed names to <output>/<subpath>_names.txt")
	createDirs := flags.Bool("mkdir", false, "Create missing destination directories")
	userAgent := flags.String("useragent", "csv-http-fetcher", "User agent to use for all requests")
	httpTimeout := flags.String("timeout", "30s", "HTTP timeout value, use a number + 'ms', 's', 'm', or 'h' for values")
	insecure := flags.Bool("insecure", false, "Skip HTTPS certificate validation")
	verbose := flags.Bool("verbose", false, "print debug statements")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	src := defaultSource()
	if *configPath != "" {
		var err error
		src, err = loadSource(*configPath)
		if err != nil {
			return err
		}
	}
	if *encodingName != "" {
		src.Encoding = *encodingName
	}
	if *subPath != "" {
		src.SubPath = *subPath
	}
	if _, err := lookupEncoding(src.Encoding); err != nil {
		return err
	}

	client, err := createCustomHTTPClient(*userAgent, *insecure, *httpTimeout)
	if err != nil {
		return err
	}

	// Get the CSV names from a names file, a saved listing, or the page itself
	var names []string
	switch {
	case *namesPath != "":
		slog.Info(fmt.Sprintf("Using provided names file: %s", *namesPath))
		names, err = readNames(*namesPath)
		if err != nil {
			return fmt.Errorf("unable to read names file %s: %w", *namesPath, err)
		}
	case *listingPath != "":
		content, err := os.ReadFile(*listingPath)
		if err != nil {
			return fmt.Errorf("unable to read listing file %s: %w", *listingPath, err)
		}
		names = extractCSVNames(string(content))
	default:
		names, err = listCSVNames(client, *pageURL)
		if err != nil {
			return err
		}
	}
	slog.Info(fmt.Sprintf("Found %d CSV files", len(names)))
	if len(names) == 0 {
		return nil
	}

	if *createDirs {
		if err := os.MkdirAll(*outputDir, os.ModePerm); err != nil {
			return fmt.Errorf("error creating base output directory: %w", err)
		}
	}

	if *saveNames {
		prefix := strings.ReplaceAll(strings.Trim(src.SubPath, "/"), "/", "_")
		if prefix == "" {
			prefix = "csv"
		}
		namesFile := filepath.Join(*outputDir, prefix+"_names.txt")
		if err := writeStringArrayToFile(namesFile, names); err != nil {
			return err
		}
		slog.Debug(fmt.Sprintf("Names saved to %s", namesFile))
	}

	bar := newProgressBar(len(names), "[cyan]Downloading CSV files...[reset]")
	summary, err := downloadAll(client, src, names, *outputDir, *createDirs, bar)
	bar.Finish()
	if err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Downloaded %d of %d files (%d failed)", len(summary.Written), len(names), len(summary.Failed)))
	return nil
}
