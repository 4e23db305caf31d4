package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/listing", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a href="/tree/survey/one.csv">one</a><a href="/tree/survey/readme.md">readme</a><a href="/tree/survey/two.csv">two</a>`))
	})
	mux.HandleFunc("/org/repo/refs/heads/main/data/survey/one.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write(latin1CSV)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	configPath := writeINI(t, fmt.Sprintf("[Source]\nscheme = http\nhost = %s\norg = org\nrepo = repo\npath = data\nsubpath = survey\n",
		strings.TrimPrefix(server.URL, "http://")))
	outputDir := filepath.Join(t.TempDir(), "out")
	logs := captureLogs(t)

	err := run([]string{
		"-page", server.URL + "/listing",
		"-output", outputDir,
		"-config", configPath,
		"-mkdir",
		"-save-names",
	})
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(outputDir, "survey", "one.csv"))
	require.NoError(t, err)
	assert.Equal(t, latin1CSV, written)
	assert.NoFileExists(t, filepath.Join(outputDir, "survey", "two.csv"))

	names, err := readNames(filepath.Join(outputDir, "survey_names.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one.csv", "two.csv"}, names)

	assert.Contains(t, logs.String(), "Failed to download survey/two.csv. Status code: 404")
}

func TestRun_NamesFile(t *testing.T) {
	_, src := newDatasetServer(t, map[string][]byte{"facial_feedback/x.csv": latin1CSV})
	configPath := writeINI(t, fmt.Sprintf("[Source]\nscheme = http\nhost = %s\npath = data\n", src.Host))

	namesPath := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, writeStringArrayToFile(namesPath, []string{"x.csv"}))
	outputDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(outputDir, "facial_feedback"), 0755))

	err := run([]string{"-names", namesPath, "-output", outputDir, "-config", configPath})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outputDir, "facial_feedback", "x.csv"))
}

func TestRun_SavedListingWithoutMatches(t *testing.T) {
	listingPath := filepath.Join(t.TempDir(), "listing.html")
	require.NoError(t, os.WriteFile(listingPath, []byte(`<a href="notes.txt">notes</a>`), 0644))

	err := run([]string{"-listing", listingPath, "-output", t.TempDir()})
	assert.NoError(t, err)
}

func TestRun_ConfigErrors(t *testing.T) {
	assert.Error(t, run([]string{"-encoding", "no-such-charset"}))
	assert.Error(t, run([]string{"-timeout", "soon"}))
	assert.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "missing.ini")}))
	assert.Error(t, run([]string{"-unknown-flag"}))
}

func TestRun_UnreachablePage(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	pageURL := closed.URL + "/listing"
	closed.Close()

	err := run([]string{"-page", pageURL, "-output", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), pageURL)
}

func TestRun_NamesFileOutsideOutput(t *testing.T) {
	_, src := newDatasetServer(t, map[string][]byte{"x.csv": latin1CSV})
	configPath := writeINI(t, fmt.Sprintf("[Source]\nscheme = http\nhost = %s\npath = data\nsubpath =\n", src.Host))

	root := t.TempDir()
	outputDir := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(outputDir, 0755))
	namesPath := filepath.Join(root, "names.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("../x.csv\n"), 0644))

	err := run([]string{"-names", namesPath, "-output", outputDir, "-config", configPath})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(root, "x.csv"))
}
