package main

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Source describes where raw dataset files live and how they are encoded.
type Source struct {
	Scheme   string
	Host     string
	Org      string
	Repo     string
	Branch   string
	Path     string
	SubPath  string
	Encoding string
}

func defaultSource() Source {
	return Source{
		Scheme:   "https",
		Host:     "raw.githubusercontent.com",
		Org:      "bambinos",
		Repo:     "bambi",
		Branch:   "main",
		Path:     "docs/notebooks/data",
		SubPath:  "facial_feedback",
		Encoding: "latin1",
	}
}

// rawURL builds the absolute URL of a file relative to the source's data path.
func (s Source) rawURL(relativeRemotePath string) string {
	segments := []string{s.Host, s.Org, s.Repo, "refs/heads", s.Branch}
	if p := strings.Trim(s.Path, "/"); p != "" {
		segments = append(segments, p)
	}
	segments = append(segments, strings.TrimPrefix(relativeRemotePath, "/"))
	return fmt.Sprintf("%s://%s", s.Scheme, strings.Join(segments, "/"))
}

func (s Source) remotePath(name string) string {
	subPath := strings.Trim(s.SubPath, "/")
	if subPath == "" {
		return name
	}
	return subPath + "/" + name
}

// loadSource reads a [Source] section from an INI file on top of the defaults.
//
//	[Source]
//	host = raw.githubusercontent.com
//	org = bambinos
//	repo = bambi
//	branch = main
//	path = docs/notebooks/data
//	subpath = facial_feedback
//	encoding = latin1
func loadSource(filePath string) (Source, error) {
	src := defaultSource()

	cfg, err := ini.Load(filePath)
	if err != nil {
		return src, fmt.Errorf("loading source config %s: %w", filePath, err)
	}

	if !cfg.HasSection("Source") {
		return src, fmt.Errorf("section 'Source' not found in the INI file %s", filePath)
	}
	section := cfg.Section("Source")

	fields := map[string]*string{
		"scheme":   &src.Scheme,
		"host":     &src.Host,
		"org":      &src.Org,
		"repo":     &src.Repo,
		"branch":   &src.Branch,
		"path":     &src.Path,
		"subpath":  &src.SubPath,
		"encoding": &src.Encoding,
	}
	for name, field := range fields {
		if section.HasKey(name) {
			*field = section.Key(name).String()
		}
	}

	if src.Host == "" {
		return src, fmt.Errorf("source config %s: host must not be empty", filePath)
	}
	return src, nil
}
