package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunConfig is the resolved, validated configuration for one invocation.
// It is built once from the optional settings file plus the command line
// and never mutated afterwards.
type RunConfig struct {
	InputDirs       []string
	Verbose         bool
	Recursive       bool
	OutputDir       string
	OutputName      string
	Tileable        bool
	SkipSeparators  bool
	Randomize       bool
	FrontMatterPath string
	BackMatterPath  string
	TemplatePath    string
}

// fileSettings mirrors the flag surface in an optional YAML settings file.
// Booleans are pointers so "absent" and "false" stay distinguishable.
type fileSettings struct {
	OutputDir    string `yaml:"output_dir"`
	OutputName   string `yaml:"output_name"`
	Template     string `yaml:"template"`
	FrontMatter  string `yaml:"front_matter"`
	BackMatter   string `yaml:"back_matter"`
	Tile         *bool  `yaml:"tile"`
	NoSeparators *bool  `yaml:"no_separators"`
	Randomize    *bool  `yaml:"randomize"`
	Recursive    *bool  `yaml:"recursive"`
	Verbose      *bool  `yaml:"verbose"`
}

// loadSettings reads and parses a YAML settings file.
func loadSettings(path string) (*fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	var s fileSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return &s, nil
}

// applyFile fills in config values from the settings file for every option
// the command line did not set explicitly. changed reports whether the named
// flag was given on the command line.
func (c *RunConfig) applyFile(s *fileSettings, changed func(name string) bool) {
	if s == nil {
		return
	}
	if s.OutputDir != "" && !changed("output-dir") {
		c.OutputDir = s.OutputDir
	}
	if s.OutputName != "" && !changed("name") {
		c.OutputName = s.OutputName
	}
	if s.Template != "" && !changed("template") {
		c.TemplatePath = s.Template
	}
	if s.FrontMatter != "" && !changed("front-matter") {
		c.FrontMatterPath = s.FrontMatter
	}
	if s.BackMatter != "" && !changed("back-matter") {
		c.BackMatterPath = s.BackMatter
	}
	if s.Tile != nil && !changed("tile") {
		c.Tileable = *s.Tile
	}
	if s.NoSeparators != nil && !changed("no-separators") {
		c.SkipSeparators = *s.NoSeparators
	}
	if s.Randomize != nil && !changed("randomize") {
		c.Randomize = *s.Randomize
	}
	if s.Recursive != nil && !changed("recursive") {
		c.Recursive = *s.Recursive
	}
	if s.Verbose != nil && !changed("verbose") {
		c.Verbose = *s.Verbose
	}
}

// applyDefaults fills in the documented defaults for anything still unset.
func (c *RunConfig) applyDefaults() {
	if len(c.InputDirs) == 0 {
		c.InputDirs = []string{"."}
	}
	if c.OutputName == "" {
		c.OutputName = "output"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "template.pdf"
	}
}

// outputPathFor returns the output file path for one input directory. The
// default destination is the input directory itself; when a single explicit
// output directory serves several input directories, the input directory's
// base name is appended so the runs do not overwrite each other.
func (c *RunConfig) outputPathFor(inputDir string) string {
	name := c.OutputName + ".pdf"
	if c.OutputDir == "" {
		return filepath.Join(inputDir, name)
	}
	if len(c.InputDirs) > 1 {
		base := filepath.Base(filepath.Clean(inputDir))
		name = fmt.Sprintf("%s-%s.pdf", c.OutputName, base)
	}
	return filepath.Join(c.OutputDir, name)
}
