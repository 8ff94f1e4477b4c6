// Package site holds the static copy of the landing page.
package site

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Section is one card of the info panel.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Content is the page metadata and copy.
type Content struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Headline    string    `yaml:"headline"`
	Sections    []Section `yaml:"sections"`
	Tagline     string    `yaml:"tagline"`
	Repository  string    `yaml:"repository"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(contentYAML)
}

// Parse decodes page content from YAML.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if c.Title == "" {
		return nil, errors.New("site content has no title")
	}
	return &c, nil
}
