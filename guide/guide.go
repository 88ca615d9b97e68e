// Package guide serves the embedded template documentation: the main guide
// plus one page per extension concept. Pages are compiled into the binary so
// "mcpext guide" and the example://guide resource work anywhere, with no
// files on disk and no manifest in the working directory.
package guide

import (
	"embed"
	"fmt"
)

//go:embed *.md
var pages embed.FS

// topics is the display order for List: the order a developer meets the
// concepts when turning the template into a real extension.
var topics = []string{"tools", "resources", "manifest", "config"}

// Get returns a guide page by topic. An empty topic returns the main guide.
func Get(topic string) (string, error) {
	if topic == "" {
		topic = "guide"
	}
	data, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topics in display order. The main guide is the
// default page, not a topic, so it is not listed.
func List() ([]string, error) {
	for _, topic := range topics {
		if _, err := pages.ReadFile(topic + ".md"); err != nil {
			return nil, fmt.Errorf("guide topic %s not embedded: %w", topic, err)
		}
	}
	return topics, nil
}
