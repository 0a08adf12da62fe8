package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/helmcode/leadscore/pkg/model"
	"gopkg.in/yaml.v3"
)

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// ParseProfile reads a lead profile from a YAML or JSON document.
// Input that is not a mapping is treated as a bare bio.
func ParseProfile(raw []byte) (*model.LeadProfile, error) {
	cleaned := stripFences(string(raw))
	if cleaned == "" {
		return nil, fmt.Errorf("empty profile")
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(cleaned), &node); err != nil || !isMapping(&node) {
		// Fallback - not a structured document, use the text as the bio.
		return &model.LeadProfile{Bio: cleaned}, nil
	}

	var profile model.LeadProfile
	if err := node.Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	// A bio like "Book now: 555-123-4567" parses as a mapping with no known
	// keys.
	if profile == (model.LeadProfile{}) {
		return &model.LeadProfile{Bio: cleaned}, nil
	}
	return &profile, nil
}

func isMapping(n *yaml.Node) bool {
	return n.Kind == yaml.DocumentNode && len(n.Content) == 1 && n.Content[0].Kind == yaml.MappingNode
}

// stripFences removes markdown code fences such as ```yaml ... ``` so the
// document can be parsed.
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}
