// Package paper defines the record type tracked by the library and the
// free-text normalization both front ends apply to user input.
package paper

import "strings"

// Conventional status values. The store does not validate against this
// set; anything the user types is accepted after lower-casing.
const (
	StatusWorking   = "working"
	StatusIdea      = "idea"
	StatusCompleted = "completed"
)

// Paper is one tracked research paper and its metadata. Field names
// match the persisted JSON format exactly.
type Paper struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
	Abstract string   `json:"abstract"`
	TOC      []string `json:"toc"`
	GitHub   string   `json:"github"`
	PDF      string   `json:"pdf"`
	Purchase string   `json:"purchase"`
}

// SplitList turns comma-separated free text into a list, trimming
// surrounding whitespace from each entry. Blank input and empty
// entries between commas are dropped, so the result is never a list
// of empty strings.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NormalizeStatus trims and lower-cases a status value the way both
// front ends do before it reaches the store.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TagsLine renders the tag list the way the window's table displays it.
func (p Paper) TagsLine() string {
	return strings.Join(p.Tags, ", ")
}
