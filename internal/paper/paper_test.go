package paper_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"openpages/internal/paper"
)

func TestSplitList(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "splits on commas and trims whitespace",
			in:   "a, b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "blank input yields an empty list",
			in:   "",
			want: []string{},
		},
		{
			name: "whitespace-only input yields an empty list",
			in:   "   ",
			want: []string{},
		},
		{
			name: "empty entries between commas are dropped",
			in:   "ml,, nlp, ",
			want: []string{"ml", "nlp"},
		},
		{
			name: "single entry",
			in:   " transformers ",
			want: []string{"transformers"},
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(paper.SplitList(tt.in), qt.DeepEquals, tt.want)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	c := qt.New(t)
	c.Assert(paper.NormalizeStatus("Working"), qt.Equals, "working")
	c.Assert(paper.NormalizeStatus("  IDEA "), qt.Equals, "idea")
	c.Assert(paper.NormalizeStatus("on hold"), qt.Equals, "on hold")
}

func TestTagsLine(t *testing.T) {
	c := qt.New(t)
	p := paper.Paper{Tags: []string{"ml", "nlp"}}
	c.Assert(p.TagsLine(), qt.Equals, "ml, nlp")
	c.Assert(paper.Paper{}.TagsLine(), qt.Equals, "")
}
