package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/renumber/internal/config"
	"github.com/backmassage/renumber/internal/planner"
	"github.com/backmassage/renumber/internal/term"
)

func samplePlan() *planner.Plan {
	return &planner.Plan{
		Dir: "/videos",
		Entries: []planner.Entry{
			{Source: "a.mp4", Target: "video_001.mp4", Index: 1, Status: planner.StatusPending},
			{Source: "b.mp4", Target: "video_002.mp4", Index: 2, Status: planner.StatusConflict, Reason: "target exists"},
		},
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		word string
		want string
	}{
		{0, "file", "0 files"},
		{1, "file", "1 file"},
		{2, "file", "2 files"},
		{1, "conflict", "1 conflict"},
		{5, "conflict", "5 conflicts"},
	}
	for _, tt := range tests {
		if got := Pluralize(tt.n, tt.word); got != tt.want {
			t.Errorf("Pluralize(%d, %q) = %q, want %q", tt.n, tt.word, got, tt.want)
		}
	}
}

func TestWritePreview(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, samplePlan())
	out := buf.String()

	if !strings.Contains(out, "a.mp4 -> video_001.mp4") {
		t.Errorf("preview missing pending line:\n%s", out)
	}
	if !strings.Contains(out, "b.mp4 -> video_002.mp4") {
		t.Errorf("preview missing conflict line:\n%s", out)
	}
	if !strings.Contains(out, "target exists") {
		t.Errorf("conflict reason not shown:\n%s", out)
	}
}

func TestListingDiff(t *testing.T) {
	s, err := ListingDiff(samplePlan())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "-a.mp4") {
		t.Errorf("diff missing removed source line:\n%s", s)
	}
	if !strings.Contains(s, "+video_001.mp4") {
		t.Errorf("diff missing added target line:\n%s", s)
	}
	if strings.Contains(s, "-b.mp4") {
		t.Errorf("conflict entry must keep its name on both sides:\n%s", s)
	}
	if !strings.Contains(s, "/videos (before)") || !strings.Contains(s, "/videos (after)") {
		t.Errorf("diff headers missing:\n%s", s)
	}
}

func TestWritePreview_ColorsDisabled(t *testing.T) {
	term.Configure(config.ColorNever)

	var buf bytes.Buffer
	WritePreview(&buf, samplePlan())
	out := buf.String()

	if strings.Contains(out, "\x1b[") {
		t.Errorf("preview must be plain text with colors disabled:\n%q", out)
	}
	if !strings.Contains(out, "  ✓ a.mp4 -> video_001.mp4") {
		t.Errorf("unstyled pending line missing:\n%s", out)
	}
	if !strings.Contains(out, "  ✗ b.mp4 -> video_002.mp4 [target exists]") {
		t.Errorf("unstyled conflict line missing:\n%s", out)
	}
}

func TestListingDiff_NoChanges(t *testing.T) {
	plan := &planner.Plan{
		Dir: "/videos",
		Entries: []planner.Entry{
			{Source: "video_001.mp4", Target: "video_001.mp4", Index: 1, Status: planner.StatusPending},
		},
	}
	s, err := ListingDiff(plan)
	if err != nil {
		t.Fatal(err)
	}
	if s != "" {
		t.Errorf("identical listings should produce an empty diff, got:\n%s", s)
	}
}
