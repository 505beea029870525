package naming

import (
	"errors"
	"testing"
	"time"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantWidth int
	}{
		{"three digit width", "video_{:03d}", 3},
		{"two digit width", "IMG_{:02d}", 2},
		{"wide", "ep_{:010d}", 10},
		{"no padding", "track_{:d}", 0},
		{"placeholder only", "{:03d}", 3},
		{"placeholder mid-string", "s01e{:02d}_final", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if p.Width() != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", p.Width(), tt.wantWidth)
			}
			if p.String() != tt.raw {
				t.Errorf("String() = %q, want %q", p.String(), tt.raw)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no placeholder", "video_"},
		{"empty", ""},
		{"two placeholders", "a{:03d}b{:02d}"},
		{"space padded width", "video_{:3d}"},
		{"missing colon", "video_{03d}"},
		{"zero width", "video_{:0d}"},
		{"width zero digits", "video_{:00d}"},
		{"named placeholder", "video_{index}"},
		{"stray open brace", "video_{"},
		{"stray close brace", "video_}{:03d}x}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidPattern", tt.raw, err)
			}
		})
	}
}

func TestPattern_Format(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		index int
		want  string
	}{
		{"zero padded", "video_{:03d}", 1, "video_001"},
		{"fills width", "video_{:03d}", 42, "video_042"},
		{"exact width", "IMG_{:02d}", 10, "IMG_10"},
		{"overflow keeps digits", "IMG_{:02d}", 123, "IMG_123"},
		{"no padding", "track_{:d}", 7, "track_7"},
		{"suffix preserved", "s01e{:02d}_final", 3, "s01e03_final"},
		{"negative keeps sign", "v_{:03d}", -1, "v_-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if got := p.Format(tt.index); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestPattern_FileName(t *testing.T) {
	p, err := Parse("video_{:03d}")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.FileName(1, "mp4"); got != "video_001.mp4" {
		t.Errorf("FileName(1, mp4) = %q, want %q", got, "video_001.mp4")
	}
}

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2025, 6, 1, 14, 30, 7, 0, time.UTC)
	want := "backup_2025-06-01_14-30-07.txt"
	if got := BackupFileName(ts); got != want {
		t.Errorf("BackupFileName = %q, want %q", got, want)
	}
}

func TestBackupFileName_SortsByTime(t *testing.T) {
	earlier := BackupFileName(time.Date(2025, 6, 1, 9, 59, 59, 0, time.UTC))
	later := BackupFileName(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("expected %q to sort before %q", earlier, later)
	}
}
