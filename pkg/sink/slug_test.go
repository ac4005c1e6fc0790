package sink

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Simple",
			text: "Hello World",
			want: "hello-world",
		},
		{
			name: "TruncatesToEightWords",
			text: "one two three four five six seven eight nine ten",
			want: "one-two-three-four-five-six-seven-eight",
		},
		{
			name: "StripsPunctuation",
			text: "Don't panic! (Really.)",
			want: "dont-panic-really",
		},
		{
			name: "KeepsHyphensAndDigits",
			text: "Top-10 things",
			want: "top-10-things",
		},
		{
			name: "DropsEmptyWords",
			text: "a ... b",
			want: "a-b",
		},
		{
			name: "CollapsesWhitespace",
			text: "  spaced\tout\nwords  ",
			want: "spaced-out-words",
		},
		{
			name: "Empty",
			text: "",
			want: "",
		},
		{
			name: "OnlyPunctuation",
			text: "!!! ???",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.text); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSlugIsDeterministicAndClean(t *testing.T) {
	text := "Some note text, with MIXED case & symbols #42"
	first := Slug(text)
	second := Slug(text)
	if first != second {
		t.Errorf("Slug not deterministic: %q vs %q", first, second)
	}
	for _, r := range first {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum && r != '-' {
			t.Errorf("slug %q contains forbidden rune %q", first, r)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("hello-world", "abc123"); got != "hello-world-abc123.md" {
		t.Errorf("Filename = %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("one two three four five six seven eight nine"); got != "one two three four five six seven eight" {
		t.Errorf("Title = %q", got)
	}
	// Title keeps punctuation, unlike Slug.
	if got := Title("Don't panic!"); got != "Don't panic!" {
		t.Errorf("Title = %q", got)
	}
}

func TestPreview(t *testing.T) {
	short := "short text"
	if got := preview(short); got != short {
		t.Errorf("preview(short) = %q", got)
	}

	long := strings.Repeat("x", 60)
	got := preview(long)
	if got != strings.Repeat("x", 50)+"..." {
		t.Errorf("preview(long) = %q", got)
	}

	// Rune-safe truncation: multi-byte characters must not be split.
	unicodeText := strings.Repeat("ä", 60)
	got = preview(unicodeText)
	if got != strings.Repeat("ä", 50)+"..." {
		t.Errorf("preview(unicode) = %q", got)
	}
}

func TestEscapeYAML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`with "quotes"`, `with \"quotes\"`},
		{`back\slash`, `back\\slash`},
		{`both \"`, `both \\\"`},
	}
	for _, tt := range tests {
		if got := escapeYAML(tt.in); got != tt.want {
			t.Errorf("escapeYAML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
