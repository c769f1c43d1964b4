package speech

import (
	"testing"
	"unicode"
)

func TestCleanText_StripsEmoji(t *testing.T) {
	got := CleanText("⚡ Quick Summary 🎯 Read this aloud 🎮")
	if got != "Quick Summary Read this aloud" {
		t.Errorf("CleanText() = %q", got)
	}
}

func TestCleanText_NoPictographsSurvive(t *testing.T) {
	inputs := []string{
		"plain text stays",
		"mixed 🔥 content ✅ here",
		"flags 🇺🇸 and skin tones 👍🏽",
		"🚀🧪🪐",
	}
	for _, in := range inputs {
		for _, r := range CleanText(in) {
			if unicode.Is(pictographs, r) {
				t.Errorf("CleanText(%q) kept pictograph %U", in, r)
			}
			if r > 0x024F {
				t.Errorf("CleanText(%q) kept out-of-range rune %U", in, r)
			}
		}
	}
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	got := CleanText("one\n\n  two\t three   ")
	if got != "one two three" {
		t.Errorf("CleanText() = %q", got)
	}
}

func TestCleanText_KeepsLatinExtended(t *testing.T) {
	got := CleanText("café naïve résumé")
	if got != "café naïve résumé" {
		t.Errorf("accented latin should survive, got %q", got)
	}
}

func TestCleanText_AllEmojiBecomesEmpty(t *testing.T) {
	if got := CleanText("🎉 🎊 🎈"); got != "" {
		t.Errorf("CleanText() = %q, want empty", got)
	}
}
