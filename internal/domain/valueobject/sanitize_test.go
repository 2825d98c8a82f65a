package valueobject

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeTextStripsMarkupCharacters(t *testing.T) {
	got := SanitizeText(`<script>alert("x")</script> O'Brien & co`)
	if strings.ContainsAny(got, `<>"'&`) {
		t.Errorf("result still contains stripped characters: %q", got)
	}
	if !strings.Contains(got, "OBrien") {
		t.Errorf("result = %q", got)
	}
}

func TestSanitizeTextTrimsWhitespace(t *testing.T) {
	if got := SanitizeText("  hello  "); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
	if got := SanitizeText("   "); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSanitizeTextCapsLength(t *testing.T) {
	got := SanitizeText(strings.Repeat("a", 5000))
	if len(got) != 1000 {
		t.Errorf("len = %d, want 1000", len(got))
	}
}

func TestSanitizeTextCutsOnRuneBoundary(t *testing.T) {
	// 999 ASCII bytes followed by multi-byte runes puts a rune astride
	// the length cap.
	input := strings.Repeat("a", 999) + strings.Repeat("é", 10)

	got := SanitizeText(input)
	if !utf8.ValidString(got) {
		t.Errorf("result is not valid UTF-8: %q", got[990:])
	}
	if len(got) > 1000 {
		t.Errorf("len = %d, want at most 1000", len(got))
	}
	if len(got) != 999 {
		t.Errorf("len = %d, want 999 with the split rune dropped", len(got))
	}
}
