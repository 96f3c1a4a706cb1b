package resolver

import "testing"

func TestBestPatternMatch(t *testing.T) {
	keys := []string{"./utils/*.js", "./utils/*", "./*"}

	match, ok := BestPatternMatch(keys, "./utils/deep/helper.js")
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Key != "./utils/*.js" {
		t.Errorf("expected the longest prefix to win, got key %q", match.Key)
	}
	if match.Capture != "deep/helper" {
		t.Errorf("unexpected capture %q", match.Capture)
	}
}

func TestBestPatternMatchTieBreakOnKeyLength(t *testing.T) {
	// Both keys share the prefix "./a" and both qualify (q is long enough
	// for either); the longer full key ("./a*b") must win the tie-break.
	keys := []string{"./a*", "./a*b"}
	match, ok := BestPatternMatch(keys, "./aXXb")
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Key != "./a*b" {
		t.Errorf("expected the longer key to win on equal prefix, got %q", match.Key)
	}
	if match.Capture != "XX" {
		t.Errorf("unexpected capture %q", match.Capture)
	}
}

func TestBestPatternMatchNoMatch(t *testing.T) {
	_, ok := BestPatternMatch([]string{"./only/*.js"}, "./other/thing.js")
	if ok {
		t.Errorf("expected no match")
	}
}

func TestBestPatternMatchRequiresMinimumLength(t *testing.T) {
	// "./*" with q == "./" has len(q) < len(key), so it must not match.
	_, ok := BestPatternMatch([]string{"./*"}, "./")
	if ok {
		t.Errorf("capture query shorter than the key must not match")
	}
}
