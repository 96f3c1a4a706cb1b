package resolver

import "testing"

func TestClassifySpecifier(t *testing.T) {
	cases := []struct {
		specifier string
		want      SpecifierKind
	}{
		{"", KindInvalid},
		{".", KindRelative},
		{"..", KindRelative},
		{"./foo.js", KindRelative},
		{"../foo.js", KindRelative},
		{"/usr/lib/foo.js", KindAbsolute},
		{"#internal/helper", KindPrivate},
		{"lodash", KindBareName},
		{"@scope/pkg", KindBareName},
		{"@scope/pkg/sub", KindBareName},
		{"node:fs", KindURL},
		{"https://example.com/mod.js", KindURL},
		{"data:text/javascript,export{}", KindURL},
	}

	for _, c := range cases {
		if got := ClassifySpecifier(c.specifier); got != c.want {
			t.Errorf("ClassifySpecifier(%q) = %v, want %v", c.specifier, got, c.want)
		}
	}
}
