package resolver

import "net/url"

// ClassifySpecifier implements C1 SpecifierClassifier: given a raw
// specifier, decide which of {Relative, Absolute, Private, BareName, Url}
// it is (or Invalid for the empty string). A Private ("#...") specifier is only legal when the parent is not
// remote — callers check that separately since the classifier itself has
// no notion of "legal", only "what shape is this".
func ClassifySpecifier(s string) SpecifierKind {
	if s == "" {
		return KindInvalid
	}

	if s[0] == '/' {
		return KindAbsolute
	}

	if isDotSlash(s) {
		return KindRelative
	}

	if s[0] == '#' {
		return KindPrivate
	}

	if _, err := url.Parse(s); err == nil && hasScheme(s) {
		return KindURL
	}

	return KindBareName
}

// isDotSlash matches "." | ".." | "./..." | "../...": "." or ".." on its
// own, or followed immediately by "/".
func isDotSlash(s string) bool {
	if s[0] != '.' {
		return false
	}
	if len(s) == 1 {
		return true
	}
	if s[1] == '/' {
		return true
	}
	if s[1] == '.' {
		if len(s) == 2 {
			return true
		}
		if s[2] == '/' {
			return true
		}
	}
	return false
}

// hasScheme reports whether s looks like "<scheme>:..." with a valid
// scheme prefix, without relying on url.Parse alone (which happily parses
// bare relative-looking strings as "path-only" URLs).
func hasScheme(s string) bool {
	colon := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			colon = i
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.':
			continue
		default:
			return false
		}
		if colon >= 0 {
			break
		}
	}
	return colon > 0
}
