package resolver

import (
	"net/url"
	"path"
	"strings"
)

// fileURLPrefix is the scheme prefix this package uses for every path it
// manipulates internally. Paths are kept posix-style (forward slash,
// always absolute) regardless of host OS; the root binary is responsible
// for translating to/from OS-native paths at the FsProbe/RealpathResolver
// boundary, exactly as pathutils.go's
// NormalizePathForInternal/DenormalizePathForOS pair does for its own
// file-path bookkeeping.
const fileURLPrefix = "file://"

// FileURLFromPath builds a file: URL string from an absolute posix-style
// path such as "/app/node_modules/pkg/index.js".
func FileURLFromPath(absPath string) string {
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}
	return fileURLPrefix + absPath
}

// FileURLPath extracts the path portion of a file: URL, or "" if u is not
// a file: URL.
func FileURLPath(u string) (string, bool) {
	if !strings.HasPrefix(u, fileURLPrefix) {
		return "", false
	}
	rest := u[len(fileURLPrefix):]
	if hash := strings.IndexAny(rest, "?#"); hash >= 0 {
		rest = rest[:hash]
	}
	return rest, true
}

// FileURLSuffix returns the "?query"/"#fragment" tail of a file: URL,
// including the leading delimiter, or "" if u carries neither.
func FileURLSuffix(u string) string {
	if !strings.HasPrefix(u, fileURLPrefix) {
		return ""
	}
	rest := u[len(fileURLPrefix):]
	if idx := strings.IndexAny(rest, "?#"); idx >= 0 {
		return rest[idx:]
	}
	return ""
}

// fileURLDir returns the file: URL for the directory containing u's path.
func fileURLDir(u string) string {
	p, ok := FileURLPath(u)
	if !ok {
		return u
	}
	return FileURLFromPath(path.Dir(p))
}

// resolveRelative resolves a relative reference against base exactly as
// `new URL(rel, base)` would: this is the one place base's scheme is not
// assumed to be file:, so a relative/absolute-path specifier reached
// through a remote (http/https) parent resolves against that parent's
// origin rather than failing outright.
func resolveRelative(base string, rel string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	relURL, err := url.Parse(rel)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

// hasPathPrefix reports whether the path of urlStr lies within (or equals)
// the directory dirPath, honoring segment boundaries so "/pkg-extra" does
// not spuriously match a "/pkg" boundary.
func hasPathPrefix(urlStr string, dirPath string) bool {
	p, ok := FileURLPath(urlStr)
	if !ok {
		return false
	}
	dirPath = strings.TrimSuffix(dirPath, "/")
	if p == dirPath {
		return true
	}
	return strings.HasPrefix(p, dirPath+"/")
}

// replaceStarSingle replaces exactly one occurrence of "*" in s with
// value. It is used for pattern substitution applied to a resolved
// target's full href.
func replaceStarSingle(s, value string) string {
	return strings.Replace(s, "*", value, 1)
}
