package resolver

import (
	"net/url"
	"strings"
)

// Outcome is the tri-state result of resolving a target: an explicit
// blocking Null, "no applicable branch" Undefined, or a concrete URL.
// Modeling this as an enum rather than a nullable string keeps
// "blocked" and "not applicable" from collapsing into each other, which
// matters for how List/Map propagate failures upward.
type Outcome uint8

const (
	OutcomeUndefined Outcome = iota
	OutcomeNull
	OutcomeURL
)

type TargetResult struct {
	Outcome Outcome
	URL     string
}

func undefinedResult() TargetResult { return TargetResult{Outcome: OutcomeUndefined} }
func nullResult() TargetResult      { return TargetResult{Outcome: OutcomeNull} }
func urlResult(u string) TargetResult {
	return TargetResult{Outcome: OutcomeURL, URL: u}
}

// ResolveTarget implements C4 TargetResolver.
func (r *Resolver) ResolveTarget(
	pkg *PackageConfig,
	target Target,
	capture string,
	matchKey string,
	base string,
	isPattern bool,
	isInternal bool,
	isPathMap bool,
	conditions ConditionSet,
) (TargetResult, *Error) {
	switch target.Kind {
	case TargetString:
		return r.resolveStringTarget(pkg, target.Str, capture, matchKey, base, isPattern, isInternal)
	case TargetList:
		return r.resolveListTarget(pkg, target.List, capture, matchKey, base, isPattern, isInternal, isPathMap, conditions)
	case TargetMap:
		return r.resolveMapTarget(pkg, target, capture, matchKey, base, isPattern, isInternal, isPathMap, conditions)
	case TargetNull:
		return nullResult(), nil
	default:
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base, "unsupported target shape")
	}
}

func (r *Resolver) resolveStringTarget(pkg *PackageConfig, t string, capture string, matchKey string, base string, isPattern bool, isInternal bool) (TargetResult, *Error) {
	if capture != "" && !isPattern && !strings.HasSuffix(t, "/") {
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base,
			"target %q is not a directory-mapping (no trailing '/') but a subpath was requested", t)
	}

	if !strings.HasPrefix(t, "./") {
		if isInternal && !strings.HasPrefix(t, "../") && !strings.HasPrefix(t, "/") && !looksLikeURL(t) {
			bare := t
			if isPattern {
				bare = replaceStarSingle(bare, capture)
			}
			return r.resolveBareIndirection(bare, base, pkg)
		}
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base,
			"target %q must start with './'", t)
	}

	if deprecated, invalid := scanInvalidSegments(t[2:]); invalid {
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base,
			"target %q contains a disallowed path segment", t)
	} else if deprecated {
		r.deprecate("DEP0148", pkg.PjsonPath, matchKey, "target "+t+" uses a deprecated bare 'node_modules' segment form")
	}

	resolved, joinErr := resolveRelative(FileURLFromPath(pkg.PjsonPath), t)
	if joinErr != nil {
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base, "%v", joinErr)
	}
	if !hasPathPrefix(resolved, pkg.PjsonDir) {
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base,
			"target %q resolves outside the package directory", t)
	}

	if capture == "" {
		return urlResult(resolved), nil
	}

	if deprecated, invalid := scanInvalidSegments(capture); invalid {
		return TargetResult{}, newErr(KindInvalidModuleSpecifier, matchKey, base,
			"capture %q contains a disallowed path segment", capture)
	} else if deprecated {
		r.deprecate("DEP0148", pkg.PjsonPath, matchKey, "capture "+capture+" uses a deprecated bare 'node_modules' segment form")
	}

	if isPattern {
		return urlResult(replaceStarSingle(resolved, capture)), nil
	}

	joined, err := resolveRelative(resolved+"/", capture)
	if err != nil {
		return TargetResult{}, newErr(KindInvalidPackageTarget, matchKey, base, "%v", err)
	}
	return urlResult(joined), nil
}

func looksLikeURL(s string) bool {
	return ClassifySpecifier(s) == KindURL
}

// scanInvalidSegments walks the "/"- and "\\"-delimited segments of a
// target/capture string looking for ".", "..", or a literal or
// percent-encoded "node_modules" segment. It reports (deprecated, invalid):
// a bare "node_modules" segment with no dot-segments elsewhere is the
// deprecated legacy form (still accepted, with a warning); anything else
// matching is a hard failure.
func scanInvalidSegments(s string) (deprecated bool, invalid bool) {
	segments := splitPathSegments(s)
	sawNodeModules := false
	for _, seg := range segments {
		lower := strings.ToLower(seg)
		switch lower {
		case ".", "..":
			return false, true
		case "node_modules":
			sawNodeModules = true
		default:
			if isPercentEncodedNodeModules(lower) {
				return false, true
			}
		}
	}
	if sawNodeModules {
		return true, false
	}
	return false, false
}

func splitPathSegments(s string) []string {
	var segments []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '/' || s[i] == '\\' {
			if i > start {
				segments = append(segments, s[start:i])
			}
			start = i + 1
		}
	}
	return segments
}

func isPercentEncodedNodeModules(segLower string) bool {
	unescaped, err := url.PathUnescape(segLower)
	if err != nil {
		return false
	}
	unescaped = strings.ToLower(unescaped)
	return unescaped == "node_modules" && unescaped != segLower
}

// resolveBareIndirection handles the isInternal "imports value names a
// bare package" case: it substitutes the pattern (already done by the
// caller) and recurses through PackageResolver as if the bare specifier
// had been written directly by user code.
func (r *Resolver) resolveBareIndirection(bare string, base string, pkg *PackageConfig) (TargetResult, *Error) {
	result, err := r.ResolvePackage(bare, base, r.Options.DefaultConditions)
	if err != nil {
		return TargetResult{}, err
	}
	return urlResult(result), nil
}

func (r *Resolver) resolveListTarget(pkg *PackageConfig, items []Target, capture, matchKey, base string, isPattern, isInternal, isPathMap bool, conditions ConditionSet) (TargetResult, *Error) {
	if len(items) == 0 {
		return nullResult(), nil
	}

	lastResult := undefinedResult()
	var lastErr *Error

	for _, item := range items {
		res, err := r.ResolveTarget(pkg, item, capture, matchKey, base, isPattern, isInternal, isPathMap, conditions)
		if err != nil {
			if err.Kind == KindInvalidPackageTarget {
				lastErr = err
				lastResult = TargetResult{}
				continue
			}
			return TargetResult{}, err
		}
		if res.Outcome == OutcomeURL {
			return res, nil
		}
		lastErr = nil
		lastResult = res
	}

	if lastErr != nil {
		return TargetResult{}, lastErr
	}
	return lastResult, nil
}

func (r *Resolver) resolveMapTarget(pkg *PackageConfig, target Target, capture, matchKey, base string, isPattern, isInternal, isPathMap bool, conditions ConditionSet) (TargetResult, *Error) {
	for _, key := range target.MapKeys {
		if isNumericKey(key) {
			return TargetResult{}, newErr(KindInvalidPackageConfig, matchKey, base,
				"numeric condition key %q is not allowed", key)
		}
	}

	for _, key := range target.MapKeys {
		if key != "default" && !conditions.Has(key) {
			continue
		}
		res, err := r.ResolveTarget(pkg, target.Map[key], capture, matchKey, base, isPattern, isInternal, isPathMap, conditions)
		if err != nil {
			return TargetResult{}, err
		}
		if res.Outcome != OutcomeUndefined {
			return res, nil
		}
	}
	return undefinedResult(), nil
}

func isNumericKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
