package resolver

import "strings"

// normalizeExports implements the "conditional main sugar" rule: a
// package.json `exports` value that is a string, a list, or a map whose
// keys are all condition keys is sugar for `{ ".": <value> }`. A map
// mixing subpath and condition keys is InvalidPackageConfig.
func normalizeExports(pkg *PackageConfig) (Target, *Error) {
	exports := pkg.Exports

	if exports.Kind == TargetString || exports.Kind == TargetList {
		return MapTarget([]string{"."}, map[string]Target{".": exports}), nil
	}

	if exports.Kind != TargetMap {
		return exports, nil
	}

	hasSubpath, hasCondition := false, false
	for _, k := range exports.MapKeys {
		if IsSubpathKey(k) {
			hasSubpath = true
		} else {
			hasCondition = true
		}
	}

	if hasSubpath && hasCondition {
		return Target{}, newErr(KindInvalidPackageConfig, "", pkg.PjsonPath,
			"exports map in %s mixes subpath and condition keys", pkg.PjsonPath)
	}

	if hasCondition {
		return MapTarget([]string{"."}, map[string]Target{".": exports}), nil
	}

	return exports, nil
}

// ResolveExports implements C5 ExportsResolver for a single subpath query.
func (r *Resolver) ResolveExports(pkg *PackageConfig, subpath string, base string, conditions ConditionSet) (string, *Error) {
	exportsMap, normErr := normalizeExports(pkg)
	if normErr != nil {
		return "", normErr
	}

	if target, ok := exportsMap.Map[subpath]; ok && !strings.Contains(subpath, "*") && !strings.HasSuffix(subpath, "/") {
		res, err := r.ResolveTarget(pkg, target, "", subpath, base, false, false, false, conditions)
		if err != nil {
			return "", err
		}
		if res.Outcome != OutcomeURL {
			return "", newErr(KindPackageSubpathNotExported, subpath, base,
				"package %s does not export subpath %q", pkg.Name, subpath)
		}
		return res.URL, nil
	}

	match, found := BestPatternMatch(exportsMap.MapKeys, subpath)
	if found {
		if strings.HasSuffix(subpath, "/") {
			r.deprecate("DEP0155", pkg.PjsonPath, match.Key, "trailing-slash pattern export "+match.Key+" is deprecated")
		}
		target := exportsMap.Map[match.Key]
		res, err := r.ResolveTarget(pkg, target, match.Capture, match.Key, base, true, false, strings.HasSuffix(subpath, "/"), conditions)
		if err != nil {
			return "", err
		}
		if res.Outcome != OutcomeURL {
			return "", newErr(KindPackageSubpathNotExported, subpath, base,
				"package %s does not export subpath %q", pkg.Name, subpath)
		}
		return res.URL, nil
	}

	return "", newErr(KindPackageSubpathNotExported, subpath, base,
		"package %s does not export subpath %q", pkg.Name, subpath)
}
