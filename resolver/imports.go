package resolver

import "strings"

// ResolveImports implements C6 ImportsResolver for a "#..." specifier.
func (r *Resolver) ResolveImports(name string, base string, conditions ConditionSet) (string, *Error) {
	if name == "#" || strings.HasPrefix(name, "#/") || strings.HasSuffix(name, "/") {
		return "", newErr(KindInvalidModuleSpecifier, name, base, "invalid imports specifier %q", name)
	}

	pkg, err := r.getPackageScopeConfig(base)
	if err != nil {
		return "", err
	}
	if pkg == nil || !pkg.HasImports {
		return "", newErr(KindPackageImportNotDefined, name, base,
			"no package.json imports entry found for %q", name)
	}

	if target, ok := pkg.Imports.Map[name]; ok && !strings.Contains(name, "*") {
		res, rerr := r.ResolveTarget(pkg, target, "", name, base, false, true, false, conditions)
		if rerr != nil {
			return "", rerr
		}
		if res.Outcome == OutcomeURL {
			return res.URL, nil
		}
		return "", newErr(KindPackageImportNotDefined, name, base, "import %q is not defined", name)
	}

	match, found := BestPatternMatch(pkg.Imports.MapKeys, name)
	if found {
		target := pkg.Imports.Map[match.Key]
		res, rerr := r.ResolveTarget(pkg, target, match.Capture, match.Key, base, true, true, false, conditions)
		if rerr != nil {
			return "", rerr
		}
		if res.Outcome == OutcomeURL {
			return res.URL, nil
		}
	}

	return "", newErr(KindPackageImportNotDefined, name, base, "import %q is not defined", name)
}

// getPackageScopeConfig walks up from base's directory to find the
// nearest enclosing package.json. Implemented here in terms of
// PackageConfigReader alone rather than as its own opaque collaborator
// — its logic is simple enough, and shared enough between C6 and C7's
// "ResolveSelf" step, to live in the core package.
func (r *Resolver) getPackageScopeConfig(base string) (*PackageConfig, *Error) {
	dir, ok := FileURLPath(base)
	if !ok {
		return nil, nil
	}
	dir = parentDir(dir)

	for {
		candidate := dir + "/package.json"
		cfg, err := r.Configs.Read(candidate)
		if err == nil && cfg != nil && cfg.Exists {
			return cfg, nil
		}
		next := parentDir(dir)
		if next == dir {
			return nil, nil
		}
		dir = next
	}
}

func parentDir(p string) string {
	p = strings.TrimSuffix(p, "/")
	idx := strings.LastIndexByte(p, '/')
	if idx <= 0 {
		return "/"
	}
	return p[:idx]
}
