package resolver

// ResolveLegacyMain implements C8 LegacyMainResolver: probe the
// extension/index ladder for a package lacking (or not using) `exports`.
func (r *Resolver) ResolveLegacyMain(pkg *PackageConfig, base string) (string, *Error) {
	pjsonURL := FileURLFromPath(pkg.PjsonPath)

	var candidates []string

	if pkg.Main != "" {
		candidates = []string{
			pkg.Main,
			pkg.Main + ".js",
			pkg.Main + ".json",
			pkg.Main + ".node",
			pkg.Main + "/index.js",
			pkg.Main + "/index.json",
			pkg.Main + "/index.node",
		}
	}
	candidates = append(candidates, "./index.js", "./index.json", "./index.node")

	for i, cand := range candidates {
		u, err := resolveRelative(pjsonURL, cand)
		if err != nil {
			continue
		}
		p, _ := FileURLPath(u)
		if r.Fs.Stat(p) == StatFile {
			if pkg.Main == "" || i > 0 {
				r.emitLegacyMainDeprecation(pkg, base, u)
			}
			return u, nil
		}
	}

	return "", newErr(KindModuleNotFound, pkg.Name, base,
		"no main entry point found for package %s", pkg.Name)
}

func (r *Resolver) emitLegacyMainDeprecation(pkg *PackageConfig, base string, resolved string) {
	if r.Format == nil {
		r.deprecate("DEP0151", pkg.PjsonPath, pkg.Name, "legacy main/index resolution used for "+pkg.Name)
		return
	}
	format := r.Format.Probe(resolved, r.Options.DefaultConditions)
	if format == "module" {
		r.deprecate("DEP0151", pkg.PjsonPath, pkg.Name, "legacy main/index resolution used for ES module "+pkg.Name)
	}
}
