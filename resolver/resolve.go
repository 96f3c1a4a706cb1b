package resolver

import "strings"

// Resolve implements C10 ModuleResolve, the top-level dispatcher.
// parentURL must always be supplied by the caller (even for a "no
// parent" main entry point, the caller supplies a synthetic base such as
// file:///cwd/ — see root/cmd_resolve.go) so the core algorithm never has
// to special-case "no base".
func (r *Resolver) Resolve(specifier string, parentURL string, conditions ConditionSet, isMain bool) (*ResolveResult, *Error) {
	if r.Options.InputTypeSet && isMain {
		if _, isFile := FileURLPath(parentURL); isFile {
			return nil, newErr(KindInputTypeNotAllowed, specifier, parentURL,
				"inputType is set; file entry points are not allowed")
		}
	}

	if r.Policy != nil {
		if mapper := r.Policy.GetDependencyMapper(parentURL); mapper != nil {
			if redirect, ok, handled := mapper.Resolve(specifier); handled {
				if !ok {
					return nil, newErr(KindManifestDependencyMissing, specifier, parentURL,
						"policy manifest denies %q from %s", specifier, parentURL)
				}
				return &ResolveResult{URL: redirect, Format: r.probeFormat(redirect, conditions)}, nil
			}
		}
	}

	parentIsRemote := isRemoteScheme(parentURL)

	kind := ClassifySpecifier(specifier)

	if kind == KindURL {
		scheme := urlScheme(specifier)
		switch scheme {
		case "data":
			return &ResolveResult{URL: specifier, Format: ""}, nil
		case "http", "https":
			if !r.Options.ExperimentalNetworkImports {
				return nil, newErr(KindNetworkImportDisallowed, specifier, parentURL,
					"network imports are disabled")
			}
			if parentIsRemote && !isRemoteScheme(specifier) {
				return nil, newErr(KindNetworkImportDisallowed, specifier, parentURL,
					"a remote parent may not import a non-remote scheme")
			}
			return &ResolveResult{URL: specifier, Format: r.probeFormat(specifier, conditions)}, nil
		case "node":
			if parentIsRemote {
				return nil, newErr(KindNetworkImportDisallowed, specifier, parentURL,
					"a remote parent may not import a built-in module")
			}
			return &ResolveResult{URL: specifier, Format: "builtin"}, nil
		}
	}

	if parentIsRemote {
		switch kind {
		case KindRelative, KindAbsolute:
			// allowed: resolved below against the remote parent
		case KindURL:
			if !isRemoteScheme(specifier) {
				return nil, newErr(KindNetworkImportDisallowed, specifier, parentURL,
					"a remote parent may not reach into a local or opaque scheme")
			}
		default:
			return nil, newErr(KindNetworkImportDisallowed, specifier, parentURL,
				"a remote parent may only import relative, absolute-path, or remote specifiers")
		}
	}

	var resolvedURL string
	var rerr *Error

	switch kind {
	case KindInvalid:
		return nil, newErr(KindInvalidModuleSpecifier, specifier, parentURL, "empty specifier")
	case KindPrivate:
		if parentIsRemote {
			return nil, newErr(KindInvalidModuleSpecifier, specifier, parentURL,
				"private '#' specifiers are not legal from a remote parent")
		}
		resolvedURL, rerr = r.ResolveImports(specifier, parentURL, conditions)
	case KindRelative, KindAbsolute:
		// Both resolve via new URL(specifier, parentURL): a relative
		// reference resolves against the parent's directory, an
		// absolute-path one ("/...") replaces the whole path but keeps
		// the parent's scheme/authority — so a remote parent stays remote.
		u, joinErr := resolveRelative(parentURL, specifier)
		if joinErr != nil {
			return nil, newErr(KindInvalidModuleSpecifier, specifier, parentURL, "%v", joinErr)
		}
		resolvedURL = u
	case KindBareName:
		resolvedURL, rerr = r.ResolvePackage(specifier, parentURL, conditions)
	case KindURL:
		resolvedURL = specifier
	}

	if rerr != nil {
		rerr.ParentURL = parentURL
		r.annotateHint(rerr)
		return nil, rerr
	}

	final, ferr := r.FinalizeResolution(resolvedURL, specifier, isMain)
	if ferr != nil {
		ferr.ParentURL = parentURL
		r.annotateHint(ferr)
		return nil, ferr
	}

	return &ResolveResult{URL: final, Format: r.probeFormat(final, conditions)}, nil
}

func (r *Resolver) probeFormat(u string, conditions ConditionSet) string {
	if r.Format == nil {
		return ""
	}
	return r.Format.Probe(u, conditions)
}

// annotateHint attaches a best-effort "did you mean" suggestion to
// ModuleNotFound/UnsupportedDirectoryImport errors. Failures of the hint
// collaborator are always ignored,.
func (r *Resolver) annotateHint(err *Error) {
	if r.Hinter == nil {
		return
	}
	if err.Kind != KindModuleNotFound && err.Kind != KindUnsupportedDirectoryImport {
		return
	}
	failedURL := err.Attempted
	if failedURL == "" {
		failedURL = err.ParentURL
	}
	if path, ok := FileURLPath(failedURL); ok {
		if suggestion, found := r.Hinter.Suggest(path); found {
			err.DidYouMean = suggestion
		}
	}
}

func isRemoteScheme(u string) bool {
	scheme := urlScheme(u)
	return scheme == "http" || scheme == "https"
}

func urlScheme(u string) string {
	idx := strings.IndexByte(u, ':')
	if idx <= 0 {
		return ""
	}
	return u[:idx]
}
