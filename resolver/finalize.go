package resolver

import "strings"

// FinalizeResolution implements C9. isMain selects which of
// PreserveSymlinks/PreserveSymlinksMain governs symlink canonicalization.
func (r *Resolver) FinalizeResolution(resolvedURL string, specifier string, isMain bool) (string, *Error) {
	path, isFile := FileURLPath(resolvedURL)
	if !isFile {
		return resolvedURL, nil
	}

	lower := strings.ToLower(path)
	if strings.Contains(lower, "%2f") || strings.Contains(lower, "%5c") {
		return "", newErr(KindInvalidModuleSpecifier, specifier, resolvedURL,
			"resolved path contains an encoded path separator")
	}

	switch r.Fs.Stat(path) {
	case StatDirectory:
		err := newErr(KindUnsupportedDirectoryImport, specifier, "", "%q resolves to a directory", path)
		err.Attempted = resolvedURL
		return "", err
	case StatMissing:
		if r.Options.WatchReportDependencies && r.Watch != nil {
			r.Watch.ReportMissing(path)
		}
		err := newErr(KindModuleNotFound, specifier, "", "%q does not exist", path)
		err.Attempted = resolvedURL
		return "", err
	}

	preserve := r.Options.PreserveSymlinks
	if isMain {
		preserve = r.Options.PreserveSymlinksMain
	}
	if preserve || r.Realpath == nil {
		return resolvedURL, nil
	}

	canonical, err := r.Realpath.Realpath(path, r.cache)
	if err != nil {
		return resolvedURL, nil
	}
	return FileURLFromPath(canonical) + FileURLSuffix(resolvedURL), nil
}
