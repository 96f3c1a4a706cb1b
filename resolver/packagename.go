package resolver

import "strings"

// ParsedPackageName is the (name, subpath, scoped) triple C2 extracts from
// a bare specifier.
type ParsedPackageName struct {
	Name    string
	Subpath string // always starts with "." — either "." or "./..."
	Scoped  bool
}

// ParsePackageName implements C2 PackageNameParser.
func ParsePackageName(specifier string) (ParsedPackageName, *Error) {
	scoped := strings.HasPrefix(specifier, "@")

	firstSlash := strings.IndexByte(specifier, '/')

	var name string
	if scoped {
		if firstSlash < 0 {
			return ParsedPackageName{}, newErr(KindInvalidModuleSpecifier, specifier, "",
				"scoped package name %q is missing a '/'", specifier)
		}
		rest := specifier[firstSlash+1:]
		secondSlashRel := strings.IndexByte(rest, '/')
		if secondSlashRel < 0 {
			name = specifier
		} else {
			name = specifier[:firstSlash+1+secondSlashRel]
		}
	} else {
		if firstSlash < 0 {
			name = specifier
		} else {
			name = specifier[:firstSlash]
		}
	}

	if strings.HasPrefix(name, ".") || strings.Contains(name, "%") || strings.Contains(name, "\\") {
		return ParsedPackageName{}, newErr(KindInvalidModuleSpecifier, specifier, "",
			"invalid package name %q parsed from specifier %q", name, specifier)
	}

	subpath := "." + specifier[len(name):]

	return ParsedPackageName{Name: name, Subpath: subpath, Scoped: scoped}, nil
}
