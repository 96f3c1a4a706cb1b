package resolver

import "fmt"

// Kind identifies one of the error categories from the resolution algorithm.
// It intentionally mirrors Node's resolver error codes in spirit, not name:
// callers switch on Kind rather than parsing messages.
type Kind uint8

const (
	KindInvalidArgType Kind = iota
	KindInvalidModuleSpecifier
	KindInvalidPackageConfig
	KindInvalidPackageTarget
	KindPackageSubpathNotExported
	KindPackageImportNotDefined
	KindModuleNotFound
	KindUnsupportedDirectoryImport
	KindNetworkImportDisallowed
	KindInputTypeNotAllowed
	KindManifestDependencyMissing
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgType:
		return "InvalidArgType"
	case KindInvalidModuleSpecifier:
		return "InvalidModuleSpecifier"
	case KindInvalidPackageConfig:
		return "InvalidPackageConfig"
	case KindInvalidPackageTarget:
		return "InvalidPackageTarget"
	case KindPackageSubpathNotExported:
		return "PackageSubpathNotExported"
	case KindPackageImportNotDefined:
		return "PackageImportNotDefined"
	case KindModuleNotFound:
		return "ModuleNotFound"
	case KindUnsupportedDirectoryImport:
		return "UnsupportedDirectoryImport"
	case KindNetworkImportDisallowed:
		return "NetworkImportDisallowed"
	case KindInputTypeNotAllowed:
		return "InputTypeNotAllowed"
	case KindManifestDependencyMissing:
		return "ManifestDependencyMissing"
	default:
		return "Unknown"
	}
}

// Error is the single error type the resolver returns. Every failure path
// in C1-C10 produces one of these rather than a bare error string, so
// callers can branch on Kind via errors.As.
type Error struct {
	Kind       Kind
	Specifier  string
	ParentURL  string
	Attempted  string // for FinalizeResolution failures, the file: URL that did not resolve
	Message    string
	DidYouMean string // optional, filled in by the caller's CJS hint pass
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Specifier != "" {
		msg += fmt.Sprintf(" (specifier %q)", e.Specifier)
	}
	if e.ParentURL != "" {
		msg += fmt.Sprintf(" (from %q)", e.ParentURL)
	}
	if e.DidYouMean != "" {
		msg += fmt.Sprintf(" — did you mean %q?", e.DidYouMean)
	}
	return msg
}

func newErr(kind Kind, specifier, parentURL, format string, args ...any) *Error {
	return &Error{
		Kind:      kind,
		Specifier: specifier,
		ParentURL: parentURL,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Is lets errors.Is(err, Sentinel(KindX)) work without exposing a full
// sentinel error per kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel returns a bare *Error carrying only a Kind, suitable for use
// with errors.Is(err, resolver.Sentinel(resolver.KindModuleNotFound)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
