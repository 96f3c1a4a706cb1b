package resolver

import "testing"

func TestResolveTargetStringSimple(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	fs.addFile("/app/lib/index.js")
	r := newTestResolver(fs)

	pkg, _ := fs.Read("/app/package.json")
	res, err := r.ResolveTarget(pkg, StringTarget("./lib/index.js"), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeURL || res.URL != "file:///app/lib/index.js" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestResolveTargetStringEscapesPackageDirectory(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	_, err := r.ResolveTarget(pkg, StringTarget("../escape.js"), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err == nil {
		t.Fatalf("expected an error resolving outside the package directory")
	}
	if err.Kind != KindInvalidPackageTarget {
		t.Errorf("expected InvalidPackageTarget, got %v", err.Kind)
	}
}

func TestResolveTargetBareNodeModulesSegmentIsDeprecatedNotInvalid(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	res, err := r.ResolveTarget(pkg, StringTarget("./node_modules/evil.js"), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("bare node_modules segment is the deprecated form, not invalid: %v", err)
	}
	if res.Outcome != OutcomeURL {
		t.Errorf("expected a resolved URL, got %+v", res)
	}
}

func TestResolveTargetDotSegmentIsInvalid(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	_, err := r.ResolveTarget(pkg, StringTarget("./../escape.js"), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err == nil || err.Kind != KindInvalidPackageTarget {
		t.Fatalf("expected InvalidPackageTarget for a '..' segment, got %v", err)
	}
}

func TestResolveTargetListSkipsInvalidThenSucceeds(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	list := ListTarget(StringTarget("bad-without-dot-slash"), StringTarget("./lib/ok.js"))
	res, err := r.ResolveTarget(pkg, list, "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeURL || res.URL != "file:///app/lib/ok.js" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestResolveTargetListEmptyIsNull(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	res, err := r.ResolveTarget(pkg, ListTarget(), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeNull {
		t.Errorf("expected Null for an empty list, got %+v", res)
	}
}

func TestResolveTargetListRemembersLastOutcomeNotFirstBlock(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	list := ListTarget(NullTarget(), StringTarget("bad-without-dot-slash"))
	_, err := r.ResolveTarget(pkg, list, "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err == nil || err.Kind != KindInvalidPackageTarget {
		t.Fatalf("expected the trailing InvalidPackageTarget to win over an earlier Null, got %v", err)
	}
}

func TestResolveTargetMapConditionOrder(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	m := MapTarget([]string{"node", "default"}, map[string]Target{
		"node":    StringTarget("./lib/node.js"),
		"default": StringTarget("./lib/default.js"),
	})
	res, err := r.ResolveTarget(pkg, m, "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "file:///app/lib/node.js" {
		t.Errorf("expected the 'node' branch to win over 'default', got %+v", res)
	}
}

func TestResolveTargetMapRejectsNumericKey(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	m := MapTarget([]string{"0"}, map[string]Target{"0": StringTarget("./lib/zero.js")})
	_, err := r.ResolveTarget(pkg, m, "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err == nil || err.Kind != KindInvalidPackageConfig {
		t.Fatalf("expected InvalidPackageConfig for a numeric key, got %v", err)
	}
}

func TestResolveTargetNullBlocks(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	res, err := r.ResolveTarget(pkg, NullTarget(), "", ".", FileURLFromPath("/app/package.json"), false, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeNull {
		t.Errorf("expected Null, got %+v", res)
	}
}

func TestResolveTargetPatternSubstitution(t *testing.T) {
	fs := newFakeFS()
	fs.pkgDir("/app", PackageConfig{Name: "app"})
	r := newTestResolver(fs)
	pkg, _ := fs.Read("/app/package.json")

	res, err := r.ResolveTarget(pkg, StringTarget("./lib/*.js"), "widgets/button", "./lib/*", FileURLFromPath("/app/package.json"), true, false, false, DefaultConditions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "file:///app/lib/widgets/button.js" {
		t.Errorf("unexpected pattern substitution result %+v", res)
	}
}
