package evidence

import (
	"regexp"
	"sort"
)

// Category separates feature work from tests and from noise that should
// never count as goal evidence.
type Category string

// Item categories. Generated, vendor, deps and build output are noise.
const (
	CategoryFeature   Category = "feature"
	CategoryTest      Category = "test"
	CategoryGenerated Category = "generated"
	CategoryVendor    Category = "vendor"
	CategoryDeps      Category = "deps"
	CategoryBuild     Category = "build"
)

// IsNoise reports whether items of this category are excluded from
// evidence matching.
func (c Category) IsNoise() bool {
	switch c {
	case CategoryGenerated, CategoryVendor, CategoryDeps, CategoryBuild:
		return true
	default:
		return false
	}
}

type pathRule struct {
	re  *regexp.Regexp
	tag string
}

// noiseRules identify lock files, vendored trees, generated code and
// build output. Checked before test rules so a generated test file
// still counts as generated.
var noiseRules = []pathRule{
	{regexp.MustCompile(`(^|/)go\.sum$`), string(CategoryDeps)},
	{regexp.MustCompile(`(^|/)(package-lock\.json|yarn\.lock|pnpm-lock\.yaml|Gemfile\.lock|poetry\.lock|Cargo\.lock)$`), string(CategoryDeps)},
	{regexp.MustCompile(`(^|/)(vendor|node_modules)/`), string(CategoryVendor)},
	{regexp.MustCompile(`\.pb\.go$|_gen\.go$|_generated\.go$|\.generated\.|(^|/)generated/|mock_.*\.go$|_mock\.go$|__generated__/`), string(CategoryGenerated)},
	{regexp.MustCompile(`(^|/)(dist|build)/|\.min\.(js|css)$|\.bundle\.js$`), string(CategoryBuild)},
	{regexp.MustCompile(`\.snap$|__snapshots__/`), string(CategoryGenerated)},
}

var testRule = regexp.MustCompile(
	`(^|/)(tests?|__tests__|spec|e2e)/|_test\.(go|py)$|\.(test|spec)\.(ts|tsx|js|jsx)$|_spec\.rb$|(^|/)test_[^/]*\.py$`)

// areaRules infer a coarse work area from a changed path.
var areaRules = []pathRule{
	{regexp.MustCompile(`(^|/)(web|client|app|frontend)/|\.(tsx|jsx|vue|svelte|css|scss|sass|less)$|(^|/)src/(components|pages|views|ui)/`), "frontend"},
	{regexp.MustCompile(`(^|/)(cmd|internal|pkg)/|(^|/)src/(api|server|services|handlers)/|(^|/)(controllers?|models?)/`), "backend"},
	{regexp.MustCompile(`(^|/)(infra|infrastructure|terraform|k8s|kubernetes|helm|charts)/|\.(tf|tfvars)$|(^|/)\.github/workflows/|Dockerfile|docker-compose`), "infrastructure"},
	{regexp.MustCompile(`(^|/)(data|analytics|etl|pipelines|migrations?)/|\.sql$`), "data"},
	{regexp.MustCompile(`(^|/)(docs?|documentation)/|\.(md|rst|adoc)$|README|CHANGELOG`), "documentation"},
	{regexp.MustCompile(`(^|/)(config|configs|settings)/|\.(yaml|yml|toml|ini)$`), "configuration"},
}

// CategorizeFile buckets a single path.
func CategorizeFile(path string) Category {
	for _, r := range noiseRules {
		if r.re.MatchString(path) {
			return Category(r.tag)
		}
	}
	if testRule.MatchString(path) {
		return CategoryTest
	}
	return CategoryFeature
}

// CategorizeItem rolls file categories up to the item. An item with no
// file list defaults to feature work; an item is noise only when every
// file is noise, and test only when every non-noise file is a test.
func CategorizeItem(files []string) Category {
	if len(files) == 0 {
		return CategoryFeature
	}
	tests, noise := 0, 0
	for _, f := range files {
		switch c := CategorizeFile(f); {
		case c.IsNoise():
			noise++
		case c == CategoryTest:
			tests++
		}
	}
	switch {
	case noise == len(files):
		return CategoryGenerated
	case tests+noise == len(files):
		return CategoryTest
	default:
		return CategoryFeature
	}
}

// AreasOf returns the distinct work areas touched by the files, sorted
// for deterministic output. Used for narrative annotation only.
func AreasOf(files []string) []string {
	seen := make(map[string]struct{})
	for _, f := range files {
		for _, r := range areaRules {
			if r.re.MatchString(f) {
				seen[r.tag] = struct{}{}
				break
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
