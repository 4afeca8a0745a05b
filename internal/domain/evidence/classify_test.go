package evidence_test

import (
	"testing"

	"github.com/okian/gauge/internal/domain/evidence"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategorizeFile(t *testing.T) {
	Convey("Given changed file paths", t, func() {
		Convey("Then lock files classify as dependency noise", func() {
			So(evidence.CategorizeFile("go.sum"), ShouldEqual, evidence.CategoryDeps)
			So(evidence.CategorizeFile("web/package-lock.json"), ShouldEqual, evidence.CategoryDeps)
			So(evidence.CategorizeFile("Cargo.lock"), ShouldEqual, evidence.CategoryDeps)
		})

		Convey("Then vendored trees classify as vendor noise", func() {
			So(evidence.CategorizeFile("vendor/golang.org/x/sys/unix/syscall.go"), ShouldEqual, evidence.CategoryVendor)
			So(evidence.CategorizeFile("web/node_modules/react/index.js"), ShouldEqual, evidence.CategoryVendor)
		})

		Convey("Then generated code classifies as generated", func() {
			So(evidence.CategorizeFile("internal/api/service.pb.go"), ShouldEqual, evidence.CategoryGenerated)
			So(evidence.CategorizeFile("internal/store/mock_repo.go"), ShouldEqual, evidence.CategoryGenerated)
			So(evidence.CategorizeFile("ui/__snapshots__/button.snap"), ShouldEqual, evidence.CategoryGenerated)
		})

		Convey("Then build output classifies as build", func() {
			So(evidence.CategorizeFile("dist/app.min.js"), ShouldEqual, evidence.CategoryBuild)
			So(evidence.CategorizeFile("web/app.bundle.js"), ShouldEqual, evidence.CategoryBuild)
		})

		Convey("Then test files classify as test", func() {
			So(evidence.CategorizeFile("internal/app/service_test.go"), ShouldEqual, evidence.CategoryTest)
			So(evidence.CategorizeFile("src/checkout.spec.ts"), ShouldEqual, evidence.CategoryTest)
			So(evidence.CategorizeFile("tests/test_flow.py"), ShouldEqual, evidence.CategoryTest)
		})

		Convey("Then a generated test file still counts as generated", func() {
			So(evidence.CategorizeFile("internal/api/handlers_gen.go"), ShouldEqual, evidence.CategoryGenerated)
		})

		Convey("Then everything else is feature work", func() {
			So(evidence.CategorizeFile("internal/payments/retry.go"), ShouldEqual, evidence.CategoryFeature)
			So(evidence.CategorizeFile("docs/runbook.md"), ShouldEqual, evidence.CategoryFeature)
		})
	})
}

func TestCategorizeItem(t *testing.T) {
	Convey("Given an evidence item's file list", t, func() {
		Convey("When the item carries no files", func() {
			So(evidence.CategorizeItem(nil), ShouldEqual, evidence.CategoryFeature)
		})

		Convey("When every file is noise", func() {
			c := evidence.CategorizeItem([]string{"go.sum", "vendor/modules.txt"})

			So(c, ShouldEqual, evidence.CategoryGenerated)
			So(c.IsNoise(), ShouldBeTrue)
		})

		Convey("When the non-noise files are all tests", func() {
			c := evidence.CategorizeItem([]string{"internal/app/service_test.go", "go.sum"})

			So(c, ShouldEqual, evidence.CategoryTest)
			So(c.IsNoise(), ShouldBeFalse)
		})

		Convey("When any feature file is present", func() {
			c := evidence.CategorizeItem([]string{"internal/app/service.go", "internal/app/service_test.go", "go.sum"})

			So(c, ShouldEqual, evidence.CategoryFeature)
		})
	})
}

func TestAreasOf(t *testing.T) {
	Convey("Given changed paths across the stack", t, func() {
		areas := evidence.AreasOf([]string{
			"web/src/components/Cart.tsx",
			"internal/checkout/flow.go",
			"terraform/main.tf",
			"docs/checkout.md",
		})

		Convey("Then distinct areas come back sorted", func() {
			So(areas, ShouldResemble, []string{"backend", "documentation", "frontend", "infrastructure"})
		})
	})

	Convey("Given paths matching no area rule", t, func() {
		So(evidence.AreasOf([]string{"LICENSE"}), ShouldBeNil)
	})
}
