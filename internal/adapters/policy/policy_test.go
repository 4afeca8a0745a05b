package policy_test

import (
	"errors"
	"testing"

	"github.com/okian/gauge/internal/adapters/policy"
	"github.com/okian/gauge/internal/domain/alignment"
	"github.com/okian/gauge/internal/domain/band"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleDoc = `
evidence_policy:
  name: custom
  bands:
    - {min: 0, max: 0, execution: 0, ownership: 0}
    - {min: 1, max: 5, execution: 12, ownership: 16}
    - {min: 6, max: -1, execution: 24, ownership: 40}
alignment_bands:
  - {lo: 0, hi: 50, label: "Behind"}
  - {lo: 51, hi: 100, label: "Ahead"}
`

func TestParse(t *testing.T) {
	Convey("Given a well-formed policy document", t, func() {
		o, err := policy.Parse([]byte(sampleDoc))

		Convey("Then the evidence table loads validated", func() {
			So(err, ShouldBeNil)
			So(o.Evidence, ShouldNotBeNil)
			So(o.Evidence.Name, ShouldEqual, "custom")
			So(o.Evidence.Points(3, false), ShouldEqual, 12)
			So(o.Evidence.Points(9, true), ShouldEqual, 40)
		})

		Convey("Then the alignment band table loads validated", func() {
			So(o.AlignmentBands, ShouldNotBeNil)
			So(o.AlignmentBands.Lookup(50), ShouldEqual, "Behind")
			So(o.AlignmentBands.Lookup(51), ShouldEqual, "Ahead")
		})

		Convey("Then absent sections stay nil", func() {
			So(o.CompetencyBands, ShouldBeNil)
		})
	})

	Convey("Given an empty document", t, func() {
		o, err := policy.Parse([]byte(""))

		Convey("Then every override stays nil", func() {
			So(err, ShouldBeNil)
			So(o.Evidence, ShouldBeNil)
			So(o.AlignmentBands, ShouldBeNil)
			So(o.CompetencyBands, ShouldBeNil)
		})
	})

	Convey("Given a band table that does not partition the range", t, func() {
		doc := `
competency_bands:
  - {lo: 0, hi: 40, label: "Low"}
  - {lo: 60, hi: 100, label: "High"}
`
		_, err := policy.Parse([]byte(doc))

		Convey("Then parsing fails with the band config error", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})
	})

	Convey("Given an evidence table with a count gap", t, func() {
		doc := `
evidence_policy:
  name: gappy
  bands:
    - {min: 0, max: 2, execution: 5, ownership: 5}
    - {min: 7, max: -1, execution: 10, ownership: 10}
`
		_, err := policy.Parse([]byte(doc))

		So(errors.Is(err, alignment.ErrInvalidPolicy), ShouldBeTrue)
	})

	Convey("Given bytes that are not YAML", t, func() {
		_, err := policy.Parse([]byte("{{nope"))

		So(errors.Is(err, policy.ErrBadPolicy), ShouldBeTrue)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a missing policy file", t, func() {
		_, err := policy.Load("testdata/does-not-exist.yaml")

		So(errors.Is(err, policy.ErrReadPolicy), ShouldBeTrue)
	})
}
