package band_test

import (
	"errors"
	"testing"

	"github.com/okian/gauge/internal/domain/band"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTableConstruction(t *testing.T) {
	Convey("Given candidate band intervals", t, func() {
		Convey("When they partition [0,100] cleanly", func() {
			tbl, err := band.New([]band.Interval{
				{Lo: 0, Hi: 20, Label: "low"},
				{Lo: 21, Hi: 60, Label: "mid"},
				{Lo: 61, Hi: 100, Label: "high"},
			})

			Convey("Then construction succeeds", func() {
				So(err, ShouldBeNil)
				So(tbl, ShouldNotBeNil)
				So(tbl.Labels(), ShouldResemble, []string{"low", "mid", "high"})
			})
		})

		Convey("When the intervals leave a gap", func() {
			_, err := band.New([]band.Interval{
				{Lo: 0, Hi: 20, Label: "low"},
				{Lo: 22, Hi: 100, Label: "high"},
			})

			Convey("Then construction fails with the config error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
			})
		})

		Convey("When the intervals overlap", func() {
			_, err := band.New([]band.Interval{
				{Lo: 0, Hi: 50, Label: "low"},
				{Lo: 40, Hi: 100, Label: "high"},
			})

			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})

		Convey("When the table stops short of 100", func() {
			_, err := band.New([]band.Interval{
				{Lo: 0, Hi: 20, Label: "low"},
				{Lo: 21, Hi: 90, Label: "high"},
			})

			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})

		Convey("When an interval has zero length", func() {
			_, err := band.New([]band.Interval{
				{Lo: 0, Hi: 0, Label: "point"},
				{Lo: 1, Hi: 100, Label: "rest"},
			})

			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})

		Convey("When an interval has no label", func() {
			_, err := band.New([]band.Interval{
				{Lo: 0, Hi: 100, Label: ""},
			})

			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})

		Convey("When the interval list is empty", func() {
			_, err := band.New(nil)

			So(errors.Is(err, band.ErrScoreBandConfig), ShouldBeTrue)
		})
	})
}

func TestTableLookup(t *testing.T) {
	Convey("Given a validated three-band table", t, func() {
		tbl := band.MustNew([]band.Interval{
			{Lo: 0, Hi: 20, Label: "low"},
			{Lo: 21, Hi: 60, Label: "mid"},
			{Lo: 61, Hi: 100, Label: "high"},
		})

		Convey("Then every boundary score maps to exactly one label", func() {
			So(tbl.Lookup(0), ShouldEqual, "low")
			So(tbl.Lookup(20), ShouldEqual, "low")
			So(tbl.Lookup(21), ShouldEqual, "mid")
			So(tbl.Lookup(60), ShouldEqual, "mid")
			So(tbl.Lookup(61), ShouldEqual, "high")
			So(tbl.Lookup(100), ShouldEqual, "high")
		})

		Convey("Then out-of-range scores clamp to the edges", func() {
			So(tbl.Lookup(-5), ShouldEqual, "low")
			So(tbl.Lookup(250), ShouldEqual, "high")
		})

		Convey("Then ranks follow table order", func() {
			So(tbl.Rank("low"), ShouldEqual, 0)
			So(tbl.Rank("high"), ShouldEqual, 2)
			So(tbl.Rank("unknown"), ShouldEqual, -1)
		})

		Convey("Then demotion steps one band down and bottoms out", func() {
			So(tbl.Demote("high"), ShouldEqual, "mid")
			So(tbl.Demote("mid"), ShouldEqual, "low")
			So(tbl.Demote("low"), ShouldEqual, "low")
		})

		Convey("Then ceilings report the interval upper bounds", func() {
			So(tbl.Ceiling("low"), ShouldEqual, 20)
			So(tbl.Ceiling("mid"), ShouldEqual, 60)
			So(tbl.Ceiling("unknown"), ShouldEqual, 100)
		})

		Convey("Then LabelAt clamps ranks to the table edges", func() {
			So(tbl.LabelAt(-1), ShouldEqual, "low")
			So(tbl.LabelAt(7), ShouldEqual, "high")
		})
	})
}
