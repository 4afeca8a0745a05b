package evidence_test

import (
	"testing"

	"github.com/okian/gauge/internal/domain/evidence"
	"github.com/okian/gauge/internal/domain/keyword"
	"github.com/okian/gauge/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatchItem(t *testing.T) {
	Convey("Given a goal keyword set", t, func() {
		kws := keyword.Extract(
			"Improve checkout reliability",
			"Reduce payment errors and tighten monitoring",
		)

		Convey("When an item's title carries a strong keyword", func() {
			m := evidence.MatchItem(model.EvidenceItem{
				ID:    "e1",
				Title: "Fix checkout double-submit race",
			}, kws)

			Convey("Then the match takes the strongest keyword's tier", func() {
				So(m.Strength, ShouldEqual, evidence.StrengthStrong)
				So(m.Strength.String(), ShouldEqual, "strong")
			})
		})

		Convey("When only a moderate body keyword appears", func() {
			m := evidence.MatchItem(model.EvidenceItem{
				ID:    "e2",
				Title: "Clean up payment logging",
			}, kws)

			So(m.Strength, ShouldEqual, evidence.StrengthModerate)
		})

		Convey("When nothing overlaps the keyword set", func() {
			m := evidence.MatchItem(model.EvidenceItem{
				ID:    "e3",
				Title: "Bump linter version",
			}, kws)

			So(m.Strength, ShouldEqual, evidence.StrengthNone)
			So(m.HasOwnership(), ShouldBeFalse)
		})

		Convey("When the item text carries ownership language", func() {
			m := evidence.MatchItem(model.EvidenceItem{
				ID:    "e4",
				Title: "Proposed the checkout failover plan",
				Body:  "Coordinated the rollout with the platform team",
			}, kws)

			Convey("Then the detected signals ride along with the match", func() {
				So(m.HasOwnership(), ShouldBeTrue)
				So(m.Signals, ShouldContain, model.SignalIndependentScoping)
				So(m.Signals, ShouldContain, model.SignalCrossTeamCoordination)
			})
		})

		Convey("When the item's files are pure noise", func() {
			m := evidence.MatchItem(model.EvidenceItem{
				ID:    "e5",
				Title: "Update checkout dependencies",
				Files: []string{"go.sum", "package-lock.json"},
			}, kws)

			Convey("Then the category marks it as noise", func() {
				So(m.Category.IsNoise(), ShouldBeTrue)
			})
		})
	})
}

func TestDetectOwnership(t *testing.T) {
	Convey("Given lower-cased evidence text", t, func() {
		cases := map[string]model.OwnershipSignal{
			"scoped the migration and drafted an rfc":      model.SignalIndependentScoping,
			"identified a gap in the alerting coverage":    model.SignalGapIdentification,
			"root-caused the checkout outage":              model.SignalGapIdentification,
			"drove the decision to split the service":      model.SignalDecisionDriving,
			"wrote an adr for the storage layer":           model.SignalDecisionDriving,
			"coordinated the rollout across three squads":  model.SignalCrossTeamCoordination,
			"aligned with stakeholders on the cutover":     model.SignalCrossTeamCoordination,
			"mentored two new hires through onboarding":    model.SignalMentoring,
			"paired-programmed on the gnarly parser bits":  model.SignalMentoring,
		}

		Convey("Then each indicator category fires on its phrasing", func() {
			for text, want := range cases {
				So(evidence.DetectOwnership(text), ShouldContain, want)
			}
		})

		Convey("Then plain execution language fires nothing", func() {
			So(evidence.DetectOwnership("fixed a null pointer in the cart handler"), ShouldBeEmpty)
			So(evidence.DetectOwnership("bumped the linter version"), ShouldBeEmpty)
		})

		Convey("Then signals come back in declaration order", func() {
			got := evidence.DetectOwnership("proposed the plan, coordinated the rollout, mentored the new hire")

			So(got, ShouldResemble, []model.OwnershipSignal{
				model.SignalIndependentScoping,
				model.SignalCrossTeamCoordination,
				model.SignalMentoring,
			})
		})
	})
}
