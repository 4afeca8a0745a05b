package keyword_test

import (
	"testing"

	"github.com/okian/gauge/internal/domain/keyword"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Given a goal title and description", t, func() {
		Convey("When extracting from both fields", func() {
			set := keyword.Extract(
				"Reduce checkout latency",
				"Cut p99 response times for the checkout flow below 200ms",
			)

			Convey("Then title tokens weigh strong", func() {
				So(set["reduce"], ShouldEqual, keyword.TierStrong)
				So(set["checkout"], ShouldEqual, keyword.TierStrong)
			})

			Convey("Then description-only tokens weigh moderate", func() {
				So(set["response"], ShouldEqual, keyword.TierModerate)
				So(set["times"], ShouldEqual, keyword.TierModerate)
			})

			Convey("Then a title token repeated in the body keeps its strong tier", func() {
				So(set["checkout"], ShouldEqual, keyword.TierStrong)
			})

			Convey("Then domain nouns weigh strong wherever they appear", func() {
				So(set["latency"], ShouldEqual, keyword.TierStrong)
			})

			Convey("Then stop-words never become keywords", func() {
				So(set["the"], ShouldEqual, keyword.Tier(0))
				So(set["for"], ShouldEqual, keyword.Tier(0))
			})
		})

		Convey("When a domain noun appears only in the description", func() {
			set := keyword.Extract("Ship faster", "Harden the deployment pipeline security")

			Convey("Then it is promoted to strong", func() {
				So(set["deployment"], ShouldEqual, keyword.TierStrong)
				So(set["pipeline"], ShouldEqual, keyword.TierStrong)
				So(set["security"], ShouldEqual, keyword.TierStrong)
			})
		})

		Convey("When the same text is extracted twice", func() {
			a := keyword.Extract("Improve API reliability", "Stabilize the public API")
			b := keyword.Extract("Improve API reliability", "Stabilize the public API")

			So(a, ShouldResemble, b)
		})
	})
}

func TestTokenize(t *testing.T) {
	Convey("Given free text", t, func() {
		Convey("When tokenizing mixed-case punctuated text", func() {
			toks := keyword.Tokenize("Migrate the Users-DB to Postgres 15!")

			Convey("Then tokens are lower-cased and split on non-alphanumerics", func() {
				So(toks, ShouldContain, "migrate")
				So(toks, ShouldContain, "users")
				So(toks, ShouldContain, "postgres")
			})

			Convey("Then short tokens and stop-words are dropped", func() {
				So(toks, ShouldNotContain, "db")
				So(toks, ShouldNotContain, "to")
				So(toks, ShouldNotContain, "the")
				So(toks, ShouldNotContain, "15")
			})
		})

		Convey("When the text is empty", func() {
			So(keyword.Tokenize(""), ShouldBeEmpty)
		})
	})
}
