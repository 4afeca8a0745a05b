package evidence

import (
	"regexp"

	"github.com/okian/gauge/internal/domain/model"
)

// indicator pairs one ownership signal category with its matching
// predicate, so the detector is an enumerable, exhaustively testable
// set rather than ad-hoc text matching.
type indicator struct {
	signal model.OwnershipSignal
	match  func(text string) bool
}

func phrasePredicate(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

// indicators holds every recognized ownership category. Input text is
// expected to be lower-cased already.
var indicators = []indicator{
	{
		signal: model.SignalIndependentScoping,
		match: phrasePredicate(
			`\b(scoped|proposed|proposal|rfc|design doc|drafted|authored the (plan|spec)|defined the scope)\b`),
	},
	{
		signal: model.SignalGapIdentification,
		match: phrasePredicate(
			`\b(identified|uncovered|spotted|surfaced) (a |the )?(gap|risk|issue|blind spot)\b|\broot[- ]caused?\b`),
	},
	{
		signal: model.SignalDecisionDriving,
		match: phrasePredicate(
			`\b(drove|made|led) the (decision|call|tradeoff)\b|\b(architecture|technical) decision\b|\badr\b|\bchose the approach\b`),
	},
	{
		signal: model.SignalCrossTeamCoordination,
		match: phrasePredicate(
			`\bcross[- ]team\b|\bcoordinated\b|\bpartnered with\b|\baligned (with|across)\b|\bstakeholders?\b`),
	},
	{
		signal: model.SignalMentoring,
		match: phrasePredicate(
			`\b(mentored|onboarded|coached|guided)\b|\bpair(ed)?[- ]programm(ed|ing)\b`),
	},
}

// DetectOwnership scans lower-cased text and returns every ownership
// category whose predicate fires, in declaration order.
func DetectOwnership(text string) []model.OwnershipSignal {
	var found []model.OwnershipSignal
	for _, ind := range indicators {
		if ind.match(text) {
			found = append(found, ind.signal)
		}
	}
	return found
}
