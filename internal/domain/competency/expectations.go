package competency

// levelExpectations holds the score each engineer level is expected to
// show per competency. Unlisted levels get no vs-target label.
var levelExpectations = map[string]map[Competency]int{
	"P2": {
		ExecutionDelivery:     35,
		SkillsKnowledge:       30,
		TeamworkCommunication: 30,
		InfluenceLeadership:   15,
	},
	"P3": {
		ExecutionDelivery:     45,
		SkillsKnowledge:       40,
		TeamworkCommunication: 40,
		InfluenceLeadership:   25,
	},
	"P4": {
		ExecutionDelivery:     55,
		SkillsKnowledge:       55,
		TeamworkCommunication: 50,
		InfluenceLeadership:   45,
	},
	"P5": {
		ExecutionDelivery:     60,
		SkillsKnowledge:       65,
		TeamworkCommunication: 55,
		InfluenceLeadership:   60,
	},
}

// defaultExpectation applies when a level is known but the competency
// has no explicit threshold.
const defaultExpectation = 50

// vsTargetTolerance widens the Meeting band on both sides.
const vsTargetTolerance = 15

// Vs-target labels.
const (
	TargetExceeding  = "Exceeding"
	TargetMeeting    = "Meeting"
	TargetDeveloping = "Developing"
	TargetGap        = "Gap"
)

// VsTarget compares a score against the expectation for the actor's
// level. Returns "" when the level is unknown.
func VsTarget(score int, comp Competency, level string) string {
	exp, ok := levelExpectations[level]
	if !ok {
		return ""
	}
	threshold, ok := exp[comp]
	if !ok {
		threshold = defaultExpectation
	}
	switch {
	case score >= threshold+vsTargetTolerance:
		return TargetExceeding
	case score >= threshold:
		return TargetMeeting
	case score >= threshold-vsTargetTolerance:
		return TargetDeveloping
	default:
		return TargetGap
	}
}
