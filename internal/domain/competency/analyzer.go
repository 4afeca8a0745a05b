package competency

import (
	"math"
	"regexp"
	"strings"

	"github.com/okian/gauge/internal/domain/model"
)

// Competency names the four scored competency areas.
type Competency string

// Competency areas.
const (
	ExecutionDelivery     Competency = "Execution & Delivery"
	SkillsKnowledge       Competency = "Skills & Knowledge"
	TeamworkCommunication Competency = "Teamwork & Communication"
	InfluenceLeadership   Competency = "Influence & Leadership"
)

// Level grades the strength of one competency signal.
type Level string

// Signal levels and their point values.
const (
	LevelStrong   Level = "strong"
	LevelModerate Level = "moderate"
	LevelWeak     Level = "weak"
)

var levelPoints = map[Level]float64{
	LevelStrong:   20,
	LevelModerate: 12,
	LevelWeak:     5,
}

// Signal is one detected competency indicator from an evidence item.
type Signal struct {
	Competency Competency
	Level      Level
	Type       string // e.g. "text_pattern", "volume", "magnitude"
	Reason     string
}

// Analysis is the raw analyzer output for one competency. Scores trend
// high by construction; the Recalibrator is the corrective.
type Analysis struct {
	Competency Competency
	Score      int
	Signals    []Signal
}

type textRule struct {
	re     *regexp.Regexp
	reason string
	level  Level
}

// textRules map evidence text to competency signals. At most one rule
// fires per competency per item.
var textRules = map[Competency][]textRule{
	ExecutionDelivery: {
		{regexp.MustCompile(`\b(fix|bug|patch|hotfix|resolve)\b`), "bug fixing", LevelModerate},
		{regexp.MustCompile(`\b(implement|add|create|build|ship)\b`), "feature delivery", LevelModerate},
		{regexp.MustCompile(`\b(refactor|optimize|improve|performance)\b`), "code improvement", LevelModerate},
		{regexp.MustCompile(`\b(migrate|upgrade|update)\b`), "system modernization", LevelModerate},
		{regexp.MustCompile(`\b(release|deploy|rollout)\b`), "release management", LevelStrong},
	},
	SkillsKnowledge: {
		{regexp.MustCompile(`\b(architecture|design|pattern)\b`), "architectural thinking", LevelStrong},
		{regexp.MustCompile(`\b(security|auth|encryption|vulnerability)\b`), "security expertise", LevelStrong},
		{regexp.MustCompile(`\b(docker|kubernetes|k8s|container)\b`), "container expertise", LevelStrong},
		{regexp.MustCompile(`\b(test|testing|coverage|spec)\b`), "testing discipline", LevelModerate},
		{regexp.MustCompile(`\b(api|endpoint|graphql|rest)\b`), "api design", LevelModerate},
		{regexp.MustCompile(`\b(database|query|index|schema)\b`), "database knowledge", LevelModerate},
		{regexp.MustCompile(`\b(ci|cd|pipeline|workflow)\b`), "devops", LevelModerate},
	},
	TeamworkCommunication: {
		{regexp.MustCompile(`\b(doc|docs|documentation|readme)\b`), "documentation", LevelModerate},
		{regexp.MustCompile(`\b(pair|collaborate|together)\b`), "collaboration", LevelModerate},
		{regexp.MustCompile(`\b(review|feedback|suggestion)\b`), "review engagement", LevelWeak},
	},
	InfluenceLeadership: {
		{regexp.MustCompile(`\b(rfc|proposal|design doc)\b`), "technical proposals", LevelStrong},
		{regexp.MustCompile(`\b(mentor|onboard|guide)\b`), "mentorship", LevelStrong},
		{regexp.MustCompile(`\b(initiative|project|epic)\b`), "project leadership", LevelModerate},
		{regexp.MustCompile(`\b(standard|convention|pattern)\b`), "setting standards", LevelModerate},
	},
}

// Volume thresholds for delivery signals.
const (
	volumeStrongCount   = 10
	volumeModerateCount = 5
)

// Magnitude thresholds feeding the impact multiplier.
const (
	magnitudeLarge = 1000
	magnitudeBig   = 500
)

// Soft cap parameters: scores above 60 are compressed so the raw scale
// asymptotically approaches 85, reserving the rest for exceptional cases.
const (
	softCapKnee  = 60.0
	softCapCeil  = 85.0
	softCapScale = 30.0
)

// Analyze maps evidence items to raw per-competency scores using
// diminishing returns per signal type, a breadth bonus, and an impact
// multiplier derived from change magnitude. Output order is fixed.
func Analyze(items []model.EvidenceItem) []Analysis {
	signals := make(map[Competency][]Signal)

	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Body)
		for comp, rules := range textRules {
			for _, r := range rules {
				if r.re.MatchString(text) {
					signals[comp] = append(signals[comp], Signal{
						Competency: comp,
						Level:      r.level,
						Type:       "text_pattern",
						Reason:     r.reason,
					})
					break // one match per competency per item
				}
			}
		}
	}

	// Delivery volume counts every item, not only pattern matches.
	switch n := len(items); {
	case n >= volumeStrongCount:
		signals[ExecutionDelivery] = append(signals[ExecutionDelivery],
			Signal{Competency: ExecutionDelivery, Level: LevelStrong, Type: "volume", Reason: "consistent delivery volume"})
	case n >= volumeModerateCount:
		signals[ExecutionDelivery] = append(signals[ExecutionDelivery],
			Signal{Competency: ExecutionDelivery, Level: LevelModerate, Type: "volume", Reason: "solid delivery volume"})
	}

	impact := impactMultiplier(items)

	out := make([]Analysis, 0, 4)
	for _, comp := range []Competency{ExecutionDelivery, SkillsKnowledge, TeamworkCommunication, InfluenceLeadership} {
		sigs := signals[comp]
		out = append(out, Analysis{
			Competency: comp,
			Score:      scoreSignals(sigs, impact),
			Signals:    sigs,
		})
	}
	return out
}

// impactMultiplier maps complexity hints (large changes, architectural
// titles) to a multiplier in [0.8, 1.2].
func impactMultiplier(items []model.EvidenceItem) float64 {
	hits := 0.0
	for _, item := range items {
		switch {
		case item.Magnitude >= magnitudeLarge:
			hits += 2
		case item.Magnitude >= magnitudeBig:
			hits++
		}
		title := strings.ToLower(item.Title)
		for _, kw := range []string{"architect", "design", "rfc", "proposal"} {
			if strings.Contains(title, kw) {
				hits += 2
				break
			}
		}
	}
	return 0.8 + math.Min(hits, 4)*0.1
}

// scoreSignals applies diminishing returns per signal type, a diversity
// bonus for breadth, the impact multiplier, and the soft cap.
func scoreSignals(sigs []Signal, impact float64) int {
	if len(sigs) == 0 {
		return 0
	}

	base := 0.0
	byType := make(map[string]int)
	for _, s := range sigs {
		byType[s.Type]++
		factor := 1 / (1 + 0.3*float64(byType[s.Type]-1)) // 1.0, 0.77, 0.63...
		pts, ok := levelPoints[s.Level]
		if !ok {
			pts = levelPoints[LevelWeak]
		}
		base += pts * factor
	}

	diversity := math.Min(float64(len(byType))*3, 15)
	raw := (base + diversity) * impact

	if raw > softCapKnee {
		excess := raw - softCapKnee
		raw = softCapKnee + (softCapCeil-softCapKnee)*(1-math.Exp(-excess/softCapScale))
	}
	return int(math.Min(raw, softCapCeil))
}
