// Command gen-snapshot emits a synthetic review snapshot for exercising
// the scoring engine end to end without a real retrieval export.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gauge/internal/domain/model"
)

// Default generation constants.
const (
	defaultEvidence = 12
	defaultGoals    = 3
)

var goalTemplates = []model.Goal{
	{
		ID:          "reliability",
		Title:       "Improve service reliability",
		Description: "Reduce production incidents and tighten alerting for the payments pipeline",
		KeyResults: []model.KeyResult{
			{Description: "Cut incident count", Target: f(10), Achieved: f(7)},
			{Description: "Alert coverage percent", Target: f(90), Achieved: f(95)},
		},
	},
	{
		ID:          "migration",
		Title:       "Migrate storage layer",
		Description: "Move the session store off the legacy database cluster",
		KeyResults: []model.KeyResult{
			{Description: "Tables migrated", Target: f(24), Achieved: f(12)},
		},
	},
	{
		ID:          "mentoring",
		Title:       "Grow the team",
		Description: "Mentor junior engineers and improve onboarding docs",
	},
}

var evidenceTitles = []string{
	"Fix flaky retry logic in payments worker",
	"Proposed and scoped the session store migration plan",
	"Add alerting for queue depth",
	"Identified gap in incident runbooks and filled it",
	"Coordinated rollout with the platform team",
	"Mentored new hire through first on-call rotation",
	"Refactor connection pooling",
	"Drove the decision to adopt staged rollouts",
	"Update dependency versions",
	"Add integration tests for checkout flow",
}

var evidenceFiles = [][]string{
	{"internal/payments/retry.go", "internal/payments/retry_test.go"},
	{"docs/migration-plan.md"},
	{"internal/alerts/queue.go"},
	{"docs/runbooks/incidents.md"},
	{"internal/rollout/stages.go"},
	{"docs/onboarding.md"},
	{"internal/db/pool.go"},
	{"docs/adr/0042-staged-rollouts.md"},
	{"go.mod", "go.sum"},
	{"internal/checkout/flow_test.go"},
}

func main() {
	var (
		actor    = flag.String("actor", "dev@example.com", "Actor the snapshot belongs to")
		level    = flag.String("level", "P3", "Engineer level (P2-P5)")
		months   = flag.Int("months", 18, "Months in role; negative omits tenure entirely")
		goals    = flag.Int("goals", defaultGoals, "Number of goals (max 3)")
		evidence = flag.Int("evidence", defaultEvidence, "Number of evidence items")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed, set for reproducible output")
		output   = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	req := generate(rng, *actor, *level, *months, *goals, *evidence)

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		os.Stderr.WriteString("failed to encode snapshot: " + err.Error() + "\n")
		os.Exit(1)
	}
	data = append(data, '\n')

	if *output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		os.Stderr.WriteString("failed to write snapshot: " + err.Error() + "\n")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d goals, %d evidence items, seed %d)\n", *output, *goals, *evidence, *seed)
}

func generate(rng *rand.Rand, actor, level string, months, goals, evidence int) model.ReviewRequest {
	req := model.ReviewRequest{
		Actor: actor,
		Level: level,
	}
	if months >= 0 {
		req.Tenure = &model.TenureProfile{MonthsInRole: months}
	}

	if goals < 0 {
		goals = 0
	}
	if goals > len(goalTemplates) {
		goals = len(goalTemplates)
	}
	req.Goals = append(req.Goals, goalTemplates[:goals]...)

	now := time.Now().UTC()
	for i := 0; i < evidence; i++ {
		pick := rng.Intn(len(evidenceTitles))
		req.Evidence = append(req.Evidence, model.EvidenceItem{
			ID:        uuid.NewString(),
			Title:     evidenceTitles[pick],
			Timestamp: now.AddDate(0, 0, -rng.Intn(85)),
			Files:     evidenceFiles[pick],
			Magnitude: 20 + rng.Intn(800),
			Source:    "pr",
		})
	}

	for _, id := range []string{"Execution & Delivery", "Skills & Knowledge", "Teamwork & Communication", "Influence & Leadership"} {
		req.RawCompetencies = append(req.RawCompetencies, model.RawCompetency{
			CompetencyID: id,
			Score:        55 + rng.Intn(40),
		})
	}
	return req
}

func f(v float64) *float64 { return &v }
