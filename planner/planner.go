package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/models"
)

// ErrClientNotFound is the only failure GeneratePlan owns and propagates.
var ErrClientNotFound = errors.New("client not found")

// ClientStore fetches client records for planning. Implementations return
// ErrClientNotFound (possibly wrapped) when the id does not resolve.
type ClientStore interface {
	GetClient(ctx context.Context, id uint) (*models.Client, error)
}

// TextGenerator is the boundary to a generative model: prompt in, text out,
// or failure. The call must respect the given timeout.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}

// PlanSource records which path produced a plan.
type PlanSource string

const (
	SourceExternal PlanSource = "external"
	SourceFallback PlanSource = "fallback"
)

// PlanResult is the two-variant outcome of a planning run: a plan from the
// external generator, or one from the deterministic pipeline.
type PlanResult struct {
	Plan   MealPlan   `json:"plan"`
	Source PlanSource `json:"source"`
}

// Service generates meal plans. It is stateless across invocations:
// concurrent calls for different clients need no coordination.
type Service struct {
	Store   ClientStore
	Gen     TextGenerator // nil disables the external attempt
	Clock   Clock
	Policy  MissingDataPolicy
	Rules   []ConditionRule
	Timeout time.Duration // bound on the single external call
}

// NewService builds a Service with the default clock, policy and rule table.
func NewService(store ClientStore, gen TextGenerator) *Service {
	return &Service{
		Store:   store,
		Gen:     gen,
		Clock:   SystemClock(),
		Policy:  DefaultMissingDataPolicy(),
		Rules:   DefaultRules(),
		Timeout: 15 * time.Second,
	}
}

// GeneratePlan resolves the client, attempts one external generation, and
// falls back to the deterministic pipeline on any external failure. The
// fallback cannot fail, so the only error a caller sees is an unresolvable
// client id.
func (s *Service) GeneratePlan(ctx context.Context, clientID uint) (*PlanResult, error) {
	record, err := s.Store.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch client %d: %w", clientID, err)
	}

	profile := Normalize(*record)

	if s.Gen != nil {
		if plan, ok := s.tryExternal(ctx, profile); ok {
			return &PlanResult{Plan: *plan, Source: SourceExternal}, nil
		}
	}

	plan := s.buildPlan(profile)
	return &PlanResult{Plan: plan, Source: SourceFallback}, nil
}

// buildPlan is the deterministic pipeline. Pure in (profile, clock, policy,
// rules); two runs with identical inputs produce identical plans.
func (s *Service) buildPlan(p Profile) MealPlan {
	age := ageAt(p.BirthDate, s.Clock.Now(), s.Policy)
	bmr := basalMetabolicRate(p, age, s.Policy)
	tdee := totalExpenditure(bmr, p.ActivityLevel)
	calories := adjustForGoal(tdee, p.WeightKG, p.TargetKG)

	outcome := evaluateRules(s.Rules, p)
	split := macroSplitFor(p.ActivityLevel, outcome.Macros)
	macros := allocateMacros(calories, split)
	meals := assembleMeals(outcome.MealOverrides)

	return composePlan(p, age, calories, macros, split, outcome, meals, s.Policy)
}

// tryExternal issues the single generative attempt. Every failure mode is
// absorbed here; there is no retry.
func (s *Service) tryExternal(ctx context.Context, p Profile) (*MealPlan, bool) {
	text, err := s.Gen.Generate(ctx, buildPrompt(p), s.Timeout)
	if err != nil {
		logger.Warn("external plan generation failed, using deterministic pipeline",
			"client_id", p.ClientID, "error", err)
		return nil, false
	}

	plan, err := parsePlanJSON(text)
	if err != nil {
		logger.Warn("external plan unusable, using deterministic pipeline",
			"client_id", p.ClientID, "error", err)
		return nil, false
	}
	return plan, true
}

// buildPrompt embeds the exact JSON contract the response must satisfy,
// alongside a summary of the client profile.
func buildPrompt(p Profile) string {
	var b strings.Builder
	b.WriteString("Create a one-day meal plan for this client:\n")
	fmt.Fprintf(&b, "- gender: %s\n", p.Gender)
	if p.BirthDate != nil {
		fmt.Fprintf(&b, "- birth date: %s\n", p.BirthDate.Format("2006-01-02"))
	}
	if p.HeightCM != nil {
		fmt.Fprintf(&b, "- height: %.0f cm\n", *p.HeightCM)
	}
	if p.WeightKG != nil {
		fmt.Fprintf(&b, "- weight: %.1f kg\n", *p.WeightKG)
	}
	if p.TargetKG != nil {
		fmt.Fprintf(&b, "- target weight: %.1f kg\n", *p.TargetKG)
	}
	fmt.Fprintf(&b, "- activity level: %s\n", p.ActivityLevel)
	if len(p.Conditions) > 0 {
		fmt.Fprintf(&b, "- medical conditions: %s\n", strings.Join(p.Conditions, ", "))
	}
	if len(p.Restrictions) > 0 {
		fmt.Fprintf(&b, "- dietary restrictions: %s\n", strings.Join(p.Restrictions, ", "))
	}

	b.WriteString(`
Return ONLY a JSON object with exactly this shape:
{
  "name": string,
  "description": string,
  "nutrition_target": {
    "daily_calories": integer,
    "macros": {"protein_grams": integer, "carb_grams": integer, "fat_grams": integer}
  },
  "meals": [
    {"name": string, "foods": [{"name": string, "amount": string, "calories": integer}]}
  ]
}
Use the meal names Breakfast, Snack1, Lunch, Snack2, Dinner. No prose outside the JSON.`)
	return b.String()
}

// parsePlanJSON extracts the substring between the first '{' and the last
// '}' and decodes it, tolerating code fences and prose around the object.
func parsePlanJSON(text string) (*MealPlan, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var plan MealPlan
	if err := json.Unmarshal([]byte(text[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if err := validatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// validatePlan checks the required fields of an externally generated plan.
// An incomplete plan is a non-fatal failure that routes to the fallback.
func validatePlan(plan *MealPlan) error {
	if plan.Name == "" {
		return fmt.Errorf("plan missing name")
	}
	if plan.Target.DailyCalories <= 0 {
		return fmt.Errorf("plan missing positive daily calories")
	}
	if len(plan.Meals) == 0 {
		return fmt.Errorf("plan has no meals")
	}
	for _, meal := range plan.Meals {
		if meal.Name == "" {
			return fmt.Errorf("plan contains an unnamed meal")
		}
		for _, food := range meal.Foods {
			if food.Name == "" {
				return fmt.Errorf("meal %q contains an unnamed food", meal.Name)
			}
			if food.Calories < 0 {
				return fmt.Errorf("meal %q contains a negative calorie value", meal.Name)
			}
		}
	}
	return nil
}
