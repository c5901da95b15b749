package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MaxSuggestions   = 5
	MaxHistoryInHint = 10
	DefaultTimeout   = 8 * time.Second
)

type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

var errUnusableAIResponse = errors.New("unusable ai response")

type Params struct {
	UserID      string
	Goal        fitness.Goal
	Level       fitness.Level
	BodyPart    fitness.BodyPart
	BMI         *float64
	NoEquipment bool
}

func (p Params) Validate() error {
	profile := fitness.GoalProfile{
		Goal:     p.Goal,
		Level:    p.Level,
		BodyPart: p.BodyPart,
		BMI:      p.BMI,
	}
	return profile.Validate()
}

// BodyweightOnly reports the effective equipment constraint. A BMI above the
// threshold forces bodyweight exercises even if the caller did not ask for it.
func (p Params) BodyweightOnly() bool {
	if p.BMI != nil && *p.BMI > fitness.BodyweightBMIThreshold {
		return true
	}
	return p.NoEquipment
}

type Result struct {
	Suggestions []string
	Source      Source
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=suggestions_test

type aiProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type exerciseCatalog interface {
	Lookup(goal fitness.Goal, level fitness.Level, bodyPart fitness.BodyPart) ([]string, error)
}

type Engine struct {
	provider aiProvider
	catalog  exerciseCatalog
	timeout  time.Duration
	shuffle  func(n int, swap func(i, j int))
}

func NewEngine(provider aiProvider, catalog exerciseCatalog, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		provider: provider,
		catalog:  catalog,
		timeout:  timeout,
		shuffle:  rand.Shuffle,
	}
}

// Suggest asks the AI provider for exercises and falls back to a random pick
// from the catalog on any provider failure. Only validation errors and
// missing catalog cells are returned.
func (e *Engine) Suggest(ctx context.Context, params Params, recentHistory []string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "suggestions.engine.suggest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	prompt := BuildPrompt(params, recentHistory)
	suggestions, aiErr := e.askAI(ctx, prompt)
	if aiErr == nil {
		span.SetAttributes(attribute.String("source", string(SourceAI)))
		return Result{
			Suggestions: suggestions,
			Source:      SourceAI,
		}, nil
	}

	log.Warnf("suggestions for user [%s]: ai failed, using fallback: %s", params.UserID, aiErr)
	span.SetAttributes(attribute.String("source", string(SourceFallback)))

	fallback, err := e.Fallback(params.Goal, params.Level, params.BodyPart)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Suggestions: fallback,
		Source:      SourceFallback,
	}, nil
}

func (e *Engine) askAI(ctx context.Context, prompt string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate with %s: %w", e.provider.Name(), err)
	}

	return ParseAIResponse(text)
}

// Fallback returns up to MaxSuggestions exercises of the cell in uniformly random order.
func (e *Engine) Fallback(goal fitness.Goal, level fitness.Level, bodyPart fitness.BodyPart) ([]string, error) {
	exercises, err := e.catalog.Lookup(goal, level, bodyPart)
	if err != nil {
		return nil, fmt.Errorf("fallback lookup: %w", err)
	}

	e.shuffle(len(exercises), func(i, j int) {
		exercises[i], exercises[j] = exercises[j], exercises[i]
	})

	return exercises[:min(MaxSuggestions, len(exercises))], nil
}

func BuildPrompt(params Params, recentHistory []string) string {
	bmi := "unknown"
	if params.BMI != nil {
		bmi = strconv.FormatFloat(*params.BMI, 'f', -1, 64)
	}

	history := "None"
	if len(recentHistory) > 0 {
		start := max(len(recentHistory)-MaxHistoryInHint, 0)
		history = strings.Join(recentHistory[start:], ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Suggest %d %s %s %s exercises. BMI: %s.", MaxSuggestions, params.Level, params.Goal, params.BodyPart, bmi)
	if params.BodyweightOnly() {
		sb.WriteString(" Bodyweight only, no equipment.")
	}
	fmt.Fprintf(&sb, " Past: %s.", history)
	sb.WriteString(" Return only a JSON array of strings.")

	return sb.String()
}

// ParseAIResponse strips code fences and decodes a non-empty JSON array of strings.
func ParseAIResponse(text string) ([]string, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var parsed []string
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnusableAIResponse, err)
	}

	suggestions := make([]string, 0, MaxSuggestions)
	for _, s := range parsed {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("%w: empty array", errUnusableAIResponse)
	}

	return suggestions, nil
}
