package suggestions_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/fitness/catalog"
	"github.com/2beens/forgezone/internal/fitness/suggestions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bmi(v float64) *float64 {
	return &v
}

func chestParams() suggestions.Params {
	return suggestions.Params{
		UserID:   "user-1",
		Goal:     fitness.GoalBuildMuscle,
		Level:    fitness.LevelBeginner,
		BodyPart: fitness.BodyPartChest,
	}
}

func newProviderMock(ctrl *gomock.Controller) *MockaiProvider {
	provider := NewMockaiProvider(ctrl)
	provider.EXPECT().Name().Return("mock").AnyTimes()
	return provider
}

func TestEngine_Suggest_AI(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProviderMock(ctrl)
	provider.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("```json\n[\"Push-Ups\", \"Dips\", \"Flys\", \"Bench\", \"Incline\", \"Decline\"]\n```", nil)

	engine := suggestions.NewEngine(provider, catalog.Default(), time.Second)
	result, err := engine.Suggest(context.Background(), chestParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, suggestions.SourceAI, result.Source)
	assert.Equal(t, []string{"Push-Ups", "Dips", "Flys", "Bench", "Incline"}, result.Suggestions)
}

func TestEngine_Suggest_FallbackCases(t *testing.T) {
	cases := []struct {
		name    string
		aiText  string
		aiError error
	}{
		{name: "malformed text", aiText: "Here are some great exercises: push-ups!"},
		{name: "non array json", aiText: `{"exercise": "Push-Ups"}`},
		{name: "array of numbers", aiText: `[1, 2, 3]`},
		{name: "empty array", aiText: "```json\n[]\n```"},
		{name: "json null", aiText: "null"},
		{name: "provider error", aiError: errors.New("503 service unavailable")},
	}

	cell, err := catalog.Default().Lookup(fitness.GoalBuildMuscle, fitness.LevelBeginner, fitness.BodyPartChest)
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := newProviderMock(ctrl)
			provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tc.aiText, tc.aiError)

			engine := suggestions.NewEngine(provider, catalog.Default(), time.Second)
			result, err := engine.Suggest(context.Background(), chestParams(), nil)
			require.NoError(t, err)
			assert.Equal(t, suggestions.SourceFallback, result.Source)
			assert.Len(t, result.Suggestions, min(5, len(cell)))
			for _, s := range result.Suggestions {
				assert.Contains(t, cell, s)
			}
		})
	}
}

func TestEngine_Suggest_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProviderMock(ctrl)
	provider.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return `["too late"]`, nil
			}
		})

	engine := suggestions.NewEngine(provider, catalog.Default(), 20*time.Millisecond)
	start := time.Now()
	result, err := engine.Suggest(context.Background(), chestParams(), nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, suggestions.SourceFallback, result.Source)
	assert.Len(t, result.Suggestions, 5)
}

func TestEngine_Suggest_HighBMIForcesBodyweight(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProviderMock(ctrl)

	var prompt string
	provider.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return `["Push-Ups"]`, nil
		})

	params := chestParams()
	params.BMI = bmi(28)
	params.NoEquipment = false
	assert.True(t, params.BodyweightOnly())

	engine := suggestions.NewEngine(provider, catalog.Default(), time.Second)
	result, err := engine.Suggest(context.Background(), params, []string{"3x10 Push-Ups"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Push-Ups"}, result.Suggestions)
	assert.Contains(t, prompt, "Bodyweight only")
	assert.Contains(t, prompt, "BMI: 28.")
}

func TestParams_BodyweightOnly(t *testing.T) {
	params := chestParams()
	assert.False(t, params.BodyweightOnly())

	params.BMI = bmi(25)
	assert.False(t, params.BodyweightOnly())

	params.BMI = bmi(25.1)
	assert.True(t, params.BodyweightOnly())

	params.BMI = nil
	params.NoEquipment = true
	assert.True(t, params.BodyweightOnly())
}

func TestEngine_Suggest_ValidationErrors(t *testing.T) {
	cases := map[string]func(p *suggestions.Params){
		"goal":     func(p *suggestions.Params) { p.Goal = "Get Big" },
		"level":    func(p *suggestions.Params) { p.Level = "expert" },
		"bodyPart": func(p *suggestions.Params) { p.BodyPart = "neck" },
		"bmi low":  func(p *suggestions.Params) { p.BMI = bmi(9) },
		"bmi high": func(p *suggestions.Params) { p.BMI = bmi(50.5) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no provider calls expected
			engine := suggestions.NewEngine(NewMockaiProvider(ctrl), NewMockexerciseCatalog(ctrl), time.Second)

			params := chestParams()
			mutate(&params)
			_, err := engine.Suggest(context.Background(), params, nil)
			require.ErrorIs(t, err, fitness.ErrInvalidParameter)
			var vErr *fitness.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestEngine_Suggest_UnknownCatalogCell(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newProviderMock(ctrl)
	provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("down"))
	exercises := NewMockexerciseCatalog(ctrl)
	exercises.EXPECT().
		Lookup(fitness.GoalBuildMuscle, fitness.LevelBeginner, fitness.BodyPartChest).
		Return(nil, fmt.Errorf("%w: x", catalog.ErrUnknownCatalogCell))

	engine := suggestions.NewEngine(provider, exercises, time.Second)
	_, err := engine.Suggest(context.Background(), chestParams(), nil)
	assert.ErrorIs(t, err, catalog.ErrUnknownCatalogCell)
}

func chiSquare(counts map[string]int, buckets int, trials int) float64 {
	expected := float64(trials) / float64(buckets)
	sum := 0.0
	for _, c := range counts {
		diff := float64(c) - expected
		sum += diff * diff / expected
	}
	// buckets never hit still contribute their full expected value
	sum += float64(buckets-len(counts)) * expected
	return sum
}

func TestEngine_Fallback_Uniform(t *testing.T) {
	engine := suggestions.NewEngine(nil, catalog.Default(), time.Second)
	cell, err := catalog.Default().Lookup(fitness.GoalBuildEndurance, fitness.LevelAdvanced, fitness.BodyPartCardio)
	require.NoError(t, err)
	require.Len(t, cell, 6)

	// 6*5*4*3*2 ordered 5-tuples, ~100 hits expected for each
	const orderings = 720
	const trials = orderings * 100
	tuples := make(map[string]int, orderings)
	positions := make([]map[string]int, 5)
	for i := range positions {
		positions[i] = make(map[string]int, len(cell))
	}

	inCell := make(map[string]bool, len(cell))
	for _, c := range cell {
		inCell[c] = true
	}

	for range trials {
		picked, err := engine.Fallback(fitness.GoalBuildEndurance, fitness.LevelAdvanced, fitness.BodyPartCardio)
		require.NoError(t, err)
		require.Len(t, picked, 5)

		seen := make(map[string]bool, len(picked))
		for i, p := range picked {
			require.True(t, inCell[p], "unknown suggestion %s", p)
			require.False(t, seen[p], "duplicate suggestion %s", p)
			seen[p] = true
			positions[i][p]++
		}
		tuples[strings.Join(picked, "|")]++
	}

	// 719 degrees of freedom, p=0.0001 critical value is ~869
	assert.LessOrEqual(t, len(tuples), orderings)
	assert.Less(t, chiSquare(tuples, orderings, trials), 869.0)

	// each slot on its own; 5 degrees of freedom, p=0.0001 critical value is 25.74
	for i, counts := range positions {
		assert.Less(t, chiSquare(counts, len(cell), trials), 25.74, "slot %d distribution: %v", i, counts)
	}
}

func TestBuildPrompt(t *testing.T) {
	params := chestParams()
	prompt := suggestions.BuildPrompt(params, nil)
	assert.Equal(t,
		"Suggest 5 beginner Build Muscle chest exercises. BMI: unknown. Past: None. Return only a JSON array of strings.",
		prompt,
	)

	history := make([]string, 0, 12)
	for i := range 12 {
		history = append(history, fmt.Sprintf("w%d", i))
	}
	params.BMI = bmi(22.5)
	params.NoEquipment = true
	prompt = suggestions.BuildPrompt(params, history)
	assert.Contains(t, prompt, "BMI: 22.5.")
	assert.Contains(t, prompt, "Bodyweight only, no equipment.")
	assert.Contains(t, prompt, "Past: w2, w3, w4, w5, w6, w7, w8, w9, w10, w11.")
	assert.NotContains(t, prompt, "w1,")
}

func TestParseAIResponse(t *testing.T) {
	parsed, err := suggestions.ParseAIResponse("```\n[\" a \", \"\", \"b\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, parsed)

	_, err = suggestions.ParseAIResponse(strings.Repeat("x", 10))
	assert.Error(t, err)
}
