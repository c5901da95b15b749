package handlers

import (
	"net/http"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/fitness/suggestions"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"
)

const aiOfflineNote = "AI offline"

type suggestionsRequest struct {
	Goal         fitness.Goal     `json:"goal"`
	FitnessLevel fitness.Level    `json:"fitnessLevel"`
	BodyPart     fitness.BodyPart `json:"bodyPart"`
	BMI          *float64         `json:"bmi,omitempty"`
	NoEquipment  bool             `json:"noEquipment"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Note        string   `json:"note,omitempty"`
}

func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.suggestions")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req suggestionsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, "suggestions", err)
		return
	}

	params := suggestions.Params{
		UserID:      userID,
		Goal:        req.Goal,
		Level:       req.FitnessLevel,
		BodyPart:    req.BodyPart,
		BMI:         req.BMI,
		NoEquipment: req.NoEquipment,
	}
	if err := params.Validate(); err != nil {
		writeError(w, "suggestions", err)
		return
	}

	user, err := h.store.Snapshot(ctx, userID)
	if err != nil {
		writeError(w, "suggestions", err)
		return
	}

	result, err := h.suggestions.Suggest(ctx, params, user.RecentWorkoutTexts(suggestions.MaxHistoryInHint))
	if err != nil {
		writeError(w, "suggestions", err)
		return
	}
	h.metricsManager.CounterSuggestions.WithLabelValues(string(result.Source)).Inc()

	resp := suggestionsResponse{Suggestions: result.Suggestions}
	if result.Source == suggestions.SourceFallback {
		resp.Note = aiOfflineNote
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}
