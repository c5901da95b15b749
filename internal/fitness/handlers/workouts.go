package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/store"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"

	"go.opentelemetry.io/otel/attribute"
)

const MaxWorkoutTextLength = 500

type logWorkoutRequest struct {
	Text string `json:"text"`
}

type completeRequest struct {
	Timestamp string `json:"timestamp"`
}

type completeResponse struct {
	Message string       `json:"message"`
	Streak  int          `json:"streak"`
	Rank    fitness.Rank `json:"rank"`
}

type insightsResponse struct {
	Insights *string `json:"insights"`
}

func (h *Handler) HandleSaveGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goal.save")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var goal fitness.GoalProfile
	if err := decodeJSONBody(w, r, &goal); err != nil {
		writeError(w, "save goal", err)
		return
	}
	if err := goal.Validate(); err != nil {
		writeError(w, "save goal", err)
		return
	}

	if err := h.store.SaveGoal(ctx, userID, goal); err != nil {
		writeError(w, "save goal", err)
		return
	}

	pkg.WriteJSONMessage(w, "Goal saved", http.StatusOK)
}

func (h *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goal.get")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	user, err := h.store.Snapshot(ctx, userID)
	if err != nil {
		writeError(w, "get goal", err)
		return
	}

	if user.Goal == nil {
		pkg.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}
	pkg.WriteJSON(w, user.Goal, http.StatusOK)
}

func (h *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.log")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req logWorkoutRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, "log workout", err)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, "log workout", fitness.NewValidationError("text", "required"))
		return
	}
	if utf8.RuneCountInString(text) > MaxWorkoutTextLength {
		writeError(w, "log workout", fitness.NewValidationError("text", "longer than %d characters", MaxWorkoutTextLength))
		return
	}

	entry := fitness.WorkoutEntry{
		Text:      text,
		Completed: false,
		Timestamp: fitness.NormalizeTimestamp(h.now()),
	}
	if err := h.store.AppendWorkout(ctx, userID, entry); err != nil {
		writeError(w, "log workout", err)
		return
	}

	pkg.WriteJSONMessage(w, "Logged", http.StatusOK)
}

func (h *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.list")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	user, err := h.store.Snapshot(ctx, userID)
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}

	workouts := user.Workouts
	if workouts == nil {
		workouts = []fitness.WorkoutEntry{}
	}
	span.SetAttributes(attribute.Int("workouts", len(workouts)))
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.complete")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req completeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, "complete workout", err)
		return
	}
	ts, err := fitness.ParseTimestamp(req.Timestamp)
	if err != nil {
		writeError(w, "complete workout", err)
		return
	}

	progress, err := h.tracker.Complete(ctx, userID, ts)
	if err != nil {
		writeError(w, "complete workout", err)
		return
	}
	h.leaderboard.Invalidate()

	pkg.WriteJSON(w, completeResponse{
		Message: "Completed",
		Streak:  progress.Streak,
		Rank:    progress.Rank,
	}, http.StatusOK)
}

func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	insight, err := h.insights.Insights(ctx, userID, h.now())
	if err != nil {
		writeError(w, "insights", err)
		return
	}

	pkg.WriteJSON(w, insightsResponse{Insights: insight}, http.StatusOK)
}

func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard")
	defer span.End()

	entries, err := h.leaderboard.Leaderboard(ctx, store.LeaderboardSize)
	if err != nil {
		writeError(w, "leaderboard", err)
		return
	}
	if entries == nil {
		entries = []fitness.LeaderboardEntry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}
