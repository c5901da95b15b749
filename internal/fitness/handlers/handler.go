package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/forgezone/internal/auth"
	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/fitness/catalog"
	"github.com/2beens/forgezone/internal/fitness/suggestions"
	"github.com/2beens/forgezone/internal/middleware"
	"github.com/2beens/forgezone/internal/telemetry/metrics"
	"github.com/2beens/forgezone/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxRequestBodyBytes = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=handlers_test

type userStore interface {
	Snapshot(ctx context.Context, userID string) (*fitness.User, error)
	SaveGoal(ctx context.Context, userID string, goal fitness.GoalProfile) error
	AppendWorkout(ctx context.Context, userID string, entry fitness.WorkoutEntry) error
	Ping(ctx context.Context) error
}

type authService interface {
	Register(ctx context.Context, email, password string) (*fitness.User, string, error)
	Login(ctx context.Context, email, password string) (*fitness.User, string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type suggester interface {
	Suggest(ctx context.Context, params suggestions.Params, recentHistory []string) (suggestions.Result, error)
}

type completer interface {
	Complete(ctx context.Context, userID string, entryTimestamp time.Time) (fitness.ProgressState, error)
}

type insightsGenerator interface {
	Insights(ctx context.Context, userID string, now time.Time) (*string, error)
}

type leaderboard interface {
	Leaderboard(ctx context.Context, limit int) ([]fitness.LeaderboardEntry, error)
	Invalidate()
}

type Handler struct {
	store          userStore
	auth           authService
	suggestions    suggester
	tracker        completer
	insights       insightsGenerator
	leaderboard    leaderboard
	metricsManager *metrics.Manager
	now            func() time.Time
}

type NewHandlerParams struct {
	Store          userStore
	Auth           authService
	Suggestions    suggester
	Tracker        completer
	Insights       insightsGenerator
	Leaderboard    leaderboard
	MetricsManager *metrics.Manager
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		store:          params.Store,
		auth:           params.Auth,
		suggestions:    params.Suggestions,
		tracker:        params.Tracker,
		insights:       params.Insights,
		leaderboard:    params.Leaderboard,
		metricsManager: params.MetricsManager,
		now:            time.Now,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitPerMin int,
	suggestionsRateLimitPerMin int,
) {
	rateLimited := h.metricsManager.CounterRateLimitedRequests

	api := mainRouter.PathPrefix("/api").Subrouter()
	api.Handle("/register", http.HandlerFunc(h.HandleRegister)).Methods("POST", "OPTIONS").Name("register")
	api.Handle("/login", middleware.RateLimit(rateLimiter, "login", loginRateLimitPerMin, rateLimited)(
		http.HandlerFunc(h.HandleLogin),
	)).Methods("POST", "OPTIONS").Name("login")
	api.HandleFunc("/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	api.HandleFunc("/health", h.HandleHealth).Methods("GET", "OPTIONS").Name("health")

	api.HandleFunc("/goal", h.HandleSaveGoal).Methods("POST", "OPTIONS").Name("save-goal")
	api.HandleFunc("/goal", h.HandleGetGoal).Methods("GET").Name("get-goal")
	api.HandleFunc("/workout", h.HandleLogWorkout).Methods("POST", "OPTIONS").Name("log-workout")
	api.HandleFunc("/workouts", h.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/complete", h.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	api.HandleFunc("/insights", h.HandleInsights).Methods("GET", "OPTIONS").Name("insights")
	api.Handle("/suggestions", middleware.RateLimit(rateLimiter, "suggestions", suggestionsRateLimitPerMin, rateLimited)(
		http.HandlerFunc(h.HandleSuggestions),
	)).Methods("POST", "OPTIONS").Name("suggestions")
	api.HandleFunc("/leaderboard", h.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fitness.NewValidationError("body", "invalid json: %s", err)
	}
	return nil
}

// requestUserID returns the user resolved by the auth middleware.
func requestUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// writeError maps domain errors to status codes. Anything unknown is a 500
// and is logged; the client never sees internal error text.
func writeError(w http.ResponseWriter, op string, err error) {
	var validationErr *fitness.ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSONError(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, fitness.ErrInvalidParameter):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, fitness.ErrUserExists):
		pkg.WriteJSONError(w, "User exists", http.StatusBadRequest)
	case errors.Is(err, fitness.ErrInvalidCredential):
		pkg.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, fitness.ErrUserNotFound):
		pkg.WriteJSONError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, fitness.ErrEntryNotFound):
		pkg.WriteJSONError(w, "Workout not found", http.StatusNotFound)
	case errors.Is(err, fitness.ErrDuplicateWorkout):
		pkg.WriteJSONError(w, "Workout already logged at this time", http.StatusConflict)
	case errors.Is(err, catalog.ErrUnknownCatalogCell):
		log.Errorf("%s: catalog: %s", op, err)
		pkg.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
