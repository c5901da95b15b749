package handlers

import (
	"net/http"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/middleware"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"

	log "github.com/sirupsen/logrus"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountUser struct {
	ID    string               `json:"id"`
	Email string               `json:"email"`
	Goal  *fitness.GoalProfile `json:"goal,omitempty"`
}

type accountResponse struct {
	Token string      `json:"token"`
	User  accountUser `json:"user"`
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.register")
	defer span.End()

	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, "register", err)
		return
	}

	user, token, err := h.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, "register", err)
		return
	}
	h.metricsManager.CounterRegistrations.Inc()

	pkg.WriteJSON(w, accountResponse{
		Token: token,
		User: accountUser{
			ID:    user.ID,
			Email: user.Email,
		},
	}, http.StatusOK)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.login")
	defer span.End()

	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, "login", err)
		return
	}

	user, token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, "login", err)
		return
	}

	pkg.WriteJSON(w, accountResponse{
		Token: token,
		User: accountUser{
			ID:    user.ID,
			Email: user.Email,
			Goal:  user.Goal,
		},
	}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.logout")
	defer span.End()

	token := middleware.BearerToken(r)
	if token == "" {
		pkg.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.auth.Logout(ctx, token)
	if err != nil {
		writeError(w, "logout", err)
		return
	}
	if !loggedOut {
		log.Debugf("logout: session already gone")
	}

	pkg.WriteJSONMessage(w, "Logged out", http.StatusOK)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	if err := h.store.Ping(ctx); err != nil {
		log.Errorf("health: store ping: %s", err)
		pkg.WriteJSON(w, healthResponse{Status: "DEGRADED", DB: "Disconnected"}, http.StatusServiceUnavailable)
		return
	}

	pkg.WriteJSON(w, healthResponse{Status: "OK", DB: "Connected"}, http.StatusOK)
}
