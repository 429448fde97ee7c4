package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/ellinika/internal/practice"
	"github.com/example/ellinika/pkg/models"
	"github.com/go-chi/chi/v5"
)

// Handler serves the practice endpoints
type Handler struct {
	svc PracticeService
	log *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(svc PracticeService, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log.With("component", "api")}
}

// completeSessionBody is the JSON body of POST /api/sessions/{sessionID}/complete
type completeSessionBody struct {
	TotalQuestions int `json:"total_questions"`
	CorrectAnswers int `json:"correct_answers"`
}

// RegisterUser handles POST /api/users
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req practice.RegisterUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// GetReview handles GET /api/users/{userID}/review
func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}

	items, err := h.svc.GetItemsDueForReview(r.Context(), userID, skillParam(r), limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetNewVocabulary handles GET /api/users/{userID}/vocabulary/new
func (h *Handler) GetNewVocabulary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}

	items, err := h.svc.GetNewVocabularyItems(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetStats handles GET /api/users/{userID}/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.GetPracticeStats(r.Context(), userID, skillParam(r))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetWeakAreas handles GET /api/users/{userID}/weak-areas
func (h *Handler) GetWeakAreas(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	areas, err := h.svc.GetWeakAreas(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, areas)
}

// ListSessions handles GET /api/users/{userID}/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}

	sessions, err := h.svc.ListSessions(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

// StartSession handles POST /api/users/{userID}/sessions
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req practice.StartSessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = userID

	session, err := h.svc.StartSession(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// RecordAttempt handles POST /api/users/{userID}/attempts
func (h *Handler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req practice.RecordAttemptRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = userID

	attempt, err := h.svc.RecordAttempt(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, attempt)
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CompleteSession handles POST /api/sessions/{sessionID}/complete
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	var body completeSessionBody
	if !h.decode(w, r, &body) {
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), practice.CompleteSessionRequest{
		SessionID:      chi.URLParam(r, "sessionID"),
		TotalQuestions: body.TotalQuestions,
		CorrectAnswers: body.CorrectAnswers,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, r, h.log, &practice.ValidationError{Fields: map[string]string{"body": "must be valid JSON"}})
		return false
	}
	return true
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, r, h.log, &practice.ValidationError{Fields: map[string]string{"user_id": "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

// limit reads the optional limit query parameter; the service applies defaults and caps
func (h *Handler) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, h.log, &practice.ValidationError{Fields: map[string]string{"limit": "must be an integer"}})
		return 0, false
	}
	return limit, true
}

// skillParam defaults to recognition when the query omits it
func skillParam(r *http.Request) models.SkillType {
	if skill := r.URL.Query().Get("skill"); skill != "" {
		return models.SkillType(skill)
	}
	return models.SkillRecognition
}
