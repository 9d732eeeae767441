package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/globallingo/lingo/internal/domain"
)

// ─── Request Types ──────────────────────────────────────────────────────────

type profileRequest struct {
	Name   string          `json:"name"`
	Avatar domain.AvatarID `json:"avatar"`
}

type translateRequest struct {
	From domain.LanguageCode `json:"from"`
	To   domain.LanguageCode `json:"to"`
	Text string              `json:"text"`
}

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return false
	}
	return true
}

// queryLimit parses ?limit=N. Absent means 0 (the operation's default).
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// ─── Profile ────────────────────────────────────────────────────────────────

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sum, err := s.session.Summary(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decode(w, r, &req) {
		return
	}
	sum, notifs, err := s.session.Setup(r.Context(), req.Name, req.Avatar)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"summary":       sum,
		"notifications": notifs,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decode(w, r, &req) {
		return
	}
	profile, err := s.session.UpdateProfile(r.Context(), req.Name, req.Avatar)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleAvatars(w http.ResponseWriter, r *http.Request) {
	avatars, err := s.session.Avatars(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"avatars": avatars})
}

// ─── Progression ────────────────────────────────────────────────────────────

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	res, err := s.session.Login(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.session.Translate(r.Context(), req.From, req.To, req.Text)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	records, err := s.session.Log(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.TranslationRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"translations": records})
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := s.session.Badges(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"badges": badges})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := s.session.Languages(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"languages": langs})
}

// ─── Notifications ──────────────────────────────────────────────────────────

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	notifs, err := s.session.Pending(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if notifs == nil {
		notifs = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifs})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "notification id must be an integer")
		return
	}
	if err := s.session.MarkShown(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "shown": true})
}
