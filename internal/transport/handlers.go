package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/langcode"
)

type submitRequest struct {
	Text string `json:"text"`
}

type summarizeRequest struct {
	Text string `json:"text,omitempty"`
}

type translateRequest struct {
	Text   string `json:"text,omitempty"`
	Target string `json:"target,omitempty"`
}

type languageRequest struct {
	Language string `json:"language"`
}

// ListMessagesResponse is the body of GET /api/messages.
type ListMessagesResponse struct {
	Messages         []message.View `json:"messages"`
	Revision         int64          `json:"revision"`
	SelectedLanguage string         `json:"selected_language"`
}

// LanguageResponse is the body of the /api/language endpoints.
type LanguageResponse struct {
	Language string `json:"language"`
}

// LanguagesResponse is the body of GET /api/languages.
type LanguagesResponse struct {
	Languages []langcode.Language `json:"languages"`
	Selected  string              `json:"selected"`
}

// ActivityResponse is the body of GET /api/activity.
type ActivityResponse struct {
	Entries []activity.ActivityEntry `json:"entries"`
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.messages.Session())
}

func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	snap := s.messages.List()
	writeJSON(w, http.StatusOK, ListMessagesResponse{
		Messages:         message.Views(snap.Messages),
		Revision:         snap.Revision,
		SelectedLanguage: s.messages.SelectedLanguage(),
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}

	msg, ok := s.messages.Submit(r.Context(), req.Text)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, msg.View())
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(w, r)
	if !ok {
		return
	}
	msg, err := s.messages.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg.View())
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(w, r)
	if !ok {
		return
	}
	var req summarizeRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}

	msg, err := s.messages.RequestSummary(r.Context(), id, req.Text)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg.View())
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(w, r)
	if !ok {
		return
	}
	var req translateRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}

	msg, err := s.messages.RequestTranslation(r.Context(), id, req.Text, req.Target)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg.View())
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LanguageResponse{Language: s.messages.SelectedLanguage()})
}

func (s *Server) handleSelectLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}

	lang, err := s.messages.SelectLanguage(r.Context(), req.Language)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LanguageResponse{Language: lang})
}

func (s *Server) handleListLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{
		Languages: langcode.Supported(),
		Selected:  s.messages.SelectedLanguage(),
	})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	if s.activity == nil {
		writeJSON(w, http.StatusOK, ActivityResponse{Entries: []activity.ActivityEntry{}})
		return
	}

	query := r.URL.Query()
	opts := activity.ListActivityOptions{SessionID: s.messages.Session().ID}

	if raw := query.Get("message_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "message_id must be an integer")
			return
		}
		opts.MessageID = &id
	}
	if raw := query.Get("type"); raw != "" {
		typ := activity.ActivityType(raw)
		opts.ActivityType = &typ
	}
	for name, dst := range map[string]*int{"limit": &opts.Limit, "offset": &opts.Offset} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, name+" must be an integer")
			return
		}
		*dst = n
	}

	entries, err := s.activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ActivityResponse{Entries: entries})
}

func messageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "message id must be an integer")
		return 0, false
	}
	return id, true
}
