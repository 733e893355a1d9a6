package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

type HandleMessageRequest struct {
	Text string `json:"text"`
}

type HandleMessageResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply,omitempty"`
}

// HandleMessage runs one inbound chat message through the dispatcher and
// returns the tri-state outcome. A not_matched status tells the transport
// to keep routing the message to other handlers.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req HandleMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := h.dispatcher.Handle(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HandleMessageResponse{
		Status: result.Status.String(),
		Reply:  result.Reply,
	})
}
