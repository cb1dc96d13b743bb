package httpapi

import (
	"context"
	"net/http"
	"time"

	"localjobs-engine/internal/events"
	"localjobs-engine/internal/remote"
)

type RemoteHandler struct {
	Remote *remote.Service
	Hub    *events.Hub

	// RunRefresh is injected by main so the handler does not need to know
	// how fetchers are built from config.
	RunRefresh func(ctx context.Context)
}

func (h RemoteHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Remote.Status())
}

// Run triggers a refresh in the background and returns immediately; the
// status endpoint and the SSE stream report the outcome.
func (h RemoteHandler) Run(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFrom(r.Context())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		h.RunRefresh(ctx)
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeRemoteRefreshed, 1, h.Remote.Status()))
	}()
	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
