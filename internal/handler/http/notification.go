package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/handler/http/response"
	"github.com/staffdeck/workforce-console/internal/pkg/toast"
)

type NotificationHandler interface {
	// Stream pushes toast notifications to the signed-in user over SSE
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	hub *toast.Hub
}

func NewNotificationHandler(hub *toast.Hub) NotificationHandler {
	return &notificationHandlerImpl{hub: hub}
}

// Stream handles GET /notifications/stream
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cleanup := h.hub.Subscribe(sess.UserID)
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case t, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(t)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: toast\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
