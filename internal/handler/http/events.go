package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type EventsHandler interface {
	// Stream pushes record store changes to the browser
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub *sse.Hub
}

func NewEventsHandler(hub *sse.Hub) EventsHandler {
	return &eventsHandlerImpl{hub: hub}
}

type eventPayload struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Stream handles GET /events?topics=employees,attendance
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	topics := parseTopics(r.URL.Query().Get("topics"))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(topics...)
	defer func() {
		cleanup()
		slog.Debug("sse client disconnected", "topics", topics, "subscribers", h.hub.TotalSubscribers())
	}()

	subscribers := h.hub.TotalSubscribers()
	slog.Debug("sse client connected", "topics", topics, "subscribers", subscribers)

	connected, _ := json.Marshal(map[string]interface{}{"status": "connected", "topics": topics, "subscribers": subscribers})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(eventPayload{Topic: event.Topic, Data: event.Data})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// parseTopics splits a comma separated list; empty means every topic.
func parseTopics(raw string) []string {
	var topics []string
	for _, topic := range strings.Split(raw, ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			topics = append(topics, topic)
		}
	}
	if len(topics) == 0 {
		return []string{sse.AllTopics}
	}
	return topics
}
