package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/special-brownies/booster-pack/internal/logger"
)

// Handler streams hub events to one client until it disconnects or the hub
// stops. ?types=a,b limits the stream to those event types.
// @Summary Binder event stream
// @Description Server-sent events for every recorded binder event
// @Tags binder
// @Produce text/event-stream
// @Param types query string false "Comma-separated event types"
// @Success 200 {string} string "event stream"
// @Router /events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		w.Header().Set(HeaderContentType, ContentTypeStream)
		w.Header().Set(HeaderCacheControl, CacheControlNone)
		w.Header().Set(HeaderConnection, ConnectionKeep)

		var eventTypes []string
		if filter := r.URL.Query().Get(QueryParamTypes); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			LogFieldClientID, client.ID,
			LogFieldFilters, eventTypes,
			LogFieldTotalClients, hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, LogFieldClientID, client.ID)
		}()

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, LogFieldError, err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, LogFieldError, err)
				return false
			}
			if err := rc.Flush(); err != nil {
				log.Warn(LogMsgFlushError, LogFieldError, err)
				return false
			}
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{LogFieldClientID: client.ID, LogFieldFilters: eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case <-hub.Done():
				return
			case event, ok := <-client.EventChannel:
				if !ok || !send(event) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
