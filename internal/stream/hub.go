package stream

import (
	"log/slog"
	"sync"

	"github.com/MAGNO9/SchoolTrack/internal/domain/tracking"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Hub fans events out to connected observers: one all-vehicles topic plus
// one topic per route. Delivery is best-effort and unordered across
// observers; there is no acknowledgment and no retry.
type Hub struct {
	mu        sync.RWMutex
	observers map[*Client]struct{}
	routes    map[uuid.UUID]map[*Client]struct{}
	drivers   map[uuid.UUID]*Client
	logger    *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		observers: make(map[*Client]struct{}),
		routes:    make(map[uuid.UUID]map[*Client]struct{}),
		drivers:   make(map[uuid.UUID]*Client),
		logger:    logger,
	}
}

func (h *Hub) addObserver(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers[c] = struct{}{}
	if c.routeID != nil {
		subs, ok := h.routes[*c.routeID]
		if !ok {
			subs = make(map[*Client]struct{})
			h.routes[*c.routeID] = subs
		}
		subs[c] = struct{}{}
	}
}

func (h *Hub) removeObserver(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.observers, c)
	if c.routeID != nil {
		if subs, ok := h.routes[*c.routeID]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.routes, *c.routeID)
			}
		}
	}
	close(c.send)
}

// bindDriver registers the driver identity for the lifetime of the
// connection. A reconnect replaces the previous binding.
func (h *Hub) bindDriver(driverID uuid.UUID, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drivers[driverID] = c
	metrics.DriversConnected.Set(float64(len(h.drivers)))
}

// unbindDriver removes the mapping, but only if the connection still owns
// it (a newer connection may have replaced a stale one). Reports whether
// the driver lost their live stream.
func (h *Hub) unbindDriver(driverID uuid.UUID, c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	removed := false
	if cur, ok := h.drivers[driverID]; ok && cur == c {
		delete(h.drivers, driverID)
		removed = true
	}
	metrics.DriversConnected.Set(float64(len(h.drivers)))
	close(c.send)
	return removed
}

// DriverConnected reports whether the driver has a live stream.
func (h *Hub) DriverConnected(driverID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.drivers[driverID]
	return ok
}

// VehicleLocationUpdated broadcasts a state change to all observers and,
// when the vehicle has an assigned route, to that route's subscribers.
func (h *Hub) VehicleLocationUpdated(st tracking.VehicleState) {
	h.broadcastAll(newVehicleLocationUpdate(st))
	if st.RouteID != nil {
		h.broadcastRoute(*st.RouteID, newRouteVehicleUpdate(st, *st.RouteID))
	}
}

// StatusChanged rebroadcasts a free-form vehicle status to all observers.
func (h *Hub) StatusChanged(vehicleID uuid.UUID, status string) {
	h.broadcastAll(newStatusChange(vehicleID, status))
}

func (h *Hub) broadcastAll(msg []byte) {
	if msg == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.observers {
		if !c.enqueue(msg) {
			metrics.BroadcastsDropped.Inc()
		}
	}
	metrics.BroadcastsSent.WithLabelValues("all").Inc()
}

func (h *Hub) broadcastRoute(routeID uuid.UUID, msg []byte) {
	if msg == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.routes[routeID] {
		if !c.enqueue(msg) {
			metrics.BroadcastsDropped.Inc()
		}
	}
	metrics.BroadcastsSent.WithLabelValues("route").Inc()
}
