package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/errs"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/jwt"
	"github.com/MAGNO9/SchoolTrack/internal/state"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type UserReader interface {
	FindAuthorized(ctx context.Context, id uuid.UUID) (user.AuthorizedUser, error)
}

// Gate authenticates streaming connections and binds driver identities.
// Every inbound event on a driver stream carries the gate-bound identity;
// the payload is never trusted for it.
type Gate struct {
	hub       *Hub
	store     *state.Store
	tokens    TokenValidator
	users     UserReader
	locations commands.LocationCommands
	cfg       config.StreamConfig
	logger    *slog.Logger
	upgrader  websocket.Upgrader
}

func NewGate(hub *Hub, store *state.Store, tokens TokenValidator, users UserReader, locations commands.LocationCommands, cfg config.StreamConfig, logger *slog.Logger) *Gate {
	return &Gate{
		hub:       hub,
		store:     store,
		tokens:    tokens,
		users:     users,
		locations: locations,
		cfg:       cfg,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser observers connect cross-origin; auth is the bearer token.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// ServeDriver upgrades a driver streaming connection. The bearer
// credential is taken from the handshake; invalid or non-driver
// credentials are rejected before any event is processed.
func (g *Gate) ServeDriver(c *gin.Context) {
	u, ok := g.authenticate(c)
	if !ok {
		return
	}
	if u.Role != user.RoleDriver {
		c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Driver role required"}})
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "error", err, "driver_id", u.ID)
		return
	}

	client := newClient(conn, g.cfg)
	client.driverID = u.ID
	g.hub.bindDriver(u.ID, client)
	g.store.SetOnlineByDriver(u.ID, true)
	g.logger.Info("driver connected", "driver_id", u.ID, "name", u.Name)

	go client.writePump()
	g.readDriver(c.Request.Context(), client)

	// A stale connection must not flip a reconnected driver offline.
	if g.hub.unbindDriver(u.ID, client) {
		g.store.SetOnlineByDriver(u.ID, false)
	}
	g.logger.Info("driver disconnected", "driver_id", u.ID)
}

// ServeObserver upgrades an observer connection, optionally scoped to a
// route via ?routeId=.
func (g *Gate) ServeObserver(c *gin.Context) {
	if _, ok := g.authenticate(c); !ok {
		return
	}

	var routeID *uuid.UUID
	if raw := c.Query("routeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid routeId"}})
			return
		}
		routeID = &id
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(conn, g.cfg)
	client.routeID = routeID
	g.hub.addObserver(client)

	go client.writePump()
	g.drain(client)
	g.hub.removeObserver(client)
}

// authenticate resolves the handshake bearer credential. Rejections happen
// before the upgrade so the client gets a plain HTTP status.
func (g *Gate) authenticate(c *gin.Context) (user.AuthorizedUser, bool) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
		return user.AuthorizedUser{}, false
	}

	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid or expired token"}})
		return user.AuthorizedUser{}, false
	}

	u, err := g.users.FindAuthorized(c.Request.Context(), claims.UserID)
	if err != nil || !u.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unknown or inactive user"}})
		return user.AuthorizedUser{}, false
	}
	return u, true
}

// readDriver processes inbound events for the lifetime of one driver
// connection. A dropped connection only cancels this loop; nothing already
// enqueued downstream is affected.
func (g *Gate) readDriver(ctx context.Context, client *Client) {
	g.prepareRead(client)

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			client.enqueue(newErrorEvent("Malformed event"))
			continue
		}

		switch env.Event {
		case EventLocationUpdate:
			g.handleLocationUpdate(ctx, client, env.Data)
		case EventStatusChange:
			var sc StatusChange
			if err := json.Unmarshal(env.Data, &sc); err != nil || sc.VehicleID == uuid.Nil {
				client.enqueue(newErrorEvent("Malformed status change"))
				continue
			}
			g.hub.StatusChanged(sc.VehicleID, sc.Status)
		default:
			client.enqueue(newErrorEvent("Unknown event: " + env.Event))
		}
	}
}

func (g *Gate) handleLocationUpdate(ctx context.Context, client *Client, data json.RawMessage) {
	var upd LocationUpdate
	if err := json.Unmarshal(data, &upd); err != nil {
		client.enqueue(newErrorEvent("Malformed location update"))
		return
	}

	report := commands.LocationReport{
		VehicleID: upd.VehicleID,
		Latitude:  upd.Latitude,
		Longitude: upd.Longitude,
		Speed:     upd.Speed,
		Heading:   upd.Heading,
		Accuracy:  upd.Accuracy,
	}
	if upd.Timestamp != nil {
		report.CapturedAt = *upd.Timestamp
	}

	if _, err := g.locations.IngestLocation(ctx, client.driverID, report); err != nil {
		client.enqueue(newErrorEvent(ingestErrorMessage(err)))
	}
}

// drain consumes inbound frames from an observer so pings and close
// handshakes keep working; observer payloads are ignored.
func (g *Gate) drain(client *Client) {
	g.prepareRead(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (g *Gate) prepareRead(client *Client) {
	client.conn.SetReadLimit(g.cfg.MaxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
	})
}

func ingestErrorMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return "Vehicle is not assigned to this driver"
	case errors.Is(err, errs.ErrNotFound):
		return "Vehicle not found"
	case errors.Is(err, errs.ErrInvalidInput):
		return "Invalid location data"
	case errors.Is(err, errs.ErrPersistence):
		return "Failed to store location"
	default:
		return "Error processing location"
	}
}
