package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/constants"
	jwtpkg "github.com/piresc/kurir/internal/pkg/jwt"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
)

// MessageHandler processes one inbound client message
type MessageHandler func(client *models.WebSocketClient, msg models.WSMessage) error

// Manager manages driver WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the driver, upgrades the connection and
// runs the read loop until the client goes away
func (m *Manager) HandleConnection(c echo.Context, handle MessageHandler) error {
	driverID, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &models.WebSocketClient{DriverID: driverID, Conn: ws, ConnectedAt: time.Now()}
	m.AddClient(client)
	defer m.removeIfCurrent(client)

	logger.Info("Driver connected", logger.DriverID(driverID))
	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed", logger.DriverID(driverID), logger.Err(err))
			}
			return nil
		}

		if msg.Event == constants.EventPing {
			_ = m.SendMessage(client, constants.EventPong, nil)
			continue
		}
		if handle == nil {
			continue
		}
		if err := handle(client, msg); err != nil {
			code, severity := classify(err)
			_ = m.SendCategorizedError(client, err, code, severity)
		}
	}
}

func (m *Manager) authenticate(c echo.Context) (string, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if claims.Role != jwtpkg.RoleDriver {
		return "", echo.NewHTTPError(http.StatusForbidden, "Driver role required")
	}
	return claims.DriverID, nil
}

// AddClient registers a client, replacing an older connection of the same driver
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.DriverID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(driverID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, driverID)
}

func (m *Manager) removeIfCurrent(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	if m.clients[client.DriverID] == client {
		delete(m.clients, client.DriverID)
	}
}

// GetClient returns a client by driver ID
func (m *Manager) GetClient(driverID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[driverID]
	return client, exists
}

// ConnectedCount is the number of live driver connections
func (m *Manager) ConnectedCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends an event to a client
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendErrorMessage sends an error message to a client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError logs err and sends the client as much detail as the
// severity allows
func (m *Manager) SendCategorizedError(client *models.WebSocketClient, err error, code string, severity constants.ErrorSeverity) error {
	logger.Error("WebSocket operation failed",
		logger.DriverID(client.DriverID),
		logger.String("error_code", code),
		logger.String("severity", severityString(severity)),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return m.SendErrorMessage(client, code, err.Error())
	case constants.ErrorSeveritySecurity:
		return m.SendErrorMessage(client, code, "Access denied")
	default:
		return m.SendErrorMessage(client, code, "Operation failed")
	}
}

func severityString(severity constants.ErrorSeverity) string {
	switch severity {
	case constants.ErrorSeverityClient:
		return "client"
	case constants.ErrorSeverityServer:
		return "server"
	case constants.ErrorSeveritySecurity:
		return "security"
	default:
		return "unknown"
	}
}

// NotifyClient pushes an event to a connected driver. It reports whether the
// driver was connected and the write succeeded.
func (m *Manager) NotifyClient(driverID string, event string, data interface{}) bool {
	client, exists := m.GetClient(driverID)
	if !exists {
		logger.Debug("Driver not connected", logger.DriverID(driverID), logger.String("event", event))
		return false
	}

	if err := m.SendMessage(client, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.DriverID(driverID),
			logger.Err(err))
		return false
	}
	return true
}
