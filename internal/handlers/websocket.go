package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/phuslu/log"

	"lottery-miniapp-client/internal/logger"
	"lottery-miniapp-client/internal/ui"
)

const (
	MsgNotificationShow   = "NOTIFICATION_SHOW"
	MsgNotificationUpdate = "NOTIFICATION_UPDATE"
	MsgNotificationRemove = "NOTIFICATION_REMOVE"
	MsgLoadingMount       = "LOADING_MOUNT"
	MsgLoadingUpdate      = "LOADING_UPDATE"
	MsgUserMenu           = "USER_MENU"
	MsgAudience           = "AUDIENCE"
	MsgBalance            = "BALANCE"
	MsgBalls              = "BALLS"
	MsgDrawResult         = "DRAW_RESULT"
	MsgNumberInput        = "NUMBER_INPUT"
	MsgNumbersFill        = "NUMBERS_FILL"
	MsgTicketFormReset    = "TICKET_FORM_RESET"
	MsgDateTime           = "DATETIME"
	MsgNavigate           = "NAVIGATE"
	MsgReload             = "RELOAD"
	MsgPing               = "PING"
	MsgPong               = "PONG"
)

const writeWait = 10 * time.Second

// sticky messages describe page state rather than events; the latest one of
// each kind is replayed to pages that connect later.
var sticky = map[string]string{
	MsgLoadingMount:  "loading",
	MsgLoadingUpdate: "loading",
	MsgUserMenu:      MsgUserMenu,
	MsgAudience:      MsgAudience,
	MsgBalance:       MsgBalance,
	MsgBalls:         MsgBalls,
	MsgDrawResult:    MsgDrawResult,
	MsgDateTime:      MsgDateTime,
}

type Message struct {
	Type     string      `json:"type"`
	ClientID string      `json:"client_id,omitempty"`
	Data     interface{} `json:"data"`
}

type Client struct {
	ID   string
	Conn *websocket.Conn
}

// WebSocketHub is the production ui.Surface: every render call becomes a
// message fanned out to all connected pages.
type WebSocketHub struct {
	clients    map[string]*websocket.Conn
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}
	closeOnce  sync.Once
	log        *log.Logger

	mu       sync.Mutex
	snapshot map[string]*Message
	order    []string
}

var _ ui.Surface = (*WebSocketHub)(nil)

func NewWebSocketHub(l *log.Logger) *WebSocketHub {
	if l == nil {
		l = logger.Discard()
	}
	hub := &WebSocketHub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
		done:       make(chan struct{}),
		log:        l,
		snapshot:   make(map[string]*Message),
	}

	go hub.run()

	return hub
}

func (hub *WebSocketHub) Close() {
	hub.closeOnce.Do(func() { close(hub.done) })
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client.ID] = client.Conn
			hub.log.Info().Str("client_id", client.ID).Int("clients", len(hub.clients)).Msg("page connected")
			for _, msg := range hub.state() {
				hub.write(client.ID, client.Conn, msg)
			}

		case client := <-hub.unregister:
			if _, ok := hub.clients[client.ID]; ok {
				delete(hub.clients, client.ID)
				hub.log.Info().Str("client_id", client.ID).Msg("page disconnected")
			}

		case message := <-hub.broadcast:
			hub.broadcastMessage(message)

		case <-hub.done:
			for id, conn := range hub.clients {
				conn.Close()
				delete(hub.clients, id)
			}
			return
		}
	}
}

func (hub *WebSocketHub) broadcastMessage(message *Message) {
	if message.ClientID != "" {
		if conn, ok := hub.clients[message.ClientID]; ok {
			hub.write(message.ClientID, conn, message)
		}
		return
	}

	for id, conn := range hub.clients {
		hub.write(id, conn, message)
	}
}

func (hub *WebSocketHub) write(id string, conn *websocket.Conn, message *Message) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(message); err != nil {
		hub.log.Warn().Err(err).Str("client_id", id).Str("type", message.Type).Msg("failed to write to page")
		conn.Close()
		delete(hub.clients, id)
	}
}

func (hub *WebSocketHub) publish(msgType string, data interface{}) {
	msg := &Message{Type: msgType, Data: data}

	if key, ok := sticky[msgType]; ok {
		hub.mu.Lock()
		if _, seen := hub.snapshot[key]; !seen {
			hub.order = append(hub.order, key)
		}
		hub.snapshot[key] = msg
		hub.mu.Unlock()
	}

	select {
	case hub.broadcast <- msg:
	case <-hub.done:
	}
}

// state returns the replayable messages in first-seen order.
func (hub *WebSocketHub) state() []*Message {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	out := make([]*Message, 0, len(hub.order))
	for _, key := range hub.order {
		out = append(out, hub.snapshot[key])
	}
	return out
}

func (hub *WebSocketHub) ShowNotification(v ui.NotificationView) {
	hub.publish(MsgNotificationShow, v)
}

func (hub *WebSocketHub) UpdateNotification(v ui.NotificationView) {
	hub.publish(MsgNotificationUpdate, v)
}

func (hub *WebSocketHub) RemoveNotification(id string) {
	hub.publish(MsgNotificationRemove, gin.H{"id": id})
}

func (hub *WebSocketHub) MountLoading(v ui.LoadingView) {
	hub.publish(MsgLoadingMount, v)
}

func (hub *WebSocketHub) UpdateLoading(v ui.LoadingView) {
	hub.publish(MsgLoadingUpdate, v)
}

func (hub *WebSocketHub) RenderUserMenu(v ui.UserMenuView) {
	hub.publish(MsgUserMenu, v)
}

func (hub *WebSocketHub) SetAudience(authenticated bool) {
	hub.publish(MsgAudience, gin.H{"authenticated": authenticated})
}

func (hub *WebSocketHub) SetBalance(text string) {
	hub.publish(MsgBalance, gin.H{"balance": text})
}

func (hub *WebSocketHub) SetBalls(v ui.BallsView) {
	hub.publish(MsgBalls, v)
}

func (hub *WebSocketHub) ShowDrawResult(v ui.DrawResultView) {
	hub.publish(MsgDrawResult, v)
}

func (hub *WebSocketHub) SetNumberInput(v ui.NumberInputView) {
	hub.publish(MsgNumberInput, v)
}

func (hub *WebSocketHub) FillNumbers(value string) {
	hub.publish(MsgNumbersFill, gin.H{"numbers": value})
}

func (hub *WebSocketHub) ResetTicketForm() {
	hub.publish(MsgTicketFormReset, gin.H{})
}

func (hub *WebSocketHub) SetDateTime(text string) {
	hub.publish(MsgDateTime, gin.H{"datetime": text})
}

func (hub *WebSocketHub) Navigate(path string) {
	hub.publish(MsgNavigate, gin.H{"path": path})
}

func (hub *WebSocketHub) Reload() {
	hub.publish(MsgReload, gin.H{})
}

type WebSocketHandler struct {
	hub      *WebSocketHub
	upgrader websocket.Upgrader
	log      *log.Logger
}

// NewWebSocketHandler accepts pages from allowedOrigin; "*" accepts any.
func NewWebSocketHandler(hub *WebSocketHub, allowedOrigin string, l *log.Logger) *WebSocketHandler {
	if l == nil {
		l = logger.Discard()
	}
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		log: l,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to upgrade to websocket")
		return
	}

	client := &Client{
		ID:   uuid.NewString(),
		Conn: conn,
	}

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	defer func() {
		select {
		case h.hub.unregister <- client:
		case <-h.hub.done:
		}
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn().Err(err).Str("client_id", client.ID).Msg("websocket error")
			}
			break
		}

		if msg.Type == MsgPing {
			h.sendPong(client)
		}
	}
}

func (h *WebSocketHandler) sendPong(client *Client) {
	msg := &Message{
		Type:     MsgPong,
		ClientID: client.ID,
		Data: gin.H{
			"timestamp": time.Now().Unix(),
		},
	}

	select {
	case h.hub.broadcast <- msg:
	case <-h.hub.done:
	}
}
