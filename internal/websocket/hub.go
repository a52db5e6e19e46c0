package websocket

import (
	"sync"

	"PokerCoach/internal/utils"
)

type HubInterface interface {
	BroadcastToPlayers(players []string, msg OutgoingMessage)
	ClientByPlayer(player string) (*Client, bool)
	SendToPlayer(player string, msg OutgoingMessage)
	Close()
}

type Hub struct {
	clients    map[string]*Client // player -> client
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	incoming   chan IncomingMessage
	OnIncoming func(IncomingMessage)
	quit       chan struct{}
	mu         sync.RWMutex
}

type broadcastReq struct {
	Players []string
	Message OutgoingMessage
}

type sendReq struct {
	Player  string
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[c.Player]; ok && old != c {
				// 同一玩家重复连接，关闭旧连接
				close(old.Send)
			}
			h.clients[c.Player] = c
			utils.Log.Debug("hub register", "player", c.Player, "clients", len(h.clients))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[c.Player]; ok && cur == c {
				delete(h.clients, c.Player)
				close(c.Send)
				utils.Log.Debug("hub unregister", "player", c.Player, "clients", len(h.clients))
			}
			h.mu.Unlock()

		case req := <-h.broadcast:
			h.mu.RLock()
			for _, p := range req.Players {
				if client, ok := h.clients[p]; ok {
					h.deliver(client, req.Message)
				}
			}
			h.mu.RUnlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			if client, ok := h.clients[req.Player]; ok {
				h.deliver(client, req.Message)
			}
			h.mu.RUnlock()

		case req := <-h.incoming:
			// 玩家消息统一转发给 manager；回调里会 SendToPlayer，不能占住 Run
			if h.OnIncoming != nil {
				go h.OnIncoming(req)
			}

		case <-h.quit:
			h.mu.Lock()
			for p, c := range h.clients {
				close(c.Send)
				delete(h.clients, p)
			}
			h.mu.Unlock()
			utils.Log.Info("hub stopped")
			return
		}
	}
}

// 慢客户端直接丢弃消息，不阻塞 Hub
func (h *Hub) deliver(c *Client, msg OutgoingMessage) {
	select {
	case c.Send <- msg:
	default:
		utils.Log.Warn("drop message for slow client", "player", c.Player, "event", msg.Event)
	}
}

// BroadcastToPlayers 发给多个玩家
func (h *Hub) BroadcastToPlayers(players []string, msg OutgoingMessage) {
	select {
	case h.broadcast <- broadcastReq{Players: players, Message: msg}:
	case <-h.quit:
	}
}

// SendToPlayer 发给单个玩家 (safe concurrent)
func (h *Hub) SendToPlayer(player string, msg OutgoingMessage) {
	select {
	case h.sendOne <- sendReq{Player: player, Message: msg}:
	case <-h.quit:
	}
}

// join 注册连接，Hub 已停止时返回 false
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hub) ClientByPlayer(player string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[player]
	return c, ok
}

func (h *Hub) Close() {
	close(h.quit)
}
