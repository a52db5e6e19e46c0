package websocket

// OutgoingMessage 服务端推送，如 deal_hole / community / hand_strength
type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// IncomingMessage 客户端消息，From 由连接的 JWT 身份填充
type IncomingMessage struct {
	From  string                 `json:"from"`
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}
