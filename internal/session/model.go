package session

import (
	"PokerCoach/internal/game/engine"
	"PokerCoach/internal/game/table"
)

// EvaluateRequest 不依赖 session 的一次性评估
type EvaluateRequest struct {
	Hand      []string    `json:"hand" binding:"required"` // ["As","Kd"]
	Community []string    `json:"community"`               // 0-5 张
	Round     table.Round `json:"round"`                   // 2 或 "turn"
}

// SessionResponse 创建 / 查询 / 推进 session 的返回
type SessionResponse struct {
	ID       string        `json:"id"`
	Round    table.Round   `json:"round"`
	Finished bool          `json:"finished"`
	Report   engine.Report `json:"report"`
}

func newSessionResponse(t *table.Table, r engine.Report) SessionResponse {
	return SessionResponse{
		ID:       t.ID,
		Round:    t.Round,
		Finished: t.Finished(),
		Report:   r,
	}
}
