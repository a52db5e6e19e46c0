package table

import (
	"time"
)

// Table 一局教学牌局：一个玩家的两张底牌 + 一次性发好的 5 张公共牌，
// 公共牌按 Round 逐步亮出
type Table struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"` // JWT sub
	Hand      []Card    `json:"hand"`
	Community []Card    `json:"community"` // 全部 5 张（含未亮出的）
	Round     Round     `json:"round"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(id, player string) *Table {
	now := time.Now()
	return &Table{
		ID:        id,
		Player:    player,
		Round:     PreFlop,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// State 当前阶段名称
func (t *Table) State() string {
	return t.Round.String()
}

// VisibleCommunity 当前轮次已亮出的公共牌（副本）
func (t *Table) VisibleCommunity() []Card {
	n := t.Round.CommunityVisible()
	if n > len(t.Community) {
		n = len(t.Community)
	}
	out := make([]Card, n)
	copy(out, t.Community[:n])
	return out
}

// Finished showdown 之后不能再推进
func (t *Table) Finished() bool {
	return t.Round >= Showdown
}
