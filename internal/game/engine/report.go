package engine

import (
	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/game/table"
)

// Report 推送给前端 / HTTP 返回的牌力报告
type Report struct {
	Table       string   `json:"table,omitempty"`
	State       string   `json:"state"`
	Hand        []string `json:"hand"`
	Community   []string `json:"community"`
	Score       int      `json:"score"`
	Category    string   `json:"category"`
	Best        []string `json:"best"`
	High        bool     `json:"high"`
	SuitCount   int      `json:"suitCount"`
	StraightRun int      `json:"straightRun"`
	Reference   string   `json:"reference,omitempty"` // 标准评估的牌型名，5 张以上才有
}

func NewReport(t *table.Table, res evaluator.Result) Report {
	r := Report{
		Table:       t.ID,
		State:       t.State(),
		Hand:        table.Codes(t.Hand),
		Community:   table.Codes(t.VisibleCommunity()),
		Score:       int(res.Score),
		Category:    res.Score.String(),
		Best:        table.Codes(res.Best),
		High:        res.High,
		SuitCount:   res.SuitCount,
		StraightRun: res.StraightRun,
	}
	if _, name, ok := evaluator.Reference(res.Visible); ok {
		r.Reference = name
	}
	return r
}
