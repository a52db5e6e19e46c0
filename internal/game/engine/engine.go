package engine

import (
	"errors"
	"time"

	"PokerCoach/internal/game/dealer"
	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/game/table"
	"PokerCoach/internal/websocket"
)

var ErrHandFinished = errors.New("hand already finished")

// ---------------------
//       ENGINE
// ---------------------

// Engine 驱动一局教学牌局：发牌、推进轮次、每轮评估牌力并推送给玩家。
// Table 可以来自 session 存储，Hub 为 nil 时只计算不推送。
type Engine struct {
	Table  *table.Table
	Dealer *dealer.Dealer
	Hub    websocket.HubInterface
}

func NewEngine(t *table.Table, hub websocket.HubInterface) *Engine {
	return &Engine{
		Table:  t,
		Dealer: dealer.NewDealer(time.Now().UnixNano()),
		Hub:    hub,
	}
}

// Start 洗牌，一次性发 2 张底牌和 5 张公共牌（公共牌按轮次亮出）
func (e *Engine) Start() (evaluator.Result, error) {
	e.Dealer.NewDeck()

	e.Table.Hand = e.Dealer.DealHoleCards([]string{e.Table.Player})[e.Table.Player]
	e.Table.Community = e.Dealer.DealCommunity(5)
	e.Table.Round = table.PreFlop
	e.Table.UpdatedAt = time.Now()

	e.send("deal_hole", map[string]any{
		"table": e.Table.ID,
		"cards": table.Codes(e.Table.Hand),
		"state": e.Table.State(),
	})

	return e.report()
}

// NextRound preflop -> flop -> turn -> river -> showdown
func (e *Engine) NextRound() (evaluator.Result, error) {
	if e.Table.Finished() {
		return evaluator.Result{}, ErrHandFinished
	}

	before := len(e.Table.VisibleCommunity())
	e.Table.Round = e.Table.Round.Next()
	e.Table.UpdatedAt = time.Now()

	community := e.Table.VisibleCommunity()
	if len(community) > before {
		e.send("community", map[string]any{
			"table":     e.Table.ID,
			"community": table.Codes(community),
			"new":       table.Codes(community[before:]),
			"state":     e.Table.State(),
		})
	}
	if e.Table.Finished() {
		e.send("showdown", map[string]any{"table": e.Table.ID})
	}

	return e.report()
}

// Evaluate 当前轮次的牌力，不推送
func (e *Engine) Evaluate() (evaluator.Result, error) {
	return evaluator.Evaluate(e.Table.Hand, e.Table.Community, e.Table.Round)
}

func (e *Engine) report() (evaluator.Result, error) {
	res, err := e.Evaluate()
	if err != nil {
		return res, err
	}
	e.send("hand_strength", NewReport(e.Table, res))
	return res, nil
}

func (e *Engine) send(event string, data any) {
	if e.Hub == nil {
		return
	}
	e.Hub.SendToPlayer(e.Table.Player, websocket.OutgoingMessage{
		Event: event,
		Data:  data,
	})
}
