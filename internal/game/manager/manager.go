package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PokerCoach/internal/game/table"
	"PokerCoach/internal/session"
	"PokerCoach/internal/utils"
	"PokerCoach/internal/websocket"
)

const handleTimeout = 5 * time.Second

// GameManager 把 WebSocket 上行消息分发给 session 服务
type GameManager struct {
	svc *session.Service
	hub websocket.HubInterface
}

func NewGameManager(svc *session.Service, hub websocket.HubInterface) *GameManager {
	return &GameManager{svc: svc, hub: hub}
}

// HandlePlayerMessage 统一入口（来自 Hub.OnIncoming）
//
//	start       {}                                  -> 新开一局，engine 推送 deal_hole / hand_strength
//	next_round  {session}                           -> 推进一轮，engine 推送 community / hand_strength
//	evaluate    {hand, community, round}            -> 回复 evaluation
func (m *GameManager) HandlePlayerMessage(msg websocket.IncomingMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	var err error
	switch msg.Event {
	case "start":
		_, _, err = m.svc.Create(ctx, msg.From)

	case "next_round":
		id, _ := msg.Data["session"].(string)
		if id == "" {
			err = errors.New("missing session")
			break
		}
		_, _, err = m.svc.Next(ctx, id, msg.From)

	case "evaluate":
		var req session.EvaluateRequest
		req, err = evaluateRequest(msg.Data)
		if err != nil {
			break
		}
		report, evalErr := m.svc.Evaluate(req)
		if evalErr != nil {
			err = evalErr
			break
		}
		m.hub.SendToPlayer(msg.From, websocket.OutgoingMessage{Event: "evaluation", Data: report})

	default:
		utils.Log.Debug("ignored message", "player", msg.From, "event", msg.Event)
		return
	}

	if err != nil {
		utils.Log.Warn("message failed", "player", msg.From, "event", msg.Event, "err", err)
		m.hub.SendToPlayer(msg.From, websocket.OutgoingMessage{
			Event: "error",
			Data:  map[string]any{"event": msg.Event, "error": err.Error()},
		})
	}
}

// evaluateRequest 从 JSON 解出来的 map 里取牌和轮次
func evaluateRequest(data map[string]interface{}) (session.EvaluateRequest, error) {
	var req session.EvaluateRequest
	var err error
	if req.Hand, err = stringList(data["hand"]); err != nil {
		return req, fmt.Errorf("hand: %w", err)
	}
	if req.Community, err = stringList(data["community"]); err != nil {
		return req, fmt.Errorf("community: %w", err)
	}

	switch v := data["round"].(type) {
	case nil:
		req.Round = table.PreFlop
	case float64:
		req.Round = table.Round(int(v))
	case string:
		if req.Round, err = table.ParseRound(v); err != nil {
			return req, err
		}
	default:
		return req, fmt.Errorf("invalid round: %v", v)
	}
	return req, nil
}

func stringList(v interface{}) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list of cards")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected card code, got %v", item)
		}
		out = append(out, s)
	}
	return out, nil
}
