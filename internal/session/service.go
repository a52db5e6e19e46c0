package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"PokerCoach/internal/game/dealer"
	"PokerCoach/internal/game/engine"
	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/game/table"
	"PokerCoach/internal/history"
	"PokerCoach/internal/utils"
	"PokerCoach/internal/websocket"
)

var ErrForbidden = errors.New("session belongs to another player")

type Service struct {
	repo    Repo
	ttl     int // seconds
	hub     websocket.HubInterface
	history *history.Store
	locks   sync.Map // session id -> *sync.Mutex

	// Seed 返回发牌种子，测试里可以固定
	Seed func() int64
}

func NewService(repo Repo, ttl int, hub websocket.HubInterface) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		hub:  hub,
		Seed: func() int64 { return time.Now().UnixNano() },
	}
}

// WithHistory 每次评估都写入历史
func (s *Service) WithHistory(h *history.Store) *Service {
	s.history = h
	return s
}

// Create 给玩家开一局新的教学牌局，旧的那局直接作废
func (s *Service) Create(ctx context.Context, player string) (*table.Table, engine.Report, error) {
	if old, err := s.repo.PlayerSession(ctx, player); err != nil {
		return nil, engine.Report{}, err
	} else if old != "" {
		if err := s.repo.Delete(ctx, old); err != nil {
			return nil, engine.Report{}, err
		}
		s.locks.Delete(old)
		utils.Log.Debug("session replaced", "player", player, "old", old)
	}

	t := table.New(uuid.NewString(), player)
	eng := engine.NewEngine(t, s.hub)
	eng.Dealer = dealer.NewDealer(s.Seed())

	res, err := eng.Start()
	if err != nil {
		return nil, engine.Report{}, err
	}
	if err := s.repo.Save(ctx, t, s.ttl); err != nil {
		return nil, engine.Report{}, err
	}
	s.record(ctx, t, res)

	utils.Log.Info("session created", "session", t.ID, "player", player)
	return t, engine.NewReport(t, res), nil
}

// Get 当前牌局和牌力，不推进
func (s *Service) Get(ctx context.Context, id, player string) (*table.Table, engine.Report, error) {
	t, err := s.load(ctx, id, player)
	if err != nil {
		return nil, engine.Report{}, err
	}
	res, err := evaluator.Evaluate(t.Hand, t.Community, t.Round)
	if err != nil {
		return nil, engine.Report{}, err
	}
	return t, engine.NewReport(t, res), nil
}

// Next 推进到下一轮。showdown 之后返回 engine.ErrHandFinished
func (s *Service) Next(ctx context.Context, id, player string) (*table.Table, engine.Report, error) {
	unlock := s.lock(id)
	defer unlock()

	t, err := s.load(ctx, id, player)
	if err != nil {
		return nil, engine.Report{}, err
	}

	eng := engine.NewEngine(t, s.hub)
	res, err := eng.NextRound()
	if err != nil {
		return nil, engine.Report{}, err
	}
	if err := s.repo.Save(ctx, t, s.ttl); err != nil {
		return nil, engine.Report{}, err
	}
	s.record(ctx, t, res)

	utils.Log.Debug("round advanced", "session", id, "round", t.State(), "score", res.Score.String())
	return t, engine.NewReport(t, res), nil
}

func (s *Service) Close(ctx context.Context, id, player string) error {
	unlock := s.lock(id)
	defer unlock()

	if _, err := s.load(ctx, id, player); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Delete(id)
	utils.Log.Info("session closed", "session", id, "player", player)
	return nil
}

// History 该局每轮的评估记录，没有配置数据库时返回空
func (s *Service) History(ctx context.Context, id, player string) ([]history.Entry, error) {
	if _, err := s.load(ctx, id, player); err != nil {
		return nil, err
	}
	if s.history == nil {
		return []history.Entry{}, nil
	}
	return s.history.ListBySession(ctx, id)
}

// PlayerHistory 玩家最近的评估记录（跨 session），新的在前
func (s *Service) PlayerHistory(ctx context.Context, player string, limit int) ([]history.Entry, error) {
	if s.history == nil {
		return []history.Entry{}, nil
	}
	return s.history.ListByPlayer(ctx, player, limit)
}

// Evaluate 直接评估给定的牌，不创建 session
func (s *Service) Evaluate(req EvaluateRequest) (engine.Report, error) {
	hand, err := parseCodes(req.Hand)
	if err != nil {
		return engine.Report{}, err
	}
	community, err := parseCodes(req.Community)
	if err != nil {
		return engine.Report{}, err
	}

	res, err := evaluator.Evaluate(hand, community, req.Round)
	if err != nil {
		return engine.Report{}, err
	}

	t := &table.Table{Hand: hand, Community: community, Round: req.Round}
	return engine.NewReport(t, res), nil
}

// lock 同一 session 的 Load -> NextRound -> Save 串行执行
func (s *Service) lock(id string) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Service) load(ctx context.Context, id, player string) (*table.Table, error) {
	t, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Player != player {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *Service) record(ctx context.Context, t *table.Table, res evaluator.Result) {
	if s.history == nil {
		return
	}
	e := &history.Entry{
		SessionID: t.ID,
		Player:    t.Player,
		Round:     int(t.Round),
		Score:     int(res.Score),
		Category:  res.Score.String(),
		Visible:   strings.Join(table.Codes(res.Visible), " "),
		Best:      strings.Join(table.Codes(res.Best), " "),
	}
	if err := s.history.Record(ctx, e); err != nil {
		utils.Log.Warn("record history failed", "session", t.ID, "err", err)
	}
}

func parseCodes(codes []string) ([]table.Card, error) {
	out := make([]table.Card, 0, len(codes))
	for _, code := range codes {
		c, err := table.ParseCard(code)
		if err != nil {
			return nil, evaluator.InvalidInputError(fmt.Sprintf("card %q: %v", code, err))
		}
		out = append(out, c)
	}
	return out, nil
}
