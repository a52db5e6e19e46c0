package session

import (
	"context"
	"encoding/json"
	"sync"

	"PokerCoach/internal/game/table"
)

type memRepo struct {
	mu       sync.Mutex
	sessions map[string][]byte // id -> table json
	players  map[string]string // player -> id
}

func NewMemoryRepo() Repo {
	return &memRepo{
		sessions: make(map[string][]byte),
		players:  make(map[string]string),
	}
}

// 存 JSON 而不是指针，和 Redis 版一样每次 Load 拿到独立副本
func (m *memRepo) Save(ctx context.Context, t *table.Table, ttlSeconds int) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[t.ID] = data
	m.players[t.Player] = t.ID
	// 简单忽略 TTL，内存版仅供测试和单机
	return nil
}

func (m *memRepo) Load(ctx context.Context, id string) (*table.Table, error) {
	m.mu.Lock()
	data, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	var t table.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	for p, sid := range m.players {
		if sid == id {
			delete(m.players, p)
		}
	}
	return nil
}

func (m *memRepo) PlayerSession(ctx context.Context, player string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.players[player], nil
}
