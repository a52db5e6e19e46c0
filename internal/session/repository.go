package session

import (
	"context"
	"errors"

	"PokerCoach/internal/game/table"
)

var ErrNotFound = errors.New("session not found")

// Repo 定义对教学牌局的存取
type Repo interface {
	// Save 写入（覆盖）牌局，并记录 player -> session 索引
	Save(ctx context.Context, t *table.Table, ttlSeconds int) error
	// Load 不存在时返回 ErrNotFound
	Load(ctx context.Context, id string) (*table.Table, error)
	// Delete 删除牌局及其玩家索引，不存在时不报错
	Delete(ctx context.Context, id string) error
	// PlayerSession 玩家当前的 session，没有则返回 ""
	PlayerSession(ctx context.Context, player string) (string, error)
}
