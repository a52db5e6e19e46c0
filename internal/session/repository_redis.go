package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"PokerCoach/internal/game/table"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key 约定：
//
//	kv: coach:session:{id}     -> table json
//	kv: coach:player:{player}  -> session id
//
// 两个 key 同一个 TTL，每次 Save 都会续期
func sessionKey(id string) string {
	return fmt.Sprintf("coach:session:%s", id)
}
func playerKey(player string) string {
	return fmt.Sprintf("coach:player:%s", player)
}

func (r *redisRepo) Save(ctx context.Context, t *table.Table, ttlSeconds int) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	p := r.rdb.TxPipeline()
	p.Set(ctx, sessionKey(t.ID), data, ttl)
	p.Set(ctx, playerKey(t.Player), t.ID, ttl)
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Load(ctx context.Context, id string) (*table.Table, error) {
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var t table.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// KEYS[1] = sessionKey, KEYS[2] = playerKey, ARGV[1] = id
// 玩家索引只有仍指向该 session 时才删除
var deleteScript = redis.NewScript(`
	redis.call("DEL", KEYS[1])
	if redis.call("GET", KEYS[2]) == ARGV[1] then
		redis.call("DEL", KEYS[2])
	end
	return 1
`)

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	t, err := r.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return deleteScript.Run(ctx, r.rdb, []string{sessionKey(id), playerKey(t.Player)}, id).Err()
}

func (r *redisRepo) PlayerSession(ctx context.Context, player string) (string, error) {
	val, err := r.rdb.Get(ctx, playerKey(player)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
