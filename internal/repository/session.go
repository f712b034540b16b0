package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Restore(ctx context.Context, id string) (*entity.Session, error)
}

type dbSession struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &dbSession{
		client: client,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Save replaces the whole snapshot in a single transaction.
func (that *dbSession) Save(ctx context.Context, session *entity.Session) error {
	key := sessionKey(session.ID)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, encodeSnapshot(session))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Restore always returns a usable session. On error it is the default session.
func (that *dbSession) Restore(ctx context.Context, id string) (*entity.Session, error) {
	fields, err := that.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return entity.DefaultSession(id), fmt.Errorf("failed to restore session: %w", err)
	}

	if !inProgress(fields) {
		return entity.DefaultSession(id), apperror.ErrSessionNotFound
	}

	return decodeSnapshot(id, fields), nil
}
