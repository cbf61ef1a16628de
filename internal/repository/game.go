package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
)

// GameRepository is the game journal. The agent only writes to it; records
// are JSON under game:<id> for external tools to inspect.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - ttl of zero keeps records forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

type discardGame struct{}

// NewDiscardGameRepository - the journal used when recording is disabled.
func NewDiscardGameRepository() GameRepository {
	return discardGame{}
}

func (discardGame) CreateOrUpdate(context.Context, *entity.Game) error {
	return nil
}
