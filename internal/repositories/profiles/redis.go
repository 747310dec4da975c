package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// ProfileData is the stored document. Its fields are the persisted schema.
type ProfileData struct {
	DiscordID       string   `json:"discord_id"`
	Username        string   `json:"username"`
	RegisteredMoves []string `json:"registered_moves"`
}

type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed profile repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a Redis-backed profile repository from a client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(discordID string) string {
	return fmt.Sprintf("profile:%s", discordID)
}

// Get retrieves a profile by Discord user ID
func (r *redisRepo) Get(ctx context.Context, discordID string) (*entities.UserMoveProfile, error) {
	if discordID == "" {
		return nil, pkerr.InvalidArgument("discord ID is required")
	}

	raw, err := r.client.Get(ctx, r.key(discordID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pkerr.NotFoundf("profile for user '%s' not found", discordID).
				WithMeta("discord_id", discordID)
		}
		return nil, pkerr.Unavailable(err, "failed to get profile from Redis").
			WithMeta("discord_id", discordID)
	}

	var data ProfileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, pkerr.WrapWithCode(err, pkerr.CodeInternal, "failed to unmarshal profile").
			WithMeta("discord_id", discordID)
	}

	return fromProfileData(&data), nil
}

// Upsert stores the whole document in one SET, so a concurrent writer either
// sees the old or the new document, never a mix.
func (r *redisRepo) Upsert(ctx context.Context, profile *entities.UserMoveProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	data, err := json.Marshal(toProfileData(profile))
	if err != nil {
		return pkerr.WrapWithCode(err, pkerr.CodeInternal, "failed to marshal profile")
	}

	if err := r.client.Set(ctx, r.key(profile.DiscordID), string(data), 0).Err(); err != nil {
		return pkerr.Unavailable(err, "failed to store profile in Redis").
			WithMeta("discord_id", profile.DiscordID)
	}

	return nil
}

func toProfileData(profile *entities.UserMoveProfile) *ProfileData {
	return &ProfileData{
		DiscordID:       profile.DiscordID,
		Username:        profile.Username,
		RegisteredMoves: profile.RegisteredMoves,
	}
}

func fromProfileData(data *ProfileData) *entities.UserMoveProfile {
	return &entities.UserMoveProfile{
		DiscordID:       data.DiscordID,
		Username:        data.Username,
		RegisteredMoves: data.RegisteredMoves,
	}
}
