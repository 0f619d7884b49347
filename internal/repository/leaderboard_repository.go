package repository

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"awareness_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/blake2b"
)

// LeaderboardRepository 每个领域一个 ZSET，成员为邮箱的匿名标识，分值为最佳百分比
type LeaderboardRepository struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

func (r *LeaderboardRepository) key(domain string) string {
	return fmt.Sprintf("awareness:%s:lb", domain)
}

func (r *LeaderboardRepository) namesKey(domain string) string {
	return fmt.Sprintf("awareness:%s:lb:names", domain)
}

// RespondentID derives a stable pseudonym from the lower-cased email.
func RespondentID(email string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:8])
}

// Record keeps the respondent's best percentage; lower scores never replace it.
func (r *LeaderboardRepository) Record(ctx context.Context, domain, email, name string, percentage float64) error {
	member := RespondentID(email)
	pipe := r.client.TxPipeline()
	pipe.ZAddArgs(ctx, r.key(domain), redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: percentage, Member: member}},
	})
	pipe.HSet(ctx, r.namesKey(domain), member, name)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *LeaderboardRepository) Top(ctx context.Context, domain string, limit int) ([]model.LeaderboardEntry, error) {
	results, err := r.client.ZRevRangeWithScores(ctx, r.key(domain), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	members := make([]string, len(results))
	for i, z := range results {
		members[i], _ = z.Member.(string)
	}
	names, err := r.client.HMGet(ctx, r.namesKey(domain), members...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(results))
	for i, z := range results {
		name, _ := names[i].(string)
		entries[i] = model.LeaderboardEntry{
			Rank:         i + 1,
			RespondentID: members[i],
			Name:         name,
			BestScore:    z.Score,
		}
	}
	return entries, nil
}

func (r *LeaderboardRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
