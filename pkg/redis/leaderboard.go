package redis

import (
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// 社区积分排行榜（有序集合）
// 积分变动时增量更新，读取失败由调用方回源数据库重建

const (
	leaderboardKey = "jiome:leaderboard:points" // 排行榜key
)

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	UserID uint `json:"user_id"`
	Points int  `json:"points"`
}

// AddLeaderboardPoints 排行榜增量加分（兑换扣分时传负数）
func AddLeaderboardPoints(userID uint, delta int) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	return client.ZIncrBy(ctx, leaderboardKey, float64(delta), strconv.FormatUint(uint64(userID), 10)).Err()
}

// SetLeaderboardPoints 排行榜绝对值写入（用于回源重建）
func SetLeaderboardPoints(userID uint, points int) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	member := strconv.FormatUint(uint64(userID), 10)
	return client.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(points), Member: member}).Err()
}

// GetLeaderboardTop 获取积分最高的前N名
func GetLeaderboardTop(limit int) ([]LeaderboardEntry, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	items, err := client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取排行榜失败: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(items))
	for _, item := range items {
		member, ok := item.Member.(string)
		if !ok {
			continue
		}
		userID, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID: uint(userID),
			Points: int(item.Score),
		})
	}

	return entries, nil
}
