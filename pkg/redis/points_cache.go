package redis

import (
	"fmt"
	"strconv"
	"time"
)

// 积分余额缓存
// 数据库中的 profile.points 始终是权威值，缓存仅用于高频读取
// 任何积分变动（报名加分、兑换扣分、推荐奖励）后必须失效缓存

const (
	pointsKeyPrefix = "jiome:points:user:" // 积分余额key前缀
	pointsCacheTTL  = 5 * time.Minute      // 余额缓存TTL
)

// SetCachedBalance 写入积分余额缓存
func SetCachedBalance(userID uint, points int) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", pointsKeyPrefix, userID)
	return Set(key, points, pointsCacheTTL)
}

// GetCachedBalance 读取积分余额缓存
// 缓存未命中或Redis不可用时返回错误，由调用方回源数据库
func GetCachedBalance(userID uint) (int, error) {
	key := fmt.Sprintf("%s%d", pointsKeyPrefix, userID)

	val, err := Get(key)
	if err != nil {
		return 0, fmt.Errorf("获取积分缓存失败: %w", err)
	}

	points, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("积分缓存格式错误: %w", err)
	}

	return points, nil
}

// InvalidateBalance 积分变动后使缓存失效
func InvalidateBalance(userID uint) error {
	key := fmt.Sprintf("%s%d", pointsKeyPrefix, userID)
	return Del(key)
}
