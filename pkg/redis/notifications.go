package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// 离线通知队列
// 用户不在线时通知暂存在Redis列表，连接建立后一次性推送并清空
// 仅保留最近 MaxQueuedNotifications 条，过期自动清理

const (
	notifyKeyPrefix        = "jiome:notify:user:" // 离线通知key前缀
	notifyTTL              = 7 * 24 * time.Hour   // 离线通知保留时长
	MaxQueuedNotifications = 50                   // 单用户最大暂存通知数
)

// Notification 通知载荷
// Type: friend_request / request_accepted / points_credited
type Notification struct {
	Type      string `json:"type"`
	FromID    uint   `json:"from_id,omitempty"`
	Message   string `json:"message"`
	Points    int    `json:"points,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// QueueNotification 暂存离线通知
func QueueNotification(userID uint, n *Notification) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("序列化通知失败: %w", err)
	}

	key := fmt.Sprintf("%s%d", notifyKeyPrefix, userID)
	if err := client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("暂存离线通知失败: %w", err)
	}

	// 截断到最近N条并刷新TTL
	_ = client.LTrim(ctx, key, -int64(MaxQueuedNotifications), -1).Err()
	_ = client.Expire(ctx, key, notifyTTL).Err()

	return nil
}

// GetQueuedNotifications 获取暂存的离线通知
func GetQueuedNotifications(userID uint, limit int) ([]*Notification, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}

	key := fmt.Sprintf("%s%d", notifyKeyPrefix, userID)
	items, err := client.LRange(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取离线通知失败: %w", err)
	}

	notifications := make([]*Notification, 0, len(items))
	for _, item := range items {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// ClearQueuedNotifications 清空暂存通知（推送完成后调用）
func ClearQueuedNotifications(userID uint) error {
	key := fmt.Sprintf("%s%d", notifyKeyPrefix, userID)
	return Del(key)
}
