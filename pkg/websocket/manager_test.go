package websocket

import (
	"encoding/json"
	"testing"

	"community-system/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyDeliversToOnlineClient(t *testing.T) {
	m := GetManager()
	client := &Client{UserID: 9001, Send: make(chan []byte, 1)}
	m.AddClient(9001, client)
	defer m.RemoveClient(9001)

	m.Notify(9001, &redis.Notification{Type: "friend_request", Message: "hello"})

	require.Len(t, client.Send, 1)
	var got redis.Notification
	require.NoError(t, json.Unmarshal(<-client.Send, &got))
	assert.Equal(t, "friend_request", got.Type)
	assert.Equal(t, "hello", got.Message)
}

func TestNotifyAfterRemoveClient(t *testing.T) {
	m := GetManager()
	client := &Client{UserID: 9002, Send: make(chan []byte, 1)}
	m.AddClient(9002, client)
	m.RemoveClient(9002)

	// 连接移除后通知走离线路径，不能向已关闭的通道发送
	assert.NotPanics(t, func() {
		m.Notify(9002, &redis.Notification{Type: "points_credited", Points: 50})
	})
	assert.False(t, m.IsOnline(9002))
}

func TestTrySendSkipsReplacedClient(t *testing.T) {
	m := GetManager()
	stale := &Client{UserID: 9003, Send: make(chan []byte, 1)}
	current := &Client{UserID: 9003, Send: make(chan []byte, 1)}
	m.AddClient(9003, current)
	defer m.RemoveClient(9003)

	// 旧连接不再挂在管理器上，离线补推要放弃而不是写错通道
	assert.False(t, m.trySend(9003, stale, []byte("{}")))
	assert.True(t, m.trySend(9003, current, []byte("{}")))
	assert.Len(t, current.Send, 1)
}
