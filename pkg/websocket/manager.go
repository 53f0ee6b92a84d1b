package websocket

import (
	"encoding/json"
	"sync"

	"community-system/pkg/redis"

	"github.com/gorilla/websocket"
)

// Client 代表一个WebSocket连接的用户
type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager 管理所有在线用户的WebSocket连接
// 并发安全；用户不在线时通知落入Redis离线队列

type Manager struct {
	clients map[uint]*Client // 在线用户
	lock    sync.RWMutex
}

var manager = &Manager{
	clients: make(map[uint]*Client),
}

// GetManager 获取全局WebSocket管理器
func GetManager() *Manager {
	return manager
}

// AddClient 添加新连接
func (m *Manager) AddClient(userID uint, client *Client) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.clients[userID] = client

	// 推送Redis中暂存的离线通知
	go m.pushQueuedNotifications(userID, client)
}

// RemoveClient 移除连接
func (m *Manager) RemoveClient(userID uint) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if c, ok := m.clients[userID]; ok {
		close(c.Send)
		delete(m.clients, userID)
	}
}

// IsOnline 判断用户是否在线
func (m *Manager) IsOnline(userID uint) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// Notify 推送通知给指定用户
// 若用户不在线则暂存到Redis离线通知队列
func (m *Manager) Notify(userID uint, n *redis.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	// Send只会在持有写锁时被关闭，发送必须在读锁内完成
	m.lock.RLock()
	client, ok := m.clients[userID]
	if ok {
		select {
		case client.Send <- data:
		default:
			// 发送通道已满，可能连接已断开
		}
	}
	m.lock.RUnlock()

	if !ok {
		// 不在线，暂存离线通知
		go func() {
			_ = redis.QueueNotification(userID, n)
		}()
	}
}

// pushQueuedNotifications 推送离线通知给刚上线的用户
func (m *Manager) pushQueuedNotifications(userID uint, client *Client) {
	notifications, err := redis.GetQueuedNotifications(userID, redis.MaxQueuedNotifications)
	if err != nil {
		return
	}

	for _, n := range notifications {
		data, err := json.Marshal(n)
		if err != nil {
			continue
		}
		if !m.trySend(userID, client, data) {
			return
		}
	}

	// 推送完成后清空离线通知
	_ = redis.ClearQueuedNotifications(userID)
}

// trySend 在读锁内向仍在线的client发送，连接已被移除或替换时返回false
func (m *Manager) trySend(userID uint, client *Client, data []byte) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.clients[userID] != client {
		return false
	}
	select {
	case client.Send <- data:
		return true
	default:
		return false
	}
}
