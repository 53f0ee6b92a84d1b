package model

import (
	"time"
)

// 好友关系状态
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusBlocked  = "blocked"
)

// Friendship 好友关系
// 一对用户只存一行：RequesterID 发起请求，AddresseeID 接受或拒绝
// 查询时对两个方向做对称匹配，接受请求只需更新状态，无需反向插入
// (RequesterID, AddresseeID) 唯一，反方向的重复请求由业务层查询拦截

type Friendship struct {
	ID          uint      `gorm:"primaryKey"`
	RequesterID uint      `gorm:"not null;uniqueIndex:idx_friendship_pair;index;comment:发起方用户ID"`
	AddresseeID uint      `gorm:"not null;uniqueIndex:idx_friendship_pair;index;comment:接收方用户ID"`
	Status      string    `gorm:"type:varchar(32);not null;default:'pending';comment:关系状态"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`

	Requester *Profile `gorm:"foreignKey:RequesterID"`
	Addressee *Profile `gorm:"foreignKey:AddresseeID"`
}

func (Friendship) TableName() string { return "friendship" }

// OtherSide 返回关系中除 userID 以外的另一方ID
func (f *Friendship) OtherSide(userID uint) uint {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}
