package model

import "time"

// Redemption 奖励兑换记录
// 与积分扣减在同一事务中写入，余额不足时整个事务回滚

type Redemption struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index;comment:用户ID"`
	RewardID    uint      `gorm:"not null;index;comment:奖励ID"`
	PointsSpent int       `gorm:"not null;comment:消耗积分"`
	RedeemedAt  time.Time `gorm:"autoCreateTime;comment:兑换时间"`

	Reward *Reward `gorm:"foreignKey:RewardID"`
}

func (Redemption) TableName() string { return "redemption" }
