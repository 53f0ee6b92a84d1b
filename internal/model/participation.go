package model

import "time"

// Participation 活动参与记录
// (UserID, ActivityID) 唯一：同一用户对同一活动至多一条记录
// PointsEarned 记录报名时刻的奖励积分，活动奖励后续调整不影响已发放记录

type Participation struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_participation_user_activity;comment:用户ID"`
	ActivityID   uint      `gorm:"not null;uniqueIndex:idx_participation_user_activity;index;comment:活动ID"`
	PointsEarned int       `gorm:"not null;default:0;comment:报名获得积分"`
	JoinedAt     time.Time `gorm:"autoCreateTime;comment:报名时间"`

	Activity *Activity `gorm:"foreignKey:ActivityID"`
}

func (Participation) TableName() string { return "participation" }
