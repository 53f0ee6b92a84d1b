package model

import "time"

// FriendReferral 好友推荐记录
// 发出邀请时落库；被邀请人注册并填写推荐码后关联用户并标记已发奖

type FriendReferral struct {
	ID                 uint      `gorm:"primaryKey"`
	ReferrerID         uint      `gorm:"not null;index;comment:推荐人用户ID"`
	ReferredPhone      string    `gorm:"type:varchar(32);not null;index;comment:被邀请人电话"`
	ReferredUserID     *uint     `gorm:"index;comment:被邀请人注册后的用户ID"`
	BonusPointsAwarded bool      `gorm:"not null;default:false;comment:奖励积分是否已发放"`
	CreatedAt          time.Time `gorm:"comment:创建时间"`
}

func (FriendReferral) TableName() string { return "friend_referral" }
