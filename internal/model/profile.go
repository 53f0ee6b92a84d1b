package model

import (
	"time"

	"gorm.io/gorm"
)

// Profile 居民账户
// 索引与唯一约束：用户名唯一、电话唯一、邮箱唯一、推荐码唯一
// 密码仅存储哈希（PasswordHash），不存储明文
// Points 为权威积分余额，只在与参与/兑换记录相同的事务内变动

type Profile struct {
	ID           uint           `gorm:"primaryKey"`
	Username     string         `gorm:"type:varchar(64);not null;uniqueIndex;comment:用户名"`
	Email        *string        `gorm:"type:varchar(128);uniqueIndex;comment:邮箱(可选)"`
	PhoneNumber  string         `gorm:"type:varchar(32);not null;uniqueIndex;comment:电话号码"`
	PasswordHash string         `gorm:"type:varchar(255);not null;comment:密码哈希"`
	Points       int            `gorm:"not null;default:0;comment:积分余额"`
	QRCode       string         `gorm:"type:varchar(64);not null;uniqueIndex;comment:个人推荐码"`
	CreatedAt    time.Time      `gorm:"comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string { return "profile" }
