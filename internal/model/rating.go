package model

import "time"

// EventRating 活动评分
// Rating 取值 1..5，业务层校验

type EventRating struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index;comment:用户ID"`
	ActivityID uint      `gorm:"not null;index;comment:活动ID"`
	Rating     int       `gorm:"not null;comment:评分(1-5)"`
	Comment    string    `gorm:"type:text;comment:评价内容"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
}

func (EventRating) TableName() string { return "event_rating" }

// EventMemory 活动回忆（自由文本 + 照片链接）

type EventMemory struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index;comment:用户ID"`
	ActivityID uint      `gorm:"not null;index;comment:活动ID"`
	MemoryText string    `gorm:"type:text;comment:回忆文本"`
	PhotoURL   string    `gorm:"type:varchar(255);comment:照片URL"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
}

func (EventMemory) TableName() string { return "event_memory" }
