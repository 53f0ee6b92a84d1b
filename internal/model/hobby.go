package model

import "time"

// Hobby 兴趣爱好词表

type Hobby struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex;comment:爱好名称"`
	Icon      string    `gorm:"type:varchar(16);comment:图标"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (Hobby) TableName() string { return "hobby" }

// UserHobby 用户与爱好的关联
// (UserID, HobbyName) 唯一；匹配按爱好名称的精确字符串相等

type UserHobby struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_hobby;comment:用户ID"`
	HobbyName string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_hobby;index;comment:爱好名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`

	Profile *Profile `gorm:"foreignKey:UserID"`
}

func (UserHobby) TableName() string { return "user_hobby" }
