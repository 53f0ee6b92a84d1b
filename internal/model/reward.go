package model

import (
	"time"

	"community-system/pkg/i18n"
)

// Reward 可兑换奖励
// 内容由社区管理侧维护，服务端只读

type Reward struct {
	ID                 uint      `gorm:"primaryKey"`
	Title              string    `gorm:"type:varchar(255);not null;comment:标题"`
	TitleChinese       string    `gorm:"type:varchar(255);comment:标题(中文)"`
	TitleMalay         string    `gorm:"type:varchar(255);comment:标题(马来文)"`
	TitleTamil         string    `gorm:"type:varchar(255);comment:标题(泰米尔文)"`
	Description        string    `gorm:"type:text;comment:描述"`
	DescriptionChinese string    `gorm:"type:text;comment:描述(中文)"`
	DescriptionMalay   string    `gorm:"type:text;comment:描述(马来文)"`
	DescriptionTamil   string    `gorm:"type:text;comment:描述(泰米尔文)"`
	PointsCost         int       `gorm:"not null;comment:兑换所需积分"`
	ImageURL           string    `gorm:"type:varchar(255);comment:图片URL"`
	IsAvailable        bool      `gorm:"not null;default:true;comment:是否可兑换"`
	CreatedAt          time.Time `gorm:"comment:创建时间"`
}

func (Reward) TableName() string { return "reward" }

// LocalizedTitle 按语言解析标题
func (r *Reward) LocalizedTitle(lang string) string {
	return i18n.Resolve(lang, r.Title, r.TitleChinese, r.TitleMalay, r.TitleTamil)
}

// LocalizedDescription 按语言解析描述
func (r *Reward) LocalizedDescription(lang string) string {
	return i18n.Resolve(lang, r.Description, r.DescriptionChinese, r.DescriptionMalay, r.DescriptionTamil)
}
