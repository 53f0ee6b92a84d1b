package model

import (
	"time"

	"community-system/pkg/i18n"
)

// Activity 社区活动
// 标题/描述/地点各存四种语言版本，基础字段为英文
// 内容由社区管理侧维护，服务端只读

type Activity struct {
	ID                 uint      `gorm:"primaryKey"`
	Title              string    `gorm:"type:varchar(255);not null;comment:标题"`
	TitleChinese       string    `gorm:"type:varchar(255);comment:标题(中文)"`
	TitleMalay         string    `gorm:"type:varchar(255);comment:标题(马来文)"`
	TitleTamil         string    `gorm:"type:varchar(255);comment:标题(泰米尔文)"`
	Description        string    `gorm:"type:text;comment:描述"`
	DescriptionChinese string    `gorm:"type:text;comment:描述(中文)"`
	DescriptionMalay   string    `gorm:"type:text;comment:描述(马来文)"`
	DescriptionTamil   string    `gorm:"type:text;comment:描述(泰米尔文)"`
	Location           string    `gorm:"type:varchar(255);comment:地点"`
	LocationChinese    string    `gorm:"type:varchar(255);comment:地点(中文)"`
	LocationMalay      string    `gorm:"type:varchar(255);comment:地点(马来文)"`
	LocationTamil      string    `gorm:"type:varchar(255);comment:地点(泰米尔文)"`
	ActivityDate       string    `gorm:"type:varchar(16);not null;comment:活动日期(YYYY-MM-DD)"`
	ActivityTime       string    `gorm:"type:varchar(8);not null;comment:活动时间(HH:MM)"`
	ImageURL           string    `gorm:"type:varchar(255);comment:图片URL"`
	MaxAttendees       *int      `gorm:"comment:人数上限(空为不限)"`
	PointsReward       int       `gorm:"not null;default:0;comment:参加奖励积分"`
	CreatedAt          time.Time `gorm:"comment:创建时间"`
}

func (Activity) TableName() string { return "activity" }

// LocalizedTitle 按语言解析标题
func (a *Activity) LocalizedTitle(lang string) string {
	return i18n.Resolve(lang, a.Title, a.TitleChinese, a.TitleMalay, a.TitleTamil)
}

// LocalizedDescription 按语言解析描述
func (a *Activity) LocalizedDescription(lang string) string {
	return i18n.Resolve(lang, a.Description, a.DescriptionChinese, a.DescriptionMalay, a.DescriptionTamil)
}

// LocalizedLocation 按语言解析地点
func (a *Activity) LocalizedLocation(lang string) string {
	return i18n.Resolve(lang, a.Location, a.LocationChinese, a.LocationMalay, a.LocationTamil)
}
