package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"community-system/pkg/i18n"
)

// 邀请消息模板，按语言区分
// 占位符：%s 依次为 应用地址、推荐码
const (
	inviteTemplateEN = "🏠 Hi! I'm using JioME @ Keat Hong - a community app for neighbors to connect and join activities together!\n\nJoin me and earn points for rewards! 🎁\n\nDownload: %s\nMy referral code: %s\n\nLet's be more connected with our community! 😊"
	inviteTemplateZH = "🏠 你好！我在使用吉丰社区应用 - 邻居们可以连接并一起参加活动！\n\n加入我，赚取积分换取奖励！🎁\n\n下载链接：%s\n我的推荐码：%s\n\n让我们与社区更紧密地联系！😊"
	inviteTemplateMS = "🏠 Hi! Saya menggunakan JioME @ Keat Hong - aplikasi komuniti untuk jiran berhubung dan sertai aktiviti bersama!\n\nSertai saya dan dapatkan mata untuk ganjaran! 🎁\n\nMuat turun: %s\nKod rujukan saya: %s\n\nMari lebih terhubung dengan komuniti kita! 😊"
	inviteTemplateTA = "🏠 வணக்கம்! நான் JioME @ Keat Hong பயன்படுத்துகிறேன் - அண்டை வீட்டார் இணைந்து செயல்பாடுகளில் பங்கேற்க ஒரு சமுதாய ஆப்!\n\nஎன்னுடன் சேர்ந்து வெகுமதிகளுக்கு புள்ளிகளைப் பெறுங்கள்! 🎁\n\nபதிவிறக்கம்: %s\nஎன் பரிந்துரை குறியீடு: %s\n\nநம் சமுதாயத்துடன் மேலும் இணைந்திருப்போம்! 😊"
)

var (
	// ErrInvalidPhone 电话号码无效（去掉非数字后为空）
	ErrInvalidPhone = errors.New("invalid phone number")
)

// NormalizePhone 规范化电话号码：仅保留数字
// "+65 1234 5678" -> "6512345678"
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildInviteMessage 构建带推荐码的邀请消息文本
func BuildInviteMessage(lang, appURL, referralCode string) string {
	var template string
	switch i18n.Normalize(lang) {
	case i18n.LangChinese:
		template = inviteTemplateZH
	case i18n.LangMalay:
		template = inviteTemplateMS
	case i18n.LangTamil:
		template = inviteTemplateTA
	default:
		template = inviteTemplateEN
	}
	return fmt.Sprintf(template, appURL, referralCode)
}

// BuildInviteLink 构建WhatsApp深链接
// baseURL 形如 https://wa.me/，消息文本URL编码后放入text参数
// 链接打开后由第三方应用发送，本服务不会收到任何送达回执
func BuildInviteLink(baseURL, phone, message string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", ErrInvalidPhone
	}

	return fmt.Sprintf("%s%s?text=%s",
		baseURL,
		digits,
		url.QueryEscape(message),
	), nil
}
