package i18n

// 社区应用支持的语言代码
// 活动、奖励等内容字段均存四份：基础英文 + 中文 + 马来文 + 泰米尔文
const (
	LangEnglish = "en"
	LangChinese = "zh"
	LangMalay   = "ms"
	LangTamil   = "ta"
)

// Resolve 按语言代码解析显示文本
// 对应语言列为空或语言代码未知时回退到基础字段
func Resolve(lang, base, chinese, malay, tamil string) string {
	switch lang {
	case LangChinese:
		if chinese != "" {
			return chinese
		}
	case LangMalay:
		if malay != "" {
			return malay
		}
	case LangTamil:
		if tamil != "" {
			return tamil
		}
	}
	return base
}

// Normalize 规范化语言代码，未知语言一律按英文处理
func Normalize(lang string) string {
	switch lang {
	case LangChinese, LangMalay, LangTamil:
		return lang
	default:
		return LangEnglish
	}
}
