package handler

import (
	"strconv"

	"community-system/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// requestLang 解析请求语言
// 优先取 lang 查询参数，其次 X-Language 头，归一化为受支持的语言码
func requestLang(c *gin.Context) string {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("X-Language")
	}
	return i18n.Normalize(lang)
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
