package password

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost 居民账号密码的bcrypt代价因子
const hashCost = bcrypt.DefaultCost

// Hash 生成居民账号密码哈希，数据库只存哈希不存明文
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify 校验登录密码与存储的哈希是否匹配
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
