package service

import (
	"strings"
	"testing"

	"community-system/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	profile, token, err := env.auth.Register("alice", "alice@example.com", "+65 9123 4567", "secret123", "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "alice", profile.Username)
	// 电话号码规范化为纯数字
	assert.Equal(t, "6591234567", profile.PhoneNumber)
	assert.Equal(t, 0, profile.Points)
	// 推荐码形如 KH-XXXXXXXX
	assert.True(t, strings.HasPrefix(profile.QRCode, "KH-"))
	assert.Len(t, profile.QRCode, 11)
	// 只存哈希，不存明文
	assert.NotEqual(t, "secret123", profile.PasswordHash)
	assert.True(t, password.Verify("secret123", profile.PasswordHash))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	_, _, err = env.auth.Register("alice", "", "98765432", "secret123", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	_, _, err = env.auth.Register("bob", "", "91234567", "secret123", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterWithReferralCode(t *testing.T) {
	env := newTestEnv(t)

	referrer, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	// 推荐人发出邀请后，新用户注册时填码
	_, err = env.invites.BuildInvite(referrer.ID, "98765432", "en")
	require.NoError(t, err)

	_, _, err = env.auth.Register("bob", "", "98765432", "secret123", referrer.QRCode)
	require.NoError(t, err)

	// 推荐人获得奖励积分
	got, err := env.profileRepo.GetByID(referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Points)

	// 推荐记录被关联并标记发奖
	referrals, err := env.referralRepo.ListByReferrer(referrer.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.True(t, referrals[0].BonusPointsAwarded)
	require.NotNil(t, referrals[0].ReferredUserID)
}

func TestRegisterWithReferralCodeWithoutInvite(t *testing.T) {
	env := newTestEnv(t)

	// 推荐码口头分享、没有事先的邀请记录，也要发奖并补记录
	referrer, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	_, _, err = env.auth.Register("bob", "", "98765432", "secret123", referrer.QRCode)
	require.NoError(t, err)

	got, err := env.profileRepo.GetByID(referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Points)

	referrals, err := env.referralRepo.ListByReferrer(referrer.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.True(t, referrals[0].BonusPointsAwarded)
	assert.Equal(t, "98765432", referrals[0].ReferredPhone)
}

func TestRegisterInvalidReferralCode(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register("bob", "", "98765432", "secret123", "KH-NOPE1234")
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register("alice", "alice@example.com", "91234567", "secret123", "")
	require.NoError(t, err)

	// 用户名、电话、邮箱均可作为登录标识
	for _, identifier := range []string{"alice", "91234567", "alice@example.com"} {
		p, token, err := env.auth.Login(identifier, "secret123")
		require.NoError(t, err, identifier)
		assert.Equal(t, "alice", p.Username)
		assert.NotEmpty(t, token)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	_, _, err = env.auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.auth.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
