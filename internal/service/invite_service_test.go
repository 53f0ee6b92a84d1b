package service

import (
	"strings"
	"testing"

	"community-system/pkg/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvite(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	invite, err := env.invites.BuildInvite(alice.ID, "+65 9876 5432", "en")
	require.NoError(t, err)

	// wa.me 深链接指向规范化后的号码
	assert.True(t, strings.HasPrefix(invite.Link, "https://wa.me/6598765432?text="))
	assert.Equal(t, "6598765432", invite.ReferredPhone)
	// 消息带本人推荐码和应用地址
	assert.Contains(t, invite.Message, alice.QRCode)
	assert.Contains(t, invite.Message, "https://jiome.keathong.sg")

	// 推荐记录落库，等待被邀请人注册
	referrals, err := env.invites.ListReferrals(alice.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.False(t, referrals[0].BonusPointsAwarded)
	assert.Nil(t, referrals[0].ReferredUserID)
}

func TestBuildInviteRepeatedSamePhone(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	// 同一电话催两次，复用同一条未发奖记录
	_, err := env.invites.BuildInvite(alice.ID, "98765432", "en")
	require.NoError(t, err)
	_, err = env.invites.BuildInvite(alice.ID, "98765432", "en")
	require.NoError(t, err)

	referrals, err := env.invites.ListReferrals(alice.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.False(t, referrals[0].BonusPointsAwarded)
}

func TestBuildInviteLocalized(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	invite, err := env.invites.BuildInvite(alice.ID, "98765432", "zh")
	require.NoError(t, err)
	assert.Contains(t, invite.Message, "吉丰社区")

	invite, err = env.invites.BuildInvite(alice.ID, "98765432", "ms")
	require.NoError(t, err)
	assert.Contains(t, invite.Message, "komuniti")
}

func TestBuildInviteInvalidPhone(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	_, err := env.invites.BuildInvite(alice.ID, "not-a-number", "en")
	assert.ErrorIs(t, err, whatsapp.ErrInvalidPhone)
}
