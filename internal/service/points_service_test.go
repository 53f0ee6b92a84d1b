package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceFromDatabase(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 120)

	// Redis未初始化时直接回源数据库
	points, err := env.points.Balance(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, points)
}

func TestHistoryMergesAllSources(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	activity := env.createActivity(t, "Morning Tai Chi", 50, nil)
	reward := env.createReward(t, "Free Kopi Set", 30, true)

	_, err := env.activities.Join(alice.ID, activity.ID)
	require.NoError(t, err)
	_, _, err = env.rewards.Redeem(alice.ID, reward.ID)
	require.NoError(t, err)

	entries, err := env.points.History(alice.ID, "en")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byType := make(map[string]int)
	for _, e := range entries {
		byType[e.Type] = e.Points
	}
	// 获得为正，消耗为负
	assert.Equal(t, 50, byType[PointsEntryActivity])
	assert.Equal(t, -30, byType[PointsEntryRedemption])
}

func TestHistoryIncludesReferralBonus(t *testing.T) {
	env := newTestEnv(t)

	referrer, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)
	_, err = env.invites.BuildInvite(referrer.ID, "98765432", "en")
	require.NoError(t, err)
	_, _, err = env.auth.Register("bob", "", "98765432", "secret123", referrer.QRCode)
	require.NoError(t, err)

	entries, err := env.points.History(referrer.ID, "en")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, PointsEntryReferral, entries[0].Type)
	assert.Equal(t, 50, entries[0].Points)
}

func TestHistoryMatchesBalanceAfterRepeatedInvite(t *testing.T) {
	env := newTestEnv(t)

	referrer, _, err := env.auth.Register("alice", "", "91234567", "secret123", "")
	require.NoError(t, err)

	// 邀请同一电话两次，注册后奖励只有一次，流水要与余额对上
	_, err = env.invites.BuildInvite(referrer.ID, "98765432", "en")
	require.NoError(t, err)
	_, err = env.invites.BuildInvite(referrer.ID, "98765432", "en")
	require.NoError(t, err)
	_, _, err = env.auth.Register("bob", "", "98765432", "secret123", referrer.QRCode)
	require.NoError(t, err)

	balance, err := env.points.Balance(referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	entries, err := env.points.History(referrer.ID, "en")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, PointsEntryReferral, entries[0].Type)

	total := 0
	for _, e := range entries {
		total += e.Points
	}
	assert.Equal(t, balance, total)
}

func TestLeaderboardFallsBackToDatabase(t *testing.T) {
	env := newTestEnv(t)
	env.createProfile(t, "alice", "91234567", 300)
	env.createProfile(t, "bob", "98765432", 100)
	env.createProfile(t, "carol", "90001111", 200)

	items, err := env.points.Leaderboard(2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Rank)
	assert.Equal(t, "alice", items[0].Username)
	assert.Equal(t, 300, items[0].Points)
	assert.Equal(t, "carol", items[1].Username)
}
