package service

import (
	"testing"

	"community-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeem(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 150)
	reward := env.createReward(t, "$5 NTUC Voucher", 100, true)

	redemption, balance, err := env.rewards.Redeem(user.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, redemption.PointsSpent)
	// 恰好扣除奖励所需积分，余额来自重查
	assert.Equal(t, 50, balance)

	got, err := env.profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Points)
}

func TestRedeemInsufficientPoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 99)
	reward := env.createReward(t, "$5 NTUC Voucher", 100, true)

	_, _, err := env.rewards.Redeem(user.ID, reward.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// 余额不变，也没有兑换记录
	got, err := env.profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, got.Points)

	var count int64
	require.NoError(t, env.db.Model(&model.Redemption{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRedeemUnavailableReward(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 500)
	reward := env.createReward(t, "Expired Voucher", 100, false)

	_, _, err := env.rewards.Redeem(user.ID, reward.ID)
	assert.ErrorIs(t, err, ErrRewardUnavailable)
}

func TestRedeemUnknownReward(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 500)

	_, _, err := env.rewards.Redeem(user.ID, 999)
	assert.ErrorIs(t, err, ErrRewardNotFound)
}

func TestListAvailableSortedByCost(t *testing.T) {
	env := newTestEnv(t)
	env.createReward(t, "Badminton Court Booking", 150, true)
	env.createReward(t, "Free Kopi Set", 50, true)
	env.createReward(t, "Hidden", 10, false)

	views, err := env.rewards.ListAvailable("en")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Free Kopi Set", views[0].Title)
	assert.Equal(t, "Badminton Court Booking", views[1].Title)
}

func TestListRedemptions(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 300)
	r1 := env.createReward(t, "Free Kopi Set", 50, true)
	r2 := env.createReward(t, "$5 NTUC Voucher", 100, true)

	_, _, err := env.rewards.Redeem(user.ID, r1.ID)
	require.NoError(t, err)
	_, _, err = env.rewards.Redeem(user.ID, r2.ID)
	require.NoError(t, err)

	views, err := env.rewards.ListRedemptions(user.ID, "en")
	require.NoError(t, err)
	require.Len(t, views, 2)

	got, err := env.profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, got.Points)
}
