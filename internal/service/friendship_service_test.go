package service

import (
	"testing"

	"community-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndAcceptFriendRequest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)

	f, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FriendStatusPending, f.Status)

	// bob 侧看到待处理请求
	pending, err := env.friends.ListPending(bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice.ID, pending[0].Requester.ID)

	require.NoError(t, env.friends.Accept(bob.ID, f.ID))

	// 双方都能在好友列表中看到对方
	aliceFriends, err := env.friends.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := env.friends.ListFriends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)

	// 一对用户只存一行
	var count int64
	require.NoError(t, env.db.Model(&model.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSendRequestToSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)

	_, err := env.friends.SendRequest(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFriend)
}

func TestDuplicateRequestRejected(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)

	_, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// 同方向重复
	_, err = env.friends.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrRequestExists)

	// 反方向也算重复
	_, err = env.friends.SendRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrRequestExists)
}

func TestDeclineBlocksRequest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)

	f, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, env.friends.Decline(bob.ID, f.ID))

	// 双方的好友列表都为空
	aliceFriends, err := env.friends.ListFriends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := env.friends.ListFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	// 被拒绝后不能再次发起
	_, err = env.friends.SendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrRequestExists)
}

func TestOnlyAddresseeCanRespond(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)
	carol := env.createProfile(t, "carol", "90001111", 0)

	f, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// 发起方不能替对方接受，第三人也不行
	assert.ErrorIs(t, env.friends.Accept(alice.ID, f.ID), ErrNotAddressee)
	assert.ErrorIs(t, env.friends.Accept(carol.ID, f.ID), ErrNotAddressee)
}

func TestAcceptTwiceRejected(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)

	f, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, env.friends.Accept(bob.ID, f.ID))

	assert.ErrorIs(t, env.friends.Accept(bob.ID, f.ID), ErrRequestNotPending)
}

func TestSearchExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	env.createProfile(t, "alicia", "98765432", 0)

	results, err := env.friends.Search(alice.ID, "ali")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alicia", results[0].Username)

	// 按电话搜索
	results, err = env.friends.Search(alice.ID, "9876")
	require.NoError(t, err)
	require.Len(t, results, 1)
}
