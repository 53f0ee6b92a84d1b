package service

import (
	"testing"

	"community-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinCreditsPoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 100)
	activity := env.createActivity(t, "Morning Tai Chi", 50, nil)

	p, err := env.activities.Join(user.ID, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, p.PointsEarned)

	got, err := env.profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, got.Points)
}

func TestJoinTwiceRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)
	activity := env.createActivity(t, "Morning Tai Chi", 50, nil)

	_, err := env.activities.Join(user.ID, activity.ID)
	require.NoError(t, err)

	_, err = env.activities.Join(user.ID, activity.ID)
	assert.ErrorIs(t, err, ErrAlreadyJoined)

	// 只有一条参与记录，积分只发放一次
	var count int64
	require.NoError(t, env.db.Model(&model.Participation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := env.profileRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Points)
}

func TestJoinFullActivity(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)
	limit := 1
	activity := env.createActivity(t, "Gardening Workshop", 25, &limit)

	_, err := env.activities.Join(alice.ID, activity.ID)
	require.NoError(t, err)

	_, err = env.activities.Join(bob.ID, activity.ID)
	assert.ErrorIs(t, err, ErrActivityFull)

	// 满员被拒不发积分
	got, err := env.profileRepo.GetByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Points)
}

func TestJoinUnknownActivity(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)

	_, err := env.activities.Join(user.ID, 999)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestListShowsJoinedAndFriendsGoing(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createProfile(t, "alice", "91234567", 0)
	bob := env.createProfile(t, "bob", "98765432", 0)
	carol := env.createProfile(t, "carol", "90001111", 0)
	activity := env.createActivity(t, "Community Kopi Talk", 15, nil)

	// alice 和 bob 是好友；bob 和 carol 都报名
	f, err := env.friends.SendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, env.friends.Accept(bob.ID, f.ID))

	_, err = env.activities.Join(bob.ID, activity.ID)
	require.NoError(t, err)
	_, err = env.activities.Join(carol.ID, activity.ID)
	require.NoError(t, err)

	views, err := env.activities.List(alice.ID, "en")
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, 2, v.AttendeeCount)
	assert.Equal(t, 1, v.FriendsGoing)
	assert.False(t, v.Joined)

	// bob 的视角：自己已报名
	views, err = env.activities.List(bob.ID, "en")
	require.NoError(t, err)
	assert.True(t, views[0].Joined)
}

func TestListLocalization(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)

	a := &model.Activity{
		Title:        "Morning Tai Chi",
		TitleChinese: "晨间太极",
		ActivityDate: "2026-09-05",
		ActivityTime: "07:30",
	}
	require.NoError(t, env.db.Create(a).Error)

	views, err := env.activities.List(user.ID, "zh")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "晨间太极", views[0].Title)

	// 泰米尔文缺失时回落英文
	views, err = env.activities.List(user.ID, "ta")
	require.NoError(t, err)
	assert.Equal(t, "Morning Tai Chi", views[0].Title)
}

func TestRateRequiresParticipation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)
	activity := env.createActivity(t, "Morning Tai Chi", 20, nil)

	_, err := env.activities.Rate(user.ID, activity.ID, 5, "great")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = env.activities.Join(user.ID, activity.ID)
	require.NoError(t, err)

	r, err := env.activities.Rate(user.ID, activity.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)

	view, err := env.activities.ListRatings(activity.ID)
	require.NoError(t, err)
	assert.Len(t, view.Ratings, 1)
	assert.Equal(t, 5.0, view.Average)
}

func TestRateOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)
	activity := env.createActivity(t, "Morning Tai Chi", 20, nil)

	_, err := env.activities.Join(user.ID, activity.ID)
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err := env.activities.Rate(user.ID, activity.ID, rating, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestAddMemoryRequiresParticipation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)
	activity := env.createActivity(t, "Morning Tai Chi", 20, nil)

	_, err := env.activities.AddMemory(user.ID, activity.ID, "lovely morning", "")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = env.activities.Join(user.ID, activity.ID)
	require.NoError(t, err)

	m, err := env.activities.AddMemory(user.ID, activity.ID, "lovely morning", "https://img.example/1.jpg")
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
}

func TestMyActivities(t *testing.T) {
	env := newTestEnv(t)
	user := env.createProfile(t, "alice", "91234567", 0)
	a1 := env.createActivity(t, "Morning Tai Chi", 20, nil)
	a2 := env.createActivity(t, "Gardening Workshop", 25, nil)

	_, err := env.activities.Join(user.ID, a1.ID)
	require.NoError(t, err)
	_, err = env.activities.Join(user.ID, a2.ID)
	require.NoError(t, err)

	views, err := env.activities.MyActivities(user.ID, "en")
	require.NoError(t, err)
	require.Len(t, views, 2)
}
