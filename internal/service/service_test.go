package service

import (
	"testing"
	"time"

	"community-system/config"
	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/jwt"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// setupTestDB 内存数据库
// TranslateError 打开后，唯一约束冲突统一映射为 gorm.ErrDuplicatedKey，
// 与生产环境的MySQL行为一致
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Activity{},
		&model.Participation{},
		&model.Friendship{},
		&model.Reward{},
		&model.Redemption{},
		&model.EventRating{},
		&model.EventMemory{},
		&model.Hobby{},
		&model.UserHobby{},
		&model.FriendReferral{},
	)
	require.NoError(t, err)

	return db
}

// testEnv 一组已接线的服务，供用例直接调用
type testEnv struct {
	db *gorm.DB

	profileRepo    *repository.ProfileRepository
	activityRepo   *repository.ActivityRepository
	friendshipRepo *repository.FriendshipRepository
	rewardRepo     *repository.RewardRepository
	hobbyRepo      *repository.HobbyRepository
	referralRepo   *repository.ReferralRepository

	auth       *AuthService
	activities *ActivityService
	rewards    *RewardService
	friends    *FriendshipService
	hobbies    *HobbyService
	invites    *InviteService
	points     *PointsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	community := config.CommunityConfig{
		Name:           "JioME @ Keat Hong",
		AppURL:         "https://jiome.keathong.sg",
		EmergencyPhone: "67694194",
		ReferralBonus:  50,
		InviteBaseURL:  "https://wa.me/",
	}
	jwtSvc := jwt.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "jiome-test",
	})

	env := &testEnv{
		db:             db,
		profileRepo:    repository.NewProfileRepository(db),
		activityRepo:   repository.NewActivityRepository(db),
		friendshipRepo: repository.NewFriendshipRepository(db),
		rewardRepo:     repository.NewRewardRepository(db),
		hobbyRepo:      repository.NewHobbyRepository(db),
		referralRepo:   repository.NewReferralRepository(db),
	}
	env.auth = NewAuthService(db, env.profileRepo, env.referralRepo, jwtSvc, community)
	env.activities = NewActivityService(db, env.activityRepo, env.profileRepo, env.friendshipRepo)
	env.rewards = NewRewardService(db, env.rewardRepo, env.profileRepo)
	env.friends = NewFriendshipService(env.friendshipRepo, env.profileRepo)
	env.hobbies = NewHobbyService(env.hobbyRepo)
	env.invites = NewInviteService(env.profileRepo, env.referralRepo, community)
	env.points = NewPointsService(env.profileRepo, env.activityRepo, env.rewardRepo, env.referralRepo, community)

	return env
}

// createProfile 直接落库一个居民账户
func (env *testEnv) createProfile(t *testing.T, username, phone string, points int) *model.Profile {
	t.Helper()

	email := username + "@example.com"
	p := &model.Profile{
		Username:     username,
		Email:        &email,
		PhoneNumber:  phone,
		PasswordHash: "x",
		Points:       points,
		QRCode:       "KH-" + username,
	}
	require.NoError(t, env.db.Create(p).Error)
	return p
}

// createActivity 直接落库一个活动
func (env *testEnv) createActivity(t *testing.T, title string, points int, maxAttendees *int) *model.Activity {
	t.Helper()

	a := &model.Activity{
		Title:        title,
		ActivityDate: "2026-09-05",
		ActivityTime: "10:00",
		MaxAttendees: maxAttendees,
		PointsReward: points,
	}
	require.NoError(t, env.db.Create(a).Error)
	return a
}

// createReward 直接落库一个奖励
func (env *testEnv) createReward(t *testing.T, title string, cost int, available bool) *model.Reward {
	t.Helper()

	r := &model.Reward{
		Title:       title,
		PointsCost:  cost,
		IsAvailable: available,
	}
	require.NoError(t, env.db.Create(r).Error)
	return r
}
