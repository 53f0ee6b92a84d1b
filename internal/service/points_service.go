package service

import (
	"sort"
	"time"

	"community-system/config"
	"community-system/internal/repository"
	"community-system/pkg/redis"
)

// 积分流水类型
const (
	PointsEntryActivity   = "activity_reward"
	PointsEntryRedemption = "redemption"
	PointsEntryReferral   = "referral_bonus"
)

type PointsService struct {
	profileRepo  *repository.ProfileRepository
	activityRepo *repository.ActivityRepository
	rewardRepo   *repository.RewardRepository
	referralRepo *repository.ReferralRepository
	community    config.CommunityConfig
}

func NewPointsService(
	profileRepo *repository.ProfileRepository,
	activityRepo *repository.ActivityRepository,
	rewardRepo *repository.RewardRepository,
	referralRepo *repository.ReferralRepository,
	community config.CommunityConfig,
) *PointsService {
	return &PointsService{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		rewardRepo:   rewardRepo,
		referralRepo: referralRepo,
		community:    community,
	}
}

// PointsHistoryEntry 积分流水条目
// Points 为带符号变动值：获得为正，消耗为负
type PointsHistoryEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	OccurredAt  string `json:"occurred_at"`

	occurredAt time.Time
}

// LeaderboardItem 排行榜条目（带用户名）
type LeaderboardItem struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// Balance 积分余额
// 先读Redis缓存，未命中回源数据库并回填
func (s *PointsService) Balance(userID uint) (int, error) {
	if points, err := redis.GetCachedBalance(userID); err == nil {
		return points, nil
	}

	p, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetCachedBalance(userID, p.Points)
	return p.Points, nil
}

// History 积分流水
// 由参与记录、兑换记录和推荐奖励合并而成，按时间倒序
func (s *PointsService) History(userID uint, lang string) ([]*PointsHistoryEntry, error) {
	entries := make([]*PointsHistoryEntry, 0)

	participations, err := s.activityRepo.ListParticipationsByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range participations {
		if p.PointsEarned == 0 {
			continue
		}
		title := ""
		if p.Activity != nil {
			title = p.Activity.LocalizedTitle(lang)
		}
		entries = append(entries, &PointsHistoryEntry{
			Type:        PointsEntryActivity,
			Description: title,
			Points:      p.PointsEarned,
			occurredAt:  p.JoinedAt,
		})
	}

	redemptions, err := s.rewardRepo.ListRedemptionsByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, r := range redemptions {
		title := ""
		if r.Reward != nil {
			title = r.Reward.LocalizedTitle(lang)
		}
		entries = append(entries, &PointsHistoryEntry{
			Type:        PointsEntryRedemption,
			Description: title,
			Points:      -r.PointsSpent,
			occurredAt:  r.RedeemedAt,
		})
	}

	referrals, err := s.referralRepo.ListByReferrer(userID)
	if err != nil {
		return nil, err
	}
	for _, ref := range referrals {
		if !ref.BonusPointsAwarded {
			continue
		}
		entries = append(entries, &PointsHistoryEntry{
			Type:        PointsEntryReferral,
			Description: ref.ReferredPhone,
			Points:      s.community.ReferralBonus,
			occurredAt:  ref.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].occurredAt.After(entries[j].occurredAt)
	})
	for _, e := range entries {
		e.OccurredAt = e.occurredAt.Format("2006-01-02 15:04:05")
	}
	return entries, nil
}

// Leaderboard 社区积分排行
// 优先读Redis有序集合；不可用时回源数据库并重建缓存
func (s *PointsService) Leaderboard(limit int) ([]*LeaderboardItem, error) {
	if limit <= 0 {
		limit = 10
	}

	if entries, err := redis.GetLeaderboardTop(limit); err == nil && len(entries) > 0 {
		ids := make([]uint, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.UserID)
		}
		profiles, err := s.profileRepo.GetByIDs(ids)
		if err != nil {
			return nil, err
		}
		names := make(map[uint]string, len(profiles))
		for _, p := range profiles {
			names[p.ID] = p.Username
		}

		items := make([]*LeaderboardItem, 0, len(entries))
		for i, e := range entries {
			items = append(items, &LeaderboardItem{
				Rank:     i + 1,
				UserID:   e.UserID,
				Username: names[e.UserID],
				Points:   e.Points,
			})
		}
		return items, nil
	}

	// 回源数据库
	profiles, err := s.profileRepo.ListTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	items := make([]*LeaderboardItem, 0, len(profiles))
	for i, p := range profiles {
		items = append(items, &LeaderboardItem{
			Rank:     i + 1,
			UserID:   p.ID,
			Username: p.Username,
			Points:   p.Points,
		})
		// 重建排行榜缓存
		_ = redis.SetLeaderboardPoints(p.ID, p.Points)
	}
	return items, nil
}
