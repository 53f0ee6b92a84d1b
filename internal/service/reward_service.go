package service

import (
	"errors"

	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/redis"

	"gorm.io/gorm"
)

var (
	// ErrRewardNotFound 奖励不存在
	ErrRewardNotFound = errors.New("reward not found")
	// ErrRewardUnavailable 奖励已下架
	ErrRewardUnavailable = errors.New("reward is not available")
	// ErrInsufficientPoints 积分余额不足
	ErrInsufficientPoints = errors.New("insufficient points")
)

type RewardService struct {
	db          *gorm.DB
	rewardRepo  *repository.RewardRepository
	profileRepo *repository.ProfileRepository
}

func NewRewardService(
	db *gorm.DB,
	rewardRepo *repository.RewardRepository,
	profileRepo *repository.ProfileRepository,
) *RewardService {
	return &RewardService{
		db:          db,
		rewardRepo:  rewardRepo,
		profileRepo: profileRepo,
	}
}

// RewardView 奖励列表条目（按请求语言本地化）
type RewardView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PointsCost  int    `json:"points_cost"`
	ImageURL    string `json:"image_url,omitempty"`
}

// RedemptionView 兑换历史条目
type RedemptionView struct {
	ID          uint   `json:"id"`
	RewardID    uint   `json:"reward_id"`
	Title       string `json:"title"`
	PointsSpent int    `json:"points_spent"`
	RedeemedAt  string `json:"redeemed_at"`
}

// ListAvailable 可兑换奖励列表
func (s *RewardService) ListAvailable(lang string) ([]*RewardView, error) {
	rewards, err := s.rewardRepo.ListAvailable()
	if err != nil {
		return nil, err
	}

	views := make([]*RewardView, 0, len(rewards))
	for _, r := range rewards {
		views = append(views, &RewardView{
			ID:          r.ID,
			Title:       r.LocalizedTitle(lang),
			Description: r.LocalizedDescription(lang),
			PointsCost:  r.PointsCost,
			ImageURL:    r.ImageURL,
		})
	}
	return views, nil
}

// Redeem 兑换奖励
// 先做余额快速校验，再在同一事务内写入兑换记录并带保护扣分
// 两道关卡任一不过均不产生任何写入；返回的余额来自重查而非本地计算
func (s *RewardService) Redeem(userID, rewardID uint) (*model.Redemption, int, error) {
	reward, err := s.rewardRepo.GetByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrRewardNotFound
		}
		return nil, 0, err
	}
	if !reward.IsAvailable {
		return nil, 0, ErrRewardUnavailable
	}

	// 快速校验，避免明显不足时开启事务
	p, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, 0, err
	}
	if p.Points < reward.PointsCost {
		return nil, 0, ErrInsufficientPoints
	}

	redemption := &model.Redemption{
		UserID:      userID,
		RewardID:    rewardID,
		PointsSpent: reward.PointsCost,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.profileRepo.DebitPointsTx(tx, userID, reward.PointsCost)
		if err != nil {
			return err
		}
		if !ok {
			// 快速校验后余额又被并发消耗
			return ErrInsufficientPoints
		}
		return s.rewardRepo.CreateRedemptionTx(tx, redemption)
	})
	if err != nil {
		return nil, 0, err
	}

	// 积分缓存维护（尽力而为）
	_ = redis.InvalidateBalance(userID)
	_ = redis.AddLeaderboardPoints(userID, -reward.PointsCost)

	// 余额以数据库为准
	p, err = s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, 0, err
	}
	return redemption, p.Points, nil
}

// ListRedemptions 个人兑换历史
func (s *RewardService) ListRedemptions(userID uint, lang string) ([]*RedemptionView, error) {
	redemptions, err := s.rewardRepo.ListRedemptionsByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]*RedemptionView, 0, len(redemptions))
	for _, r := range redemptions {
		v := &RedemptionView{
			ID:          r.ID,
			RewardID:    r.RewardID,
			PointsSpent: r.PointsSpent,
			RedeemedAt:  r.RedeemedAt.Format("2006-01-02 15:04:05"),
		}
		if r.Reward != nil {
			v.Title = r.Reward.LocalizedTitle(lang)
		}
		views = append(views, v)
	}
	return views, nil
}
