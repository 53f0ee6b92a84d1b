package repository

import (
	"community-system/internal/model"

	"gorm.io/gorm"
)

type RewardRepository struct {
	orm *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{orm: db}
}

func (r *RewardRepository) GetByID(id uint) (*model.Reward, error) {
	var reward model.Reward
	if err := r.orm.First(&reward, id).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// ListAvailable 可兑换奖励，按所需积分升序
func (r *RewardRepository) ListAvailable() ([]*model.Reward, error) {
	var rewards []*model.Reward
	err := r.orm.Where("is_available = ?", true).
		Order("points_cost").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

// CreateRedemptionTx 事务内创建兑换记录
func (r *RewardRepository) CreateRedemptionTx(tx *gorm.DB, redemption *model.Redemption) error {
	return tx.Create(redemption).Error
}

// ListRedemptionsByUser 用户兑换历史（含奖励信息，按兑换时间倒序）
func (r *RewardRepository) ListRedemptionsByUser(userID uint) ([]*model.Redemption, error) {
	var redemptions []*model.Redemption
	err := r.orm.Preload("Reward").
		Where("user_id = ?", userID).
		Order("redeemed_at DESC").
		Find(&redemptions).Error
	if err != nil {
		return nil, err
	}
	return redemptions, nil
}
