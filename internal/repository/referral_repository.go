package repository

import (
	"errors"

	"community-system/internal/model"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	orm *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{orm: db}
}

func (r *ReferralRepository) Create(ref *model.FriendReferral) error {
	return r.orm.Create(ref).Error
}

// CreateTx 事务内创建推荐记录
func (r *ReferralRepository) CreateTx(tx *gorm.DB, ref *model.FriendReferral) error {
	return tx.Create(ref).Error
}

// GetUnawarded 查找推荐人对该电话的未发奖记录
func (r *ReferralRepository) GetUnawarded(referrerID uint, phone string) (*model.FriendReferral, error) {
	var ref model.FriendReferral
	err := r.orm.
		Where("referrer_id = ? AND referred_phone = ? AND bonus_points_awarded = ?", referrerID, phone, false).
		Order("id").
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// MarkAwardedTx 事务内将推荐人对该电话的未发奖记录标记为已发放并关联新用户
// 奖励积分只发一次，所以最多只标记一条记录（按ID取最早的一条）
// 返回命中的记录数，0表示事先没有邀请记录
func (r *ReferralRepository) MarkAwardedTx(tx *gorm.DB, referrerID uint, phone string, referredUserID uint) (int64, error) {
	var ref model.FriendReferral
	err := tx.
		Where("referrer_id = ? AND referred_phone = ? AND bonus_points_awarded = ?", referrerID, phone, false).
		Order("id").
		First(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	result := tx.Model(&model.FriendReferral{}).
		Where("id = ?", ref.ID).
		Updates(map[string]interface{}{
			"referred_user_id":     referredUserID,
			"bonus_points_awarded": true,
		})
	return result.RowsAffected, result.Error
}

// ListByReferrer 推荐人的全部推荐记录
func (r *ReferralRepository) ListByReferrer(referrerID uint) ([]*model.FriendReferral, error) {
	var referrals []*model.FriendReferral
	err := r.orm.Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}
