package repository

import (
	"community-system/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	orm *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{orm: db}
}

func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.orm.Create(profile).Error
}

func (r *ProfileRepository) GetByID(id uint) (*model.Profile, error) {
	var p model.Profile
	if err := r.orm.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByIdentifier 按用户名/电话/邮箱任一标识查找
func (r *ProfileRepository) GetByIdentifier(identifier string) (*model.Profile, error) {
	var p model.Profile
	if err := r.orm.Where("username = ? OR phone_number = ? OR email = ?", identifier, identifier, identifier).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByQRCode 按推荐码查找（注册时关联推荐人）
func (r *ProfileRepository) GetByQRCode(qrCode string) (*model.Profile, error) {
	var p model.Profile
	if err := r.orm.Where("qr_code = ?", qrCode).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Search 按用户名或电话模糊搜索，排除指定用户
func (r *ProfileRepository) Search(query string, excludeID uint, limit int) ([]*model.Profile, error) {
	var profiles []*model.Profile
	pattern := "%" + query + "%"
	err := r.orm.
		Where("(username LIKE ? OR phone_number LIKE ?) AND id <> ?", pattern, pattern, excludeID).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetByIDs 批量查找
func (r *ProfileRepository) GetByIDs(ids []uint) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.orm.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreditPointsTx 事务内加分
func (r *ProfileRepository) CreditPointsTx(tx *gorm.DB, userID uint, points int) error {
	return tx.Model(&model.Profile{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", points)).Error
}

// DebitPointsTx 事务内扣分（带余额保护）
// 余额不足时不更新任何行，返回 false；调用方应回滚事务
func (r *ProfileRepository) DebitPointsTx(tx *gorm.DB, userID uint, points int) (bool, error) {
	result := tx.Model(&model.Profile{}).
		Where("id = ? AND points >= ?", userID, points).
		Update("points", gorm.Expr("points - ?", points))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListTopByPoints 积分排行（排行榜缓存不可用时回源）
func (r *ProfileRepository) ListTopByPoints(limit int) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.orm.Order("points DESC").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
