package repository

import (
	"community-system/internal/model"

	"gorm.io/gorm"
)

type HobbyRepository struct {
	orm *gorm.DB
}

func NewHobbyRepository(db *gorm.DB) *HobbyRepository {
	return &HobbyRepository{orm: db}
}

// ListCatalog 爱好词表，按名称排序
func (r *HobbyRepository) ListCatalog() ([]*model.Hobby, error) {
	var hobbies []*model.Hobby
	if err := r.orm.Order("name").Find(&hobbies).Error; err != nil {
		return nil, err
	}
	return hobbies, nil
}

// GetCatalogByName 按名称查找词表条目
func (r *HobbyRepository) GetCatalogByName(name string) (*model.Hobby, error) {
	var h model.Hobby
	if err := r.orm.Where("name = ?", name).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// AddUserHobby 添加用户爱好
// 重复添加由唯一约束拦截，返回 gorm.ErrDuplicatedKey
func (r *HobbyRepository) AddUserHobby(uh *model.UserHobby) error {
	return r.orm.Create(uh).Error
}

// RemoveUserHobby 移除用户爱好
func (r *HobbyRepository) RemoveUserHobby(userID uint, hobbyName string) error {
	return r.orm.
		Where("user_id = ? AND hobby_name = ?", userID, hobbyName).
		Delete(&model.UserHobby{}).Error
}

// ListUserHobbyNames 用户已选爱好名称
func (r *HobbyRepository) ListUserHobbyNames(userID uint) ([]string, error) {
	var names []string
	err := r.orm.Model(&model.UserHobby{}).
		Where("user_id = ?", userID).
		Pluck("hobby_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListMatches 与给定爱好名称相同的其他用户记录（含用户资料）
// 排除查询者本人的记录
func (r *HobbyRepository) ListMatches(hobbyNames []string, excludeUserID uint) ([]*model.UserHobby, error) {
	var matches []*model.UserHobby
	if len(hobbyNames) == 0 {
		return matches, nil
	}
	err := r.orm.Preload("Profile").
		Where("hobby_name IN ? AND user_id <> ?", hobbyNames, excludeUserID).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
