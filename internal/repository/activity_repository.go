package repository

import (
	"community-system/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	orm *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{orm: db}
}

func (r *ActivityRepository) GetByID(id uint) (*model.Activity, error) {
	var a model.Activity
	if err := r.orm.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List 按日期时间升序列出全部活动
func (r *ActivityRepository) List() ([]*model.Activity, error) {
	var activities []*model.Activity
	if err := r.orm.Order("activity_date, activity_time").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// CountParticipantsTx 事务内统计报名人数（用于上限校验）
func (r *ActivityRepository) CountParticipantsTx(tx *gorm.DB, activityID uint) (int64, error) {
	var count int64
	err := tx.Model(&model.Participation{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	return count, err
}

// CreateParticipationTx 事务内创建参与记录
// 重复报名由唯一约束拦截，返回 gorm.ErrDuplicatedKey
func (r *ActivityRepository) CreateParticipationTx(tx *gorm.DB, p *model.Participation) error {
	return tx.Create(p).Error
}

// GetParticipation 查询用户对某活动的参与记录
func (r *ActivityRepository) GetParticipation(userID, activityID uint) (*model.Participation, error) {
	var p model.Participation
	err := r.orm.Where("user_id = ? AND activity_id = ?", userID, activityID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListParticipationsByUser 用户的参与历史（含活动信息，按报名时间倒序）
func (r *ActivityRepository) ListParticipationsByUser(userID uint) ([]*model.Participation, error) {
	var participations []*model.Participation
	err := r.orm.Preload("Activity").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}

// MapParticipantIDs 一次查询取出全部活动的报名用户ID，按活动分组
// 供活动列表聚合使用，避免逐活动查询
func (r *ActivityRepository) MapParticipantIDs() (map[uint][]uint, error) {
	var rows []struct {
		ActivityID uint
		UserID     uint
	}
	err := r.orm.Model(&model.Participation{}).
		Select("activity_id, user_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byActivity := make(map[uint][]uint, len(rows))
	for _, row := range rows {
		byActivity[row.ActivityID] = append(byActivity[row.ActivityID], row.UserID)
	}
	return byActivity, nil
}

// CreateRating 创建活动评分
func (r *ActivityRepository) CreateRating(rating *model.EventRating) error {
	return r.orm.Create(rating).Error
}

// ListRatings 活动的全部评分
func (r *ActivityRepository) ListRatings(activityID uint) ([]*model.EventRating, error) {
	var ratings []*model.EventRating
	err := r.orm.Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CreateMemory 创建活动回忆
func (r *ActivityRepository) CreateMemory(memory *model.EventMemory) error {
	return r.orm.Create(memory).Error
}
