package repository

import (
	"community-system/internal/model"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	orm *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{orm: db}
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	return r.orm.Create(f).Error
}

func (r *FriendshipRepository) GetByID(id uint) (*model.Friendship, error) {
	var f model.Friendship
	if err := r.orm.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindBetween 查找两个用户之间的关系（不区分方向）
func (r *FriendshipRepository) FindBetween(userA, userB uint) (*model.Friendship, error) {
	var f model.Friendship
	err := r.orm.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateStatus 更新关系状态
func (r *FriendshipRepository) UpdateStatus(id uint, status string) error {
	return r.orm.Model(&model.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListAcceptedByUser 用户的好友关系（对称查询，用户在任意一侧均算）
func (r *FriendshipRepository) ListAcceptedByUser(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.orm.
		Preload("Requester").
		Preload("Addressee").
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, model.FriendStatusAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}

// ListAcceptedFriendIDs 用户的全部好友ID
func (r *FriendshipRepository) ListAcceptedFriendIDs(userID uint) ([]uint, error) {
	friendships, err := r.ListAcceptedByUser(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, f.OtherSide(userID))
	}
	return ids, nil
}

// ListPendingForUser 发给该用户、待处理的好友请求（含发起方资料）
func (r *FriendshipRepository) ListPendingForUser(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.orm.
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, model.FriendStatusPending).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}
