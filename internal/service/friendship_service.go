package service

import (
	"errors"
	"fmt"

	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/redis"
	"community-system/pkg/response"
	"community-system/pkg/websocket"

	"gorm.io/gorm"
)

var (
	// ErrSelfFriend 不能添加自己为好友
	ErrSelfFriend = errors.New("cannot send friend request to yourself")
	// ErrRequestExists 两人之间已存在关系（待处理、已接受或已拉黑）
	ErrRequestExists = errors.New("friend request already exists")
	// ErrRequestNotFound 好友请求不存在
	ErrRequestNotFound = errors.New("friend request not found")
	// ErrNotAddressee 仅接收方可以处理该请求
	ErrNotAddressee = errors.New("only the addressee can respond to this request")
	// ErrRequestNotPending 请求已被处理
	ErrRequestNotPending = errors.New("friend request is not pending")
)

type FriendshipService struct {
	friendshipRepo *repository.FriendshipRepository
	profileRepo    *repository.ProfileRepository
}

func NewFriendshipService(
	friendshipRepo *repository.FriendshipRepository,
	profileRepo *repository.ProfileRepository,
) *FriendshipService {
	return &FriendshipService{
		friendshipRepo: friendshipRepo,
		profileRepo:    profileRepo,
	}
}

// PendingRequestView 待处理好友请求条目
type PendingRequestView struct {
	ID        uint                 `json:"id"`
	Requester *response.FriendInfo `json:"requester"`
	CreatedAt string               `json:"created_at"`
}

// Search 搜索居民（按用户名或电话模糊匹配，最多10条，排除本人）
func (s *FriendshipService) Search(userID uint, query string) ([]*model.Profile, error) {
	if query == "" {
		return nil, errors.New("search query is required")
	}
	return s.profileRepo.Search(query, userID, 10)
}

// SendRequest 发送好友请求
// 一对用户只存一行：任一方向已存在关系时拒绝重复请求
func (s *FriendshipService) SendRequest(requesterID, addresseeID uint) (*model.Friendship, error) {
	if requesterID == addresseeID {
		return nil, ErrSelfFriend
	}

	if _, err := s.profileRepo.GetByID(addresseeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	if _, err := s.friendshipRepo.FindBetween(requesterID, addresseeID); err == nil {
		return nil, ErrRequestExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	f := &model.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      model.FriendStatusPending,
	}
	if err := s.friendshipRepo.Create(f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRequestExists
		}
		return nil, err
	}

	// 通知接收方（尽力而为）
	if requester, err := s.profileRepo.GetByID(requesterID); err == nil {
		websocket.GetManager().Notify(addresseeID, &redis.Notification{
			Type:      "friend_request",
			FromID:    requesterID,
			Message:   fmt.Sprintf("%s sent you a friend request", requester.Username),
			CreatedAt: nowUnix(),
		})
	}

	return f, nil
}

// Accept 接受好友请求
// 单行状态更新，无需反向插入
func (s *FriendshipService) Accept(userID, requestID uint) error {
	f, err := s.friendshipRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if f.AddresseeID != userID {
		return ErrNotAddressee
	}
	if f.Status != model.FriendStatusPending {
		return ErrRequestNotPending
	}

	if err := s.friendshipRepo.UpdateStatus(f.ID, model.FriendStatusAccepted); err != nil {
		return err
	}

	// 通知发起方（尽力而为）
	if addressee, err := s.profileRepo.GetByID(userID); err == nil {
		websocket.GetManager().Notify(f.RequesterID, &redis.Notification{
			Type:      "request_accepted",
			FromID:    userID,
			Message:   fmt.Sprintf("%s accepted your friend request", addressee.Username),
			CreatedAt: nowUnix(),
		})
	}
	return nil
}

// Decline 拒绝好友请求
// 关系行标记为拉黑，拦截后续的重复请求
func (s *FriendshipService) Decline(userID, requestID uint) error {
	f, err := s.friendshipRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if f.AddresseeID != userID {
		return ErrNotAddressee
	}
	if f.Status != model.FriendStatusPending {
		return ErrRequestNotPending
	}

	return s.friendshipRepo.UpdateStatus(f.ID, model.FriendStatusBlocked)
}

// ListFriends 好友列表
// 返回关系中除本人外另一方的资料
func (s *FriendshipService) ListFriends(userID uint) ([]*response.FriendInfo, error) {
	friendships, err := s.friendshipRepo.ListAcceptedByUser(userID)
	if err != nil {
		return nil, err
	}

	friends := make([]*response.FriendInfo, 0, len(friendships))
	for _, f := range friendships {
		other := f.Requester
		if f.RequesterID == userID {
			other = f.Addressee
		}
		if info := response.FilterFriendInfo(other); info != nil {
			friends = append(friends, info)
		}
	}
	return friends, nil
}

// ListPending 待处理的好友请求（本人为接收方）
func (s *FriendshipService) ListPending(userID uint) ([]*PendingRequestView, error) {
	friendships, err := s.friendshipRepo.ListPendingForUser(userID)
	if err != nil {
		return nil, err
	}

	requests := make([]*PendingRequestView, 0, len(friendships))
	for _, f := range friendships {
		requests = append(requests, &PendingRequestView{
			ID:        f.ID,
			Requester: response.FilterFriendInfo(f.Requester),
			CreatedAt: f.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return requests, nil
}
