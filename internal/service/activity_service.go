package service

import (
	"errors"
	"fmt"

	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/redis"
	"community-system/pkg/websocket"

	"gorm.io/gorm"
)

var (
	// ErrActivityNotFound 活动不存在
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyJoined 重复报名
	ErrAlreadyJoined = errors.New("already joined this activity")
	// ErrActivityFull 活动名额已满
	ErrActivityFull = errors.New("activity is full")
	// ErrNotParticipant 未参加该活动
	ErrNotParticipant = errors.New("not a participant of this activity")
	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type ActivityService struct {
	db             *gorm.DB
	activityRepo   *repository.ActivityRepository
	profileRepo    *repository.ProfileRepository
	friendshipRepo *repository.FriendshipRepository
}

func NewActivityService(
	db *gorm.DB,
	activityRepo *repository.ActivityRepository,
	profileRepo *repository.ProfileRepository,
	friendshipRepo *repository.FriendshipRepository,
) *ActivityService {
	return &ActivityService{
		db:             db,
		activityRepo:   activityRepo,
		profileRepo:    profileRepo,
		friendshipRepo: friendshipRepo,
	}
}

// ActivityView 活动列表条目（按请求语言本地化）
type ActivityView struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ActivityDate  string `json:"activity_date"`
	ActivityTime  string `json:"activity_time"`
	ImageURL      string `json:"image_url,omitempty"`
	MaxAttendees  *int   `json:"max_attendees,omitempty"`
	PointsReward  int    `json:"points_reward"`
	AttendeeCount int    `json:"attendee_count"`
	FriendsGoing  int    `json:"friends_going"`
	Joined        bool   `json:"joined"`
}

// ParticipationView 个人参与历史条目
type ParticipationView struct {
	ActivityID   uint   `json:"activity_id"`
	Title        string `json:"title"`
	ActivityDate string `json:"activity_date"`
	ActivityTime string `json:"activity_time"`
	PointsEarned int    `json:"points_earned"`
	JoinedAt     string `json:"joined_at"`
}

// List 活动列表
// 每条活动附带报名人数、同去好友数和本人是否已报名
func (s *ActivityService) List(userID uint, lang string) ([]*ActivityView, error) {
	activities, err := s.activityRepo.List()
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.friendshipRepo.ListAcceptedFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	friendSet := make(map[uint]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = struct{}{}
	}

	// 报名名单一次查出，按活动分组，不逐条活动查库
	participantsByActivity, err := s.activityRepo.MapParticipantIDs()
	if err != nil {
		return nil, err
	}

	views := make([]*ActivityView, 0, len(activities))
	for _, a := range activities {
		participantIDs := participantsByActivity[a.ID]

		joined := false
		friendsGoing := 0
		for _, pid := range participantIDs {
			if pid == userID {
				joined = true
			}
			if _, ok := friendSet[pid]; ok {
				friendsGoing++
			}
		}

		views = append(views, &ActivityView{
			ID:            a.ID,
			Title:         a.LocalizedTitle(lang),
			Description:   a.LocalizedDescription(lang),
			Location:      a.LocalizedLocation(lang),
			ActivityDate:  a.ActivityDate,
			ActivityTime:  a.ActivityTime,
			ImageURL:      a.ImageURL,
			MaxAttendees:  a.MaxAttendees,
			PointsReward:  a.PointsReward,
			AttendeeCount: len(participantIDs),
			FriendsGoing:  friendsGoing,
			Joined:        joined,
		})
	}
	return views, nil
}

// Join 报名活动
// 报名与积分发放在同一事务内完成；名额校验和重复报名拦截在事务内进行
func (s *ActivityService) Join(userID, activityID uint) (*model.Participation, error) {
	activity, err := s.activityRepo.GetByID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	participation := &model.Participation{
		UserID:       userID,
		ActivityID:   activityID,
		PointsEarned: activity.PointsReward,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if activity.MaxAttendees != nil {
			count, err := s.activityRepo.CountParticipantsTx(tx, activityID)
			if err != nil {
				return err
			}
			if count >= int64(*activity.MaxAttendees) {
				return ErrActivityFull
			}
		}

		if err := s.activityRepo.CreateParticipationTx(tx, participation); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyJoined
			}
			return err
		}

		if activity.PointsReward > 0 {
			if err := s.profileRepo.CreditPointsTx(tx, userID, activity.PointsReward); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 积分缓存维护与到账通知（尽力而为）
	if activity.PointsReward > 0 {
		_ = redis.InvalidateBalance(userID)
		_ = redis.AddLeaderboardPoints(userID, activity.PointsReward)
		websocket.GetManager().Notify(userID, &redis.Notification{
			Type:      "points_credited",
			Message:   fmt.Sprintf("You earned %d points for joining %s", activity.PointsReward, activity.Title),
			Points:    activity.PointsReward,
			CreatedAt: nowUnix(),
		})
	}

	return participation, nil
}

// MyActivities 个人参与历史
func (s *ActivityService) MyActivities(userID uint, lang string) ([]*ParticipationView, error) {
	participations, err := s.activityRepo.ListParticipationsByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]*ParticipationView, 0, len(participations))
	for _, p := range participations {
		v := &ParticipationView{
			ActivityID:   p.ActivityID,
			PointsEarned: p.PointsEarned,
			JoinedAt:     p.JoinedAt.Format("2006-01-02 15:04:05"),
		}
		if p.Activity != nil {
			v.Title = p.Activity.LocalizedTitle(lang)
			v.ActivityDate = p.Activity.ActivityDate
			v.ActivityTime = p.Activity.ActivityTime
		}
		views = append(views, v)
	}
	return views, nil
}

// Rate 活动评分
// 仅允许参加过该活动的用户评分，取值 1..5
func (s *ActivityService) Rate(userID, activityID uint, rating int, comment string) (*model.EventRating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.activityRepo.GetByID(activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if _, err := s.activityRepo.GetParticipation(userID, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotParticipant
		}
		return nil, err
	}

	r := &model.EventRating{
		UserID:     userID,
		ActivityID: activityID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.activityRepo.CreateRating(r); err != nil {
		return nil, err
	}
	return r, nil
}

// RatingsView 活动评分汇总
type RatingsView struct {
	Ratings []*model.EventRating `json:"ratings"`
	Average float64              `json:"average"`
}

// ListRatings 活动的评分列表与均分
func (s *ActivityService) ListRatings(activityID uint) (*RatingsView, error) {
	if _, err := s.activityRepo.GetByID(activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	ratings, err := s.activityRepo.ListRatings(activityID)
	if err != nil {
		return nil, err
	}

	view := &RatingsView{Ratings: ratings}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		view.Average = float64(sum) / float64(len(ratings))
	}
	return view, nil
}

// AddMemory 记录活动回忆
// 仅允许参加过该活动的用户提交
func (s *ActivityService) AddMemory(userID, activityID uint, memoryText, photoURL string) (*model.EventMemory, error) {
	if _, err := s.activityRepo.GetParticipation(userID, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotParticipant
		}
		return nil, err
	}

	m := &model.EventMemory{
		UserID:     userID,
		ActivityID: activityID,
		MemoryText: memoryText,
		PhotoURL:   photoURL,
	}
	if err := s.activityRepo.CreateMemory(m); err != nil {
		return nil, err
	}
	return m, nil
}
