package service

import (
	"errors"
	"sort"
	"strings"

	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/response"

	"gorm.io/gorm"
)

var (
	// ErrHobbyExists 用户已添加过该爱好
	ErrHobbyExists = errors.New("hobby already added")
	// ErrHobbyNotFound 爱好不存在
	ErrHobbyNotFound = errors.New("hobby not found")
)

type HobbyService struct {
	hobbyRepo *repository.HobbyRepository
}

func NewHobbyService(hobbyRepo *repository.HobbyRepository) *HobbyService {
	return &HobbyService{hobbyRepo: hobbyRepo}
}

// HobbyMatchView 爱好匹配条目：一位邻居及其与本人重合的爱好
type HobbyMatchView struct {
	Profile       *response.FriendInfo `json:"profile"`
	SharedHobbies []string             `json:"shared_hobbies"`
}

// Catalog 爱好词表
func (s *HobbyService) Catalog() ([]*model.Hobby, error) {
	return s.hobbyRepo.ListCatalog()
}

// MyHobbies 用户已选爱好
func (s *HobbyService) MyHobbies(userID uint) ([]string, error) {
	return s.hobbyRepo.ListUserHobbyNames(userID)
}

// Add 添加爱好
// 名称必须出自词表；匹配按名称精确相等，所以统一去除首尾空白
func (s *HobbyService) Add(userID uint, hobbyName string) error {
	hobbyName = strings.TrimSpace(hobbyName)
	if hobbyName == "" {
		return errors.New("hobby name is required")
	}

	if _, err := s.hobbyRepo.GetCatalogByName(hobbyName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHobbyNotFound
		}
		return err
	}

	err := s.hobbyRepo.AddUserHobby(&model.UserHobby{
		UserID:    userID,
		HobbyName: hobbyName,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrHobbyExists
		}
		return err
	}
	return nil
}

// Remove 移除爱好
func (s *HobbyService) Remove(userID uint, hobbyName string) error {
	return s.hobbyRepo.RemoveUserHobby(userID, strings.TrimSpace(hobbyName))
}

// Matches 爱好匹配
// 找出与本人有相同爱好的邻居，按重合数量降序排列
func (s *HobbyService) Matches(userID uint) ([]*HobbyMatchView, error) {
	myHobbies, err := s.hobbyRepo.ListUserHobbyNames(userID)
	if err != nil {
		return nil, err
	}
	if len(myHobbies) == 0 {
		return []*HobbyMatchView{}, nil
	}

	records, err := s.hobbyRepo.ListMatches(myHobbies, userID)
	if err != nil {
		return nil, err
	}

	// 按用户聚合重合爱好
	byUser := make(map[uint]*HobbyMatchView)
	order := make([]uint, 0)
	for _, r := range records {
		v, ok := byUser[r.UserID]
		if !ok {
			v = &HobbyMatchView{
				Profile:       response.FilterFriendInfo(r.Profile),
				SharedHobbies: []string{},
			}
			byUser[r.UserID] = v
			order = append(order, r.UserID)
		}
		v.SharedHobbies = append(v.SharedHobbies, r.HobbyName)
	}

	matches := make([]*HobbyMatchView, 0, len(order))
	for _, id := range order {
		matches = append(matches, byUser[id])
	}

	// 重合越多排越前
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].SharedHobbies) > len(matches[j].SharedHobbies)
	})
	return matches, nil
}
