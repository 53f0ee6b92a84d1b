package service

import (
	"errors"

	"community-system/config"
	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/whatsapp"

	"gorm.io/gorm"
)

type InviteService struct {
	profileRepo  *repository.ProfileRepository
	referralRepo *repository.ReferralRepository
	community    config.CommunityConfig
}

func NewInviteService(
	profileRepo *repository.ProfileRepository,
	referralRepo *repository.ReferralRepository,
	community config.CommunityConfig,
) *InviteService {
	return &InviteService{
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
		community:    community,
	}
}

// InviteView 邀请结果
// Link 为 WhatsApp 深链接，由客户端打开后经第三方应用发送
// 本服务不会收到送达回执，推荐记录在邀请时即落库
type InviteView struct {
	Link          string `json:"link"`
	Message       string `json:"message"`
	ReferralCode  string `json:"referral_code"`
	ReferredPhone string `json:"referred_phone"`
}

// BuildInvite 生成邀请
// 邀请消息带本人推荐码，被邀请人注册填码后推荐人获得奖励积分
func (s *InviteService) BuildInvite(userID uint, phone, lang string) (*InviteView, error) {
	p, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	message := whatsapp.BuildInviteMessage(lang, s.community.AppURL, p.QRCode)
	link, err := whatsapp.BuildInviteLink(s.community.InviteBaseURL, phone, message)
	if err != nil {
		return nil, err
	}

	// 落库推荐记录，注册时按电话号码关联
	// 同一电话重复邀请时复用未发奖的记录，避免注册后流水多算奖励
	normalized := whatsapp.NormalizePhone(phone)
	ref, err := s.referralRepo.GetUnawarded(userID, normalized)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		ref = &model.FriendReferral{
			ReferrerID:    userID,
			ReferredPhone: normalized,
		}
		if err := s.referralRepo.Create(ref); err != nil {
			return nil, err
		}
	}

	return &InviteView{
		Link:          link,
		Message:       message,
		ReferralCode:  p.QRCode,
		ReferredPhone: ref.ReferredPhone,
	}, nil
}

// ListReferrals 本人发出的推荐记录
func (s *InviteService) ListReferrals(userID uint) ([]*model.FriendReferral, error) {
	return s.referralRepo.ListByReferrer(userID)
}
