package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"community-system/config"
	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/pkg/jwt"
	"community-system/pkg/password"
	"community-system/pkg/redis"
	"community-system/pkg/websocket"
	"community-system/pkg/whatsapp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUserExists 用户名/电话/邮箱已被注册
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials 登录凭证错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidReferralCode 推荐码不存在
	ErrInvalidReferralCode = errors.New("invalid referral code")
)

type AuthService struct {
	db           *gorm.DB
	profileRepo  *repository.ProfileRepository
	referralRepo *repository.ReferralRepository
	jwtService   *jwt.JWTService
	community    config.CommunityConfig
}

func NewAuthService(
	db *gorm.DB,
	profileRepo *repository.ProfileRepository,
	referralRepo *repository.ReferralRepository,
	jwtService *jwt.JWTService,
	community config.CommunityConfig,
) *AuthService {
	return &AuthService{
		db:           db,
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
		jwtService:   jwtService,
		community:    community,
	}
}

// Register 注册
// 填写有效推荐码时，推荐人在同一事务内获得奖励积分
func (s *AuthService) Register(username, email, phone, plainPassword, referralCode string) (*model.Profile, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	phone = whatsapp.NormalizePhone(phone)
	referralCode = strings.TrimSpace(referralCode)

	if username == "" || phone == "" || plainPassword == "" {
		return nil, "", errors.New("username, phone and password are required")
	}

	// 密码哈希
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}

	// 校验推荐码（事务外只读查询）
	var referrer *model.Profile
	if referralCode != "" {
		referrer, err = s.profileRepo.GetByQRCode(referralCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", ErrInvalidReferralCode
			}
			return nil, "", err
		}
	}

	// 邮箱可选，空值存NULL以免撞唯一索引
	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}

	profile := &model.Profile{
		Username:     username,
		Email:        emailPtr,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Points:       0,
		QRCode:       newReferralCode(),
	}

	// 新用户与推荐奖励在同一事务内落库
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserExists
			}
			return err
		}

		if referrer != nil {
			if err := s.profileRepo.CreditPointsTx(tx, referrer.ID, s.community.ReferralBonus); err != nil {
				return err
			}
			marked, err := s.referralRepo.MarkAwardedTx(tx, referrer.ID, phone, profile.ID)
			if err != nil {
				return err
			}
			if marked == 0 {
				// 没有事先的邀请记录（直接口头分享推荐码），补一条已发奖记录
				referredID := profile.ID
				if err := s.referralRepo.CreateTx(tx, &model.FriendReferral{
					ReferrerID:         referrer.ID,
					ReferredPhone:      phone,
					ReferredUserID:     &referredID,
					BonusPointsAwarded: true,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	// 推荐人积分变动的缓存维护与通知（尽力而为）
	if referrer != nil {
		_ = redis.InvalidateBalance(referrer.ID)
		_ = redis.AddLeaderboardPoints(referrer.ID, s.community.ReferralBonus)
		websocket.GetManager().Notify(referrer.ID, &redis.Notification{
			Type:      "points_credited",
			FromID:    profile.ID,
			Message:   fmt.Sprintf("%s joined with your referral code", profile.Username),
			Points:    s.community.ReferralBonus,
			CreatedAt: nowUnix(),
		})
	}

	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", profile.ID),
		map[string]interface{}{"username": profile.Username},
	)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

// Login 登录
// 标识可以是用户名、电话或邮箱
func (s *AuthService) Login(identifier, plainPassword string) (*model.Profile, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return nil, "", errors.New("identifier and password are required")
	}

	p, err := s.profileRepo.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !password.Verify(plainPassword, p.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(
		fmt.Sprintf("%d", p.ID),
		map[string]interface{}{"username": p.Username},
	)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

// GetProfile 获取用户资料
func (s *AuthService) GetProfile(userID uint) (*model.Profile, error) {
	return s.profileRepo.GetByID(userID)
}

// nowUnix 通知时间戳
func nowUnix() int64 {
	return time.Now().Unix()
}

// newReferralCode 生成个人推荐码
// 形如 KH-3F7A92C1，写入邀请消息后由新用户在注册时填写
func newReferralCode() string {
	return "KH-" + strings.ToUpper(uuid.NewString()[:8])
}
