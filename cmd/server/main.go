package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-system/config"
	"community-system/internal/handler"
	"community-system/internal/model"
	"community-system/internal/repository"
	"community-system/internal/service"
	dbPkg "community-system/pkg/db"
	"community-system/pkg/jwt"
	"community-system/pkg/logger"
	redisPkg "community-system/pkg/redis"
	"community-system/pkg/response"
	"community-system/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 0. 加载.env文件（不存在时忽略）
	_ = godotenv.Load()

	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== 吉丰社区服务启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.String("community", cfg.Community.Name),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化数据库连接
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(
		&model.Profile{},
		&model.Activity{},
		&model.Participation{},
		&model.Friendship{},
		&model.Reward{},
		&model.Redemption{},
		&model.EventRating{},
		&model.EventMemory{},
		&model.Hobby{},
		&model.UserHobby{},
		&model.FriendReferral{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.2 初始化Redis（积分缓存/排行榜/离线通知，连接失败时降级运行）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis连接失败，缓存与离线通知降级", zap.Error(err))
	} else {
		log.Info("Redis连接成功")
		defer redisPkg.Close()
	}

	// 3.3 初始化业务服务
	db := dbPkg.GetDB()
	jwtSvc := jwt.NewJWTService(cfg.JWT)

	profileRepo := repository.NewProfileRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	hobbyRepo := repository.NewHobbyRepository(db)
	referralRepo := repository.NewReferralRepository(db)

	authSvc := service.NewAuthService(db, profileRepo, referralRepo, jwtSvc, cfg.Community)
	activitySvc := service.NewActivityService(db, activityRepo, profileRepo, friendshipRepo)
	rewardSvc := service.NewRewardService(db, rewardRepo, profileRepo)
	friendshipSvc := service.NewFriendshipService(friendshipRepo, profileRepo)
	hobbySvc := service.NewHobbyService(hobbyRepo)
	inviteSvc := service.NewInviteService(profileRepo, referralRepo, cfg.Community)
	pointsSvc := service.NewPointsService(profileRepo, activityRepo, rewardRepo, referralRepo, cfg.Community)

	authHandler := handler.NewAuthHandler(authSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	rewardHandler := handler.NewRewardHandler(rewardSvc)
	friendshipHandler := handler.NewFriendshipHandler(friendshipSvc)
	hobbyHandler := handler.NewHobbyHandler(hobbySvc)
	inviteHandler := handler.NewInviteHandler(inviteSvc)
	pointsHandler := handler.NewPointsHandler(pointsSvc)
	communityHandler := handler.NewCommunityHandler(cfg.Community)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 注入jwt_config/ws_config到Gin context，供WebSocket使用
	router.Use(func(c *gin.Context) {
		c.Set("jwt_config", cfg.JWT)
		c.Set("ws_config", cfg.WebSocket)
		c.Next()
	})

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 设置基础路由
	setupBasicRoutes(router, communityHandler)

	// 6.1 绑定业务路由
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			// 公开接口（无需认证）
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			// 需要认证的接口
			authed := auth.Group("")
			authed.Use(jwtSvc.AuthMiddleware())
			{
				authed.GET("/profile", authHandler.GetProfile)
				authed.POST("/logout", authHandler.Logout)
			}
		}

		// 活动路由（需要认证）
		activities := v1.Group("/activities")
		activities.Use(jwtSvc.AuthMiddleware())
		{
			activities.GET("", activityHandler.List)                             // 活动列表
			activities.POST("/:activity_id/join", activityHandler.Join)          // 报名活动
			activities.GET("/mine", activityHandler.MyActivities)                // 个人参与历史
			activities.POST("/:activity_id/rating", activityHandler.Rate)        // 活动评分
			activities.GET("/:activity_id/ratings", activityHandler.ListRatings) // 评分列表
			activities.POST("/:activity_id/memory", activityHandler.AddMemory)   // 活动回忆
		}

		// 奖励路由（需要认证）
		rewards := v1.Group("/rewards")
		rewards.Use(jwtSvc.AuthMiddleware())
		{
			rewards.GET("", rewardHandler.List)                        // 奖励列表
			rewards.POST("/:reward_id/redeem", rewardHandler.Redeem)   // 兑换奖励
			rewards.GET("/redemptions", rewardHandler.ListRedemptions) // 兑换历史
		}

		// 好友路由（需要认证）
		friends := v1.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.GET("/search", friendshipHandler.Search)                     // 搜索居民
			friends.POST("/requests", friendshipHandler.SendRequest)             // 发送好友请求
			friends.GET("/requests", friendshipHandler.ListPending)              // 待处理请求
			friends.PUT("/requests/:request_id/accept", friendshipHandler.Accept)   // 接受请求
			friends.PUT("/requests/:request_id/decline", friendshipHandler.Decline) // 拒绝请求
			friends.GET("", friendshipHandler.ListFriends)                       // 好友列表
		}

		// 爱好路由（需要认证）
		hobbies := v1.Group("/hobbies")
		hobbies.Use(jwtSvc.AuthMiddleware())
		{
			hobbies.GET("", hobbyHandler.Catalog)         // 爱好词表
			hobbies.GET("/mine", hobbyHandler.MyHobbies)  // 本人爱好
			hobbies.POST("", hobbyHandler.Add)            // 添加爱好
			hobbies.DELETE("/:name", hobbyHandler.Remove) // 移除爱好
			hobbies.GET("/matches", hobbyHandler.Matches) // 爱好匹配
		}

		// 邀请路由（需要认证）
		invites := v1.Group("/invites")
		invites.Use(jwtSvc.AuthMiddleware())
		{
			invites.POST("/whatsapp", inviteHandler.WhatsAppInvite) // WhatsApp邀请
			invites.GET("/referrals", inviteHandler.ListReferrals)  // 推荐记录
		}

		// 积分路由（需要认证）
		points := v1.Group("/points")
		points.Use(jwtSvc.AuthMiddleware())
		{
			points.GET("", pointsHandler.Balance)                 // 积分余额
			points.GET("/history", pointsHandler.History)         // 积分流水
			points.GET("/leaderboard", pointsHandler.Leaderboard) // 积分排行
		}
	}

	// WebSocket路由（通知推送）
	router.GET("/ws", websocket.WsHandler)

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine, communityHandler *handler.CommunityHandler) {
	// 健康检查
	// 完整url为：http://localhost:8080/health
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status":  status,
			"message": "吉丰社区服务运行状态",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	// 完整url为：http://localhost:8080/
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎使用吉丰社区服务",
			"version": "1.0.0",
		})
	})

	// 社区信息（含民众俱乐部紧急联系电话）
	// 完整url为：http://localhost:8080/community
	router.GET("/community", communityHandler.Info)
}
