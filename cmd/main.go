package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"PokerCoach/config"
	"PokerCoach/internal/auth"
	"PokerCoach/internal/game/manager"
	"PokerCoach/internal/history"
	"PokerCoach/internal/middleware"
	"PokerCoach/internal/session"
	"PokerCoach/internal/storage"
	"PokerCoach/internal/utils"
	"PokerCoach/internal/websocket"
)

func main() {
	path := "config/config.yaml"
	if p := os.Getenv("POKERCOACH_CONFIG"); p != "" {
		path = p
	}
	if err := config.Load(path); err != nil {
		utils.Log.Fatal("config load failed", "path", path, "err", err)
	}
	utils.Init(config.C.Log.Level)

	ctx := context.Background()

	//-------------------------------------------------------
	// 1. 初始化 Redis（未配置时 session 存内存）
	//-------------------------------------------------------
	var repo session.Repo
	if config.C.Redis.Addr != "" {
		if err := storage.InitRedis(ctx,
			config.C.Redis.Addr,
			config.C.Redis.Password,
			config.C.Redis.DB,
		); err != nil {
			utils.Log.Fatal("redis init failed", "err", err)
		}
		repo = session.NewRedisRepo(storage.Rdb)
	} else {
		utils.Log.Warn("redis.addr empty, sessions are kept in memory")
		repo = session.NewMemoryRepo()
	}

	//-------------------------------------------------------
	// 2. 初始化数据库（评估历史）
	//-------------------------------------------------------
	dialect, err := storage.InitDB(ctx, config.C.Database.Driver, config.C.Database.DSN)
	if err != nil {
		utils.Log.Fatal("database init failed", "driver", config.C.Database.Driver, "err", err)
	}
	store := history.NewStore(storage.DB, dialect)
	if err := store.Migrate(ctx); err != nil {
		utils.Log.Fatal("history migrate failed", "err", err)
	}

	//-------------------------------------------------------
	// 3. 初始化 Hub + session 服务 + GameManager
	//-------------------------------------------------------
	hub := websocket.NewHub()
	svc := session.NewService(repo, config.C.Session.TTL, hub).WithHistory(store)
	gameMgr := manager.NewGameManager(svc, hub)
	hub.OnIncoming = gameMgr.HandlePlayerMessage
	go hub.Run()
	defer hub.Close()

	//-------------------------------------------------------
	// 4. 初始化 Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := []byte(config.C.JWT.Secret)
	if len(secret) == 0 {
		utils.Log.Fatal("jwt.secret is empty")
	}

	ah := auth.NewHandler(secret)
	r.POST("/auth/guest", ah.Guest)

	sh := session.NewHandler(svc)
	r.POST("/evaluate", sh.Evaluate)

	//-------------------------------------------------------
	// 5. 需要登录的路由
	//-------------------------------------------------------
	authed := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		authed.GET("/ws", websocket.ServeWS(hub))

		authed.POST("/sessions", sh.Create)
		authed.GET("/sessions/:id", sh.Get)
		authed.POST("/sessions/:id/next", sh.Next)
		authed.DELETE("/sessions/:id", sh.Close)
		authed.GET("/sessions/:id/history", sh.History)
		authed.GET("/history", sh.PlayerHistory)
	}

	//-------------------------------------------------------
	// 6. 启动服务器
	//-------------------------------------------------------
	utils.Log.Info("server running", "addr", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Log.Fatal("server stopped", "err", err)
	}
}
