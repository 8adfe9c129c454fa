// VideoTube is a backend for a video sharing platform
package main

import (
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/connect"
	"github.com/anand-jaiswal-IN/youtube-clone/controllers"
	"github.com/anand-jaiswal-IN/youtube-clone/middleware"
	"github.com/anand-jaiswal-IN/youtube-clone/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

var (
	env  config.Env
	conn connect.Connector
)

func init() {
	env.Load()

	conn.InitDatabase(&env)
	utils.CheckForMigrations(&conn, &env)

	conn.InitRatelimiter(&env)
	conn.InitRedis(&env)
	conn.InitMinioClient(&env)
}

func main() {
	app := fiber.New()
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowOrigins:     env.FrontendHostname,
		AllowCredentials: true,
		AllowMethods:     "*",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
		LimiterMiddleware:      limiter.SlidingWindow{},
		Storage:                conn.Ratelimter,
	}))

	authC := controllers.Auth{Conn: &conn, Env: &env}
	userC := controllers.User{Conn: &conn, Env: &env}
	channelC := controllers.Channel{Conn: &conn, Env: &env}
	videoC := controllers.Video{Conn: &conn, Env: &env}
	categoryC := controllers.Category{Conn: &conn, Env: &env}
	systemC := controllers.System{Conn: &conn}

	authM := middleware.Auth{Conn: &conn, Env: &env}

	app.Route("/users", func(router fiber.Router) {
		router.Post("/register", authC.Register)
		router.Post("/login", authC.Login)
		router.Get("/refresh-token", authC.Refresh)
		router.Post("/verify-otp", authC.VerifyOTP)
		router.Post("/resend-otp", authC.ResendOTP)
		router.Post("/check-username", userC.CheckUsername)

		router.Use(authM.Check)
		router.Get("/logout", authC.Logout)
		router.Post("/change-password", authC.ChangePassword)
		router.Get("/me", userC.GetProfile)
		router.Get("/history", userC.WatchHistory)
	})

	app.Route("/channel", func(router fiber.Router) {
		router.Get("/profile/:username", authM.CheckOptional, channelC.Profile)

		router.Use(authM.Check)
		router.Post("/create", channelC.Create)
		router.Post("/subscribe/:username", channelC.Subscribe)
		router.Post("/unsubscribe/:username", channelC.Unsubscribe)
	})

	app.Route("/channel/video", func(router fiber.Router) {
		router.Use(authM.Check)
		router.Get("/v/:videoID", videoC.Get)

		router.Use(authM.CheckChannel)
		router.Get("/all-videos", videoC.AllChannelVideos)
		router.Post("/upload-video", videoC.Upload)
		router.Get("/toggle-publish/:videoID", videoC.TogglePublish)
		router.Post("/change-thumbnail/:videoID", videoC.ChangeThumbnail)
	})

	app.Route("/category", func(router fiber.Router) {
		router.Get("/", categoryC.GetAll)
		router.Get("/sub/:categoryID", categoryC.GetAllSub)
	})

	app.Route("/admin", func(router fiber.Router) {
		router.Use(authM.CheckAdmin)
		router.Post("/category/create", categoryC.Create)
		router.Post("/category/update-image/:categoryID", categoryC.UpdateImage)
		router.Post("/category/sub/create", categoryC.CreateSub)
	})

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor VideoTube",
		}))
		router.Get("/health", systemC.Health)
	})

	logger.Errorf(app.Listen(fmt.Sprintf(":%s", env.Port)))
}
