// Coindeck is a backend for a crypto dashboard with OTP verified signup
package main

import (
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/connect"
	"github.com/dilshan-mv/coindeck/controllers"
	"github.com/dilshan-mv/coindeck/market"
	"github.com/dilshan-mv/coindeck/middleware"
	"github.com/dilshan-mv/coindeck/utils"
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
}

func main() {
	app := fiber.New()
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowOrigins:     env.FrontendURL,
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

	authC := controllers.Auth{
		Conn: &conn,
		Env:  &env,
	}
	userC := controllers.User{
		Conn: &conn,
		Env:  &env,
	}
	systemC := controllers.System{
		Conn: &conn,
	}
	marketC := controllers.Market{
		Service: market.NewService(&env),
	}
	authM := middleware.Auth{
		Conn: &conn,
		Env:  &env,
	}

	// the six digit code space is small, the verify endpoint gets a much
	// tighter window than the rest of the API
	otpLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
		Storage:           conn.Ratelimter,
	})

	app.Get("/", systemC.Landing)
	app.Get("/health", systemC.Health)

	app.Post("/login/", authC.LoginWEmailAndPassword)
	app.Post("/logout/", authC.Logout)

	app.Route("/signup", func(router fiber.Router) {
		router.Post("/", authC.StartSignup)
		router.Post("/password/", authC.SetPassword)
		router.Post("/verify-otp/", otpLimiter, authC.VerifyOTP)
		router.Get("/resend-otp/", authC.ResendOTP)
		router.Post("/resend-otp/", authC.ResendOTP)
	})

	app.Get("/welcome/", authC.Welcome)
	app.Get("/dashboard/", authM.Check, userC.Dashboard)

	app.Route("/api/market", func(router fiber.Router) {
		router.Get("/ohlcv/", authM.Check, marketC.OHLCV)
		router.Get("/price/", authM.Check, marketC.Price)
		router.Get("/top-assets/", authM.Check, marketC.TopAssets)
	})

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor Coindeck",
		}))
	})

	logger.Errorf(app.Listen(fmt.Sprintf(":%s", env.Port)))
}
