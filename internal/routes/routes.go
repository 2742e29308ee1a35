package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moim/internal/config"
	"github.com/example/moim/internal/handlers"
	"github.com/example/moim/internal/middleware"
	"github.com/example/moim/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	codeService := services.NewAuthCodeService(db)
	memberService := services.NewMemberService(db)
	tokenService := services.NewTokenService(db, cfg.JWTSecret, cfg.AccessExpires, cfg.RefreshExpires)
	friendService := services.NewFriendService(db, memberService)

	authHandler := handlers.NewAuthHandler(codeService, memberService, tokenService)
	friendHandler := handlers.NewFriendHandler(friendService)
	profileHandler := handlers.NewProfileHandler(memberService)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/code", authHandler.SendCode)
	auth.Post("/code/sms", authHandler.SendSMSCode)
	auth.Post("/code/email", authHandler.SendEmailCode)
	auth.Post("/login", authHandler.Login)
	auth.Post("/check/phone", authHandler.CheckPhoneNumber)
	auth.Post("/check/nickname", authHandler.CheckNickname)
	auth.Post("/check/email", authHandler.CheckEmail)

	// Protected routes
	protected := api.Group("", middleware.SessionGuard(tokenService))

	protected.Post("/auth/logout", authHandler.Logout)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	protected.Get("/friends", friendHandler.List)
	protected.Post("/friends/nickname", friendHandler.AddByNickname)
	protected.Post("/friends/phone", friendHandler.AddByPhoneNumber)
	protected.Delete("/friends/:id", friendHandler.Remove)
}
