// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"nyumbani/listing-api/db"
	"nyumbani/listing-api/pkg/middleware"
	"nyumbani/listing-api/pkg/security"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Tokens *security.TokenCodec
}

func NewRouter() (*API, error) {
	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	lifetime, err := time.ParseDuration(viper.GetString("jwt.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt.lifetime, %w", err)
	}

	a := &API{
		DB:     database,
		Argon:  security.NewArgon(),
		Tokens: security.NewTokenCodec(viper.GetString("jwt.secret"), lifetime),
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{viper.GetString("host.cors_origin")},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	a.registerRoutes()

	return a, nil
}

func (a *API) registerRoutes() {
	auth := middleware.NewAuthMiddleware(a.Tokens)
	adminOnly := middleware.NewAdminOnlyMiddleware(a.DB)
	managerOnly := middleware.NewManagerOnlyMiddleware(a.DB)
	authLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.auth_rps"),
		Burst:             viper.GetInt("ratelimit.auth_burst"),
	})

	main := a.Router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	users := main.Group("/auth")
	{
		// POST /api/auth/register 	-> Registers a new user
		users.POST("/register", authLimit, a.AuthRegister)

		// POST /api/auth/login 	-> Logs in a user and returns a JWT token
		users.POST("/login", authLimit, a.AuthLogin)

		// GET /api/auth/profile 	-> Returns the caller's profile and listing stats
		users.GET("/profile", auth, a.ProfileFetch)

		// PUT /api/auth/profile 	-> Updates the caller's profile
		users.PUT("/profile", auth, a.ProfileUpdate)
	}

	properties := main.Group("/properties")
	{
		// GET /api/properties 		-> Lists all properties, verified or not
		properties.GET("", cacheFor(30), a.PropertyList)

		// GET /api/properties/:id 	-> Returns a single property
		properties.GET("/:id", cacheFor(30), a.PropertyFetch)

		// POST /api/properties 	-> Creates a listing (Landlord/Developer/Agent)
		properties.POST("", auth, managerOnly, a.PropertyCreate)

		// PUT /api/properties/:id 	-> Updates a listing owned by the caller
		properties.PUT("/:id", auth, managerOnly, a.PropertyUpdate)

		// DELETE /api/properties/:id 	-> Deletes a listing owned by the caller
		properties.DELETE("/:id", auth, managerOnly, a.PropertyDelete)
	}

	admin := main.Group("/admin", auth, adminOnly)
	{
		// GET /api/admin/properties 			-> All listings for review, including unverified
		admin.GET("/properties", a.AdminProperties)

		// PATCH /api/admin/properties/:id/verify 	-> Marks a listing as verified
		admin.PATCH("/properties/:id/verify", a.AdminVerify)

		// PATCH /api/admin/properties/:id/unverify 	-> Clears the verified mark
		admin.PATCH("/properties/:id/unverify", a.AdminUnverify)

		// GET /api/admin/users 			-> All registered users
		admin.GET("/users", a.AdminUsers)

		// GET /api/admin/dashboard 			-> Moderation statistics
		admin.GET("/dashboard", a.AdminDashboard)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
