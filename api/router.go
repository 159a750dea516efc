// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"lavish/store-api/aws"
	"lavish/store-api/db"
	"lavish/store-api/internal/service"
	"lavish/store-api/middleware"
	"lavish/store-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Signer *security.Signer
	Images service.ImageStore
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	signer, err := security.NewSigner(viper.GetString("jwt.secret"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer, %w", err)
	}
	a.Signer = signer

	a.Argon = security.New()

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}
	a.Images = service.NewS3ImageStore(s3)

	makeLogger()
	a.registerRoutes()

	return a, nil
}

func (a *API) registerRoutes() {
	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.allowed_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	router.MaxMultipartMemory = 5 << 20

	auth := middleware.NewAuthMiddleware(a.Signer, a.DB)
	maxUploadSize := viper.GetInt64("upload.max_size")

	// GET / 			-> Used to check if the server is alive
	router.GET("/", a.Banner)

	users := router.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /auth/signup 		-> Registers a new user
		users.POST("/signup", a.UserRegister)

		// POST /auth/login 		-> Logs in a user and returns a bearer token
		users.POST("/login", a.UserLogin)

		// GET /auth/getusers 		-> Lists registered users
		users.GET("/getusers", auth, a.UserFetch)
	}

	products := router.Group("/api")
	{
		// GET /api/allproducts 	-> Returns every product regardless of owner
		products.GET("/allproducts", a.ProductFetchAll)

		// GET /api/ 			-> Returns the caller's products, newest first
		products.GET("/", auth, a.ProductFetch)

		// GET /api/:id 		-> Returns a single product owned by the caller
		products.GET("/:id", auth, a.ProductGet)

		// POST /api/ 			-> Creates a product, optionally with an image
		products.POST("/", auth, middleware.BodySizeLimiter(maxUploadSize), a.ProductCreate)

		// PUT /api/:id 		-> Partially updates a product owned by the caller
		products.PUT("/:id", auth, middleware.BodySizeLimiter(maxUploadSize), a.ProductUpdate)

		// DELETE /api/:id 		-> Deletes a product owned by the caller
		products.DELETE("/:id", auth, a.ProductDelete)
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
