package api

import (
	"errors"
	"net/http"
	"time"

	"lavish/store-api/internal/service"
	"lavish/store-api/model"
	"lavish/store-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type registerBody struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (a *API) UserRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	for _, n := range []string{data.FirstName, data.LastName} {
		if err := validators.NameValidator(n); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		zap.L().Debug("Invalid email", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		zap.L().Debug("Invalid password", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.ConfirmPassword != data.Password {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   validators.ErrPasswordMismatch.Error(),
			"requestID": requestID,
		})
		return
	}

	var found bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		Find(&found)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"message":   "User already exists, you can login",
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.Generate(charset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Create(&model.User{
		ID:           userID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().Unix(),
	}).Error
	if err != nil {
		// Two signups racing past the existence check end up here,
		// the unique index on email is the authoritative gate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"success":   false,
				"message":   "User already exists, you can login",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Fire and forget, a broken mail setup should never block signups
	go func(email, firstName string) {
		if err := service.SendWelcomeMail(email, firstName); err != nil {
			zap.L().Warn("Failed to send welcome mail", zap.Error(err))
		}
	}(data.Email, data.FirstName)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Signup successful",
		"userId":  userID,
	})
}
