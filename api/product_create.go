package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"lavish/store-api/model"
	"lavish/store-api/pkg/util"
	"lavish/store-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// productBody covers both create and partial update. Everything is a
// pointer so an omitted field can be told apart from a zero one.
// Sizes and colors arrive as comma separated strings, the way the
// storefront form submits them.
type productBody struct {
	Name        *string  `form:"name" json:"name"`
	Description *string  `form:"description" json:"description"`
	Price       *float64 `form:"price" json:"price"`
	Quantity    *int     `form:"quantity" json:"quantity"`
	Category    *string  `form:"category" json:"category"`
	SubCategory *string  `form:"subCategory" json:"subCategory"`
	Sizes       *string  `form:"sizes" json:"sizes"`
	Colors      *string  `form:"colors" json:"colors"`
}

func (a *API) ProductCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data productBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.ProductCreateValidator(data.Name, data.Description, data.Price, data.Quantity); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	// The image goes to storage before the row exists. If the insert
	// below fails we only have an unreferenced object to clean up,
	// never a product row pointing at a missing image or an orphaned
	// record waiting for a compensating delete
	imageURL, ok := a.uploadProductImage(c)
	if !ok {
		return
	}

	now := time.Now().Unix()

	product := model.Product{
		UserID:      userID,
		Name:        strings.TrimSpace(*data.Name),
		Description: strings.TrimSpace(*data.Description),
		Price:       *data.Price,
		Quantity:    *data.Quantity,
		Sizes:       []string{},
		Colors:      []string{},
		Image:       imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if data.Category != nil {
		product.Category = strings.TrimSpace(*data.Category)
	}
	if data.SubCategory != nil {
		product.SubCategory = strings.TrimSpace(*data.SubCategory)
	}
	if data.Sizes != nil {
		product.Sizes = validators.SplitList(*data.Sizes)
	}
	if data.Colors != nil {
		product.Colors = validators.SplitList(*data.Colors)
	}

	if err := a.DB.Create(&product).Error; err != nil {
		if imageURL != "" {
			if delErr := a.Images.Delete(context.Background(), imageURL); delErr != nil {
				zap.L().Warn("Failed to clean up image after failed insert", zap.Error(delErr), zap.String("requestID", requestID))
			}
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Error creating product",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created",
		"data":    product,
	})
}

// uploadProductImage validates and stores the optional multipart
// "image" field. Returns the public URL, or "" when the request
// carries no image. When ok is false the error response has already
// been written.
func (a *API) uploadProductImage(c *gin.Context) (imageURL string, ok bool) {
	requestID := c.MustGet("requestID").(string)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		return "", true
	}

	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid image upload",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read image field", zap.Error(err), zap.String("requestID", requestID))
		return "", false
	}

	code, f, mime, err := validators.ImageValidator(fh)
	if err != nil {
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate image", zap.Error(err), zap.String("requestID", requestID))
			err = errors.New("internal server error")
		}

		c.AbortWithStatusJSON(code, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return "", false
	}
	defer f.Close()

	key := "products/" + util.RandStr(16) + mime.Extension()

	imageURL, err = a.Images.Upload(c.Request.Context(), f, fh.Size, mime.String(), key)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Image upload failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload image", zap.Error(err), zap.String("requestID", requestID))
		return "", false
	}

	return imageURL, true
}
