package model

type Product struct {
	ID uint `gorm:"primaryKey;autoIncrement;index" json:"id"`

	// Set once at creation and never reassigned. Every mutation on the
	// record checks the caller against this field first
	UserID string `gorm:"not null;index:idx_owner_created" json:"userId"`

	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"not null" json:"description"`
	Price       float64     `gorm:"not null" json:"price"`
	Quantity    int         `gorm:"not null;default:0" json:"quantity"`
	Category    string      `json:"category"`
	SubCategory string      `json:"subCategory"`
	Sizes       StringSlice `json:"sizes"`
	Colors      StringSlice `json:"colors"`

	// Public URL of the product image, empty when none was uploaded
	Image string `json:"image"`

	// Unix second timestamps
	CreatedAt int64 `gorm:"not null;index:idx_owner_created,sort:desc" json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
