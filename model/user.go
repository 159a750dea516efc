// Package model defines database models
package model

type User struct {
	ID           string `gorm:"primaryKey" json:"userId"`
	Email        string `gorm:"unique;not null" json:"email"`
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    int64  `gorm:"not null" json:"created_at"`

	Products []Product `gorm:"foreignKey:UserID" json:"-"`
}
