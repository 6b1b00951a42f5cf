package model

type Account struct {
	DTO
	Username string `gorm:"size:60;uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}
