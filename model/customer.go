package model

// Customer phone and email are stored in canonical form only
// (utils.NormalizePhone / utils.NormalizeEmail), so the plain unique
// indexes are enough to enforce contact uniqueness. Both columns are
// nullable; Postgres allows any number of NULLs under a unique index.
type Customer struct {
	DTO
	FullName string  `gorm:"size:120;not null" json:"fullName"`
	Phone    *string `gorm:"size:16;uniqueIndex" json:"phone"`
	Email    *string `gorm:"size:120;uniqueIndex" json:"email"`
}

type Customers []Customer

type CreateCustomerInput struct {
	FullName string `validate:"required,max=120" json:"fullName"`
	Phone    string `validate:"omitempty,max=20" json:"phone"`
	Email    string `validate:"omitempty,email" json:"email"`
}

// Nil means "leave as is"; an empty string clears the field.
type UpdateCustomerInput struct {
	FullName *string `validate:"omitempty,max=120" json:"fullName"`
	Phone    *string `validate:"omitempty,max=20" json:"phone"`
	Email    *string `validate:"omitempty" json:"email"`
}

type FilterCustomer struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
