package model

import "time"

// DTO is embedded by every persisted entity. Version backs the
// optimistic concurrency check on updates.
type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Version   uint      `gorm:"not null;default:0" json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DTO) PrimaryKey() uint     { return d.ID }
func (d *DTO) RowVersion() uint     { return d.Version }
func (d *DTO) SetRowVersion(v uint) { d.Version = v }

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Username  string `json:"username"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}
