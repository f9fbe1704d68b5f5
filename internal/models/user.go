package models

// UserModel is a local mirror of an identity-provider account.
// Rows are created lazily the first time a valid token with an unknown
// subject hits the API.
type UserModel struct {
	Base
	ExternalID string `json:"-"     gorm:"column:external_id;uniqueIndex;size:191;not null"`
	Email      string `json:"email" gorm:"size:255"`
}

func (UserModel) TableName() string {
	return "users"
}
