package models

// AvatarPlaceholder is returned for every user until real asset storage
// exists. Avatar URLs are synthesized on read and never persisted.
const AvatarPlaceholder = "https://place-hold.it/64x64"

// User represents a user in the system
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex;size:256;not null" json:"name"`
	ReferralCode string `gorm:"uniqueIndex;size:16;not null" json:"referral_code"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserProfile is the API shape of a user
type UserProfile struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatar_url"`
	ReferralCode string `json:"referral_code"`
}

// Profile maps a persisted user to its API shape
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Name:         u.Name,
		AvatarURL:    AvatarPlaceholder,
		ReferralCode: u.ReferralCode,
	}
}
