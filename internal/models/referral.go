package models

// Referral represents a referral relationship between two users. A user can
// be the target of at most one referral, system-wide.
type Referral struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SourceUserID uint   `gorm:"not null;index" json:"source_user_id"`
	SourceUser   *User  `gorm:"foreignKey:SourceUserID;constraint:OnDelete:RESTRICT" json:"-"`
	TargetUserID uint   `gorm:"uniqueIndex;not null" json:"target_user_id"`
	TargetUser   *User  `gorm:"foreignKey:TargetUserID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt    string `gorm:"not null" json:"created_at"`
	Status       string `gorm:"size:20;not null" json:"status"` // pending, confirmed
}

// TableName specifies the table name for Referral model
func (Referral) TableName() string {
	return "referrals"
}

// ReferralUser is the public slice of the target user exposed in a referral
type ReferralUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ReferralView is the API shape of a referral: the relationship joined with
// the target user's public fields. Source-user detail is never exposed.
type ReferralView struct {
	ID        uint         `json:"id"`
	User      ReferralUser `json:"user"`
	Status    string       `json:"status"`
	CreatedAt string       `json:"created_at"`
}

// NewReferralView maps a referral with its loaded target user to the API
// shape
func NewReferralView(r Referral) ReferralView {
	view := ReferralView{
		ID:        r.ID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.TargetUser != nil {
		view.User = ReferralUser{
			ID:        r.TargetUser.ID,
			Name:      r.TargetUser.Name,
			AvatarURL: AvatarPlaceholder,
		}
	}
	return view
}
