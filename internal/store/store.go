package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"referral-service/internal/models"
)

// Sentinel errors raised by create operations. Callers match them with
// errors.Is; the HTTP layer maps them to 409 / 422.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// Store is the data access layer over the users and referrals tables
type Store struct {
	db *gorm.DB
}

// New creates a new Store
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetUserByID retrieves a single user by id. A missing user is not an
// error: it returns (nil, nil).
func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// GetReferralsBySourceID retrieves all referrals initiated by a user, each
// joined with its target user, in insertion order. A user with no referrals
// yields an empty slice.
func (s *Store) GetReferralsBySourceID(ctx context.Context, sourceID uint) ([]models.ReferralView, error) {
	var referrals []models.Referral
	err := s.db.WithContext(ctx).
		Where("source_user_id = ?", sourceID).
		Preload("TargetUser").
		Order("referrals.id").
		Find(&referrals).Error
	if err != nil {
		return nil, fmt.Errorf("list referrals for user %d: %w", sourceID, err)
	}

	views := make([]models.ReferralView, 0, len(referrals))
	for _, r := range referrals {
		views = append(views, models.NewReferralView(r))
	}
	return views, nil
}

// CreateUser inserts a user and returns the persisted record including the
// assigned id. Fails with ErrUniqueViolation if the name or referral code is
// already taken.
func (s *Store) CreateUser(ctx context.Context, name, referralCode string) (*models.User, error) {
	user := models.User{
		Name:         name,
		ReferralCode: referralCode,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", name, translate(err))
	}
	return &user, nil
}

// CreateReferral inserts a referral with a server-assigned UTC timestamp and
// returns the persisted record joined with its target user. Fails with
// ErrUniqueViolation if the target already has a referral and with
// ErrForeignKeyViolation if either id does not reference an existing user.
func (s *Store) CreateReferral(ctx context.Context, sourceUserID, targetUserID uint, status string) (*models.ReferralView, error) {
	referral := models.Referral{
		SourceUserID: sourceUserID,
		TargetUserID: targetUserID,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
		Status:       status,
	}
	if err := s.db.WithContext(ctx).Create(&referral).Error; err != nil {
		return nil, fmt.Errorf("create referral %d->%d: %w", sourceUserID, targetUserID, translate(err))
	}

	if err := s.db.WithContext(ctx).Preload("TargetUser").First(&referral, referral.ID).Error; err != nil {
		return nil, fmt.Errorf("reload referral %d: %w", referral.ID, err)
	}

	view := models.NewReferralView(referral)
	return &view, nil
}

// Reset drops and recreates both tables. Destructive: intended for initial
// setup and tests, never against live data.
func (s *Store) Reset(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Migrator().DropTable(&models.Referral{}, &models.User{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Referral{}); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// translate rewrites driver-level constraint failures into the store's
// sentinel errors; anything else passes through unchanged.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolation
	}
	return err
}
