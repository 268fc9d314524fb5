package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"referral-service/internal/models"
	"referral-service/internal/store"
)

// setupTestStore opens a fresh in-memory sqlite database. The database is
// named after the test so concurrent tests never share state; foreign keys
// are switched on to match production. The raw handle is returned alongside
// the store for direct row inspection.
func setupTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Referral{}))
	return store.New(db), db
}

func TestGetUserByID(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	created, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	user, err := st.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Fox Mulder", user.Name)
	assert.Equal(t, "TRUSTNO1", user.ReferralCode)
}

func TestGetUserByIDMissing(t *testing.T) {
	st, _ := setupTestStore(t)

	user, err := st.GetUserByID(context.Background(), 999)
	require.NoError(t, err, "a missing user is not an error")
	assert.Nil(t, user)
}

func TestCreateUserDuplicateName(t *testing.T) {
	st, db := setupTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)

	_, err = st.CreateUser(ctx, "Fox Mulder", "SPOOKY")
	assert.ErrorIs(t, err, store.ErrUniqueViolation)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed create must not persist a row")
}

func TestCreateUserDuplicateReferralCode(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)

	_, err = st.CreateUser(ctx, "Dana Scully", "TRUSTNO1")
	assert.ErrorIs(t, err, store.ErrUniqueViolation)
}

func TestCreateReferral(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	mulder, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)
	tooms, err := st.CreateUser(ctx, "Eugene Victor Tooms", "LIVERLVR")
	require.NoError(t, err)

	view, err := st.CreateReferral(ctx, mulder.ID, tooms.ID, "confirmed")
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "confirmed", view.Status)
	assert.NotEmpty(t, view.CreatedAt)
	assert.Equal(t, tooms.ID, view.User.ID)
	assert.Equal(t, "Eugene Victor Tooms", view.User.Name)
	assert.Equal(t, models.AvatarPlaceholder, view.User.AvatarURL)
}

func TestCreateReferralRoundTrip(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	mulder, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)
	tooms, err := st.CreateUser(ctx, "Eugene Victor Tooms", "LIVERLVR")
	require.NoError(t, err)

	created, err := st.CreateReferral(ctx, mulder.ID, tooms.ID, "pending")
	require.NoError(t, err)

	listed, err := st.GetReferralsBySourceID(ctx, mulder.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *created, listed[0], "created record must read back identically")
}

func TestCreateReferralDuplicateTarget(t *testing.T) {
	st, db := setupTestStore(t)
	ctx := context.Background()

	mulder, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)
	scully, err := st.CreateUser(ctx, "Dana Scully", "SCULLYMD")
	require.NoError(t, err)
	tooms, err := st.CreateUser(ctx, "Eugene Victor Tooms", "LIVERLVR")
	require.NoError(t, err)

	_, err = st.CreateReferral(ctx, mulder.ID, tooms.ID, "confirmed")
	require.NoError(t, err)

	// A user may be the target of at most one referral, regardless of source.
	_, err = st.CreateReferral(ctx, scully.ID, tooms.ID, "pending")
	assert.ErrorIs(t, err, store.ErrUniqueViolation)

	var count int64
	require.NoError(t, db.Model(&models.Referral{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only the first referral persists")
}

func TestCreateReferralUnknownUser(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	mulder, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)

	_, err = st.CreateReferral(ctx, mulder.ID, 999, "pending")
	assert.ErrorIs(t, err, store.ErrForeignKeyViolation)

	_, err = st.CreateReferral(ctx, 999, mulder.ID, "pending")
	assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
}

func TestGetReferralsBySourceIDEmpty(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	scully, err := st.CreateUser(ctx, "Dana Scully", "SCULLYMD")
	require.NoError(t, err)

	referrals, err := st.GetReferralsBySourceID(ctx, scully.ID)
	require.NoError(t, err)
	require.NotNil(t, referrals, "no referrals is an empty slice, not nil")
	assert.Empty(t, referrals)
}

func TestGetReferralsBySourceIDOrder(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	mulder, err := st.CreateUser(ctx, "Fox Mulder", "TRUSTNO1")
	require.NoError(t, err)

	targets := []string{"The Flukeman", "Eugene Victor Tooms", "The Great Mutato"}
	for i, name := range targets {
		u, err := st.CreateUser(ctx, name, fmt.Sprintf("CODE%d", i))
		require.NoError(t, err)
		_, err = st.CreateReferral(ctx, mulder.ID, u.ID, "confirmed")
		require.NoError(t, err)
	}

	referrals, err := st.GetReferralsBySourceID(ctx, mulder.ID)
	require.NoError(t, err)
	require.Len(t, referrals, len(targets))
	for i, view := range referrals {
		assert.Equal(t, targets[i], view.User.Name, "insertion order must hold")
	}
}

func TestResetAndSeed(t *testing.T) {
	st, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, "Leftover", "OLDDATA")
	require.NoError(t, err)

	require.NoError(t, st.Reset(ctx))

	user, err := st.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, user, "reset drops existing rows")

	require.NoError(t, st.Seed(ctx))

	mulder, err := st.GetUserByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, mulder)
	assert.Equal(t, "Fox Mulder", mulder.Name)

	referrals, err := st.GetReferralsBySourceID(ctx, mulder.ID)
	require.NoError(t, err)
	assert.Len(t, referrals, 4)
}

