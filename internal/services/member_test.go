package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/moim/internal/models"
)

func TestFindOrCreateAppliesDefaults(t *testing.T) {
	svc := NewMemberService(testDB(t))

	member, err := svc.FindOrCreate("01012345678")
	require.NoError(t, err)

	assert.NotZero(t, member.ID)
	assert.Equal(t, "01012345678", member.PhoneNumber)
	assert.Equal(t, models.RoleMember, member.Role)
	assert.Equal(t, models.DefaultPassword, member.Password)
	assert.Equal(t, 1000, member.Point)
	assert.Equal(t, 100.0, member.Credit)
	assert.Nil(t, member.Nickname)
}

func TestFindOrCreateIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)

	first, err := svc.FindOrCreate("01012345678")
	require.NoError(t, err)

	// Mutate state so a second call can be told apart from re-creation.
	require.NoError(t, db.Model(first).Update("point", 40).Error)

	second, err := svc.FindOrCreate("01012345678")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 40, second.Point)
}

func TestLookupsReturnNotFound(t *testing.T) {
	svc := NewMemberService(testDB(t))

	_, err := svc.FindByID(99)
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = svc.FindByNickname("nobody")
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = svc.FindByPhoneNumber("01000000000")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUniquenessChecks(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)

	member := createMember(t, db, "01012345678", "alice")
	email := "alice@example.com"
	require.NoError(t, db.Model(member).Update("email", email).Error)

	available, err := svc.IsPhoneNumberAvailable("01012345678")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsPhoneNumberAvailable("01099999999")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.IsNicknameAvailable("alice")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsEmailAvailable(email)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsEmailAvailable("free@example.com")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestUpdateProfile(t *testing.T) {
	db := testDB(t)
	svc := NewMemberService(db)

	alice := createMember(t, db, "01011111111", "alice")
	bob := createMember(t, db, "01022222222", "")

	nickname := "alice"
	err := svc.UpdateProfile(bob, &nickname, nil)
	assert.ErrorIs(t, err, ErrNicknameTaken)

	nickname = "bob"
	email := "bob@example.com"
	require.NoError(t, svc.UpdateProfile(bob, &nickname, &email))

	reloaded, err := svc.FindByID(bob.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Nickname)
	assert.Equal(t, "bob", *reloaded.Nickname)
	require.NotNil(t, reloaded.Email)
	assert.Equal(t, "bob@example.com", *reloaded.Email)

	// Alice is untouched.
	found, err := svc.FindByNickname("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
}
