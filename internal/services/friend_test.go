package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/moim/internal/models"
)

func testFriendService(db *gorm.DB) *FriendService {
	return NewFriendService(db, NewMemberService(db))
}

func edgeCount(t *testing.T, db *gorm.DB, ownerID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.FriendEdge{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error)
	return count
}

func TestAddByNickname(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	createMember(t, db, "01022222222", "bob")

	info, err := svc.AddByNickname(alice, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", info.Nickname)
	assert.Equal(t, 100.0, info.CreditScore)
	assert.EqualValues(t, 1, edgeCount(t, db, alice.ID))
}

func TestAddByNicknameUnknownTarget(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")

	_, err := svc.AddByNickname(alice, "ghost")
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.EqualValues(t, 0, edgeCount(t, db, alice.ID))
}

func TestAddByPhoneNumber(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	createMember(t, db, "01022222222", "bob")

	info, err := svc.AddByPhoneNumber(alice, "01022222222")
	require.NoError(t, err)
	assert.Equal(t, "bob", info.Nickname)

	_, err = svc.AddByPhoneNumber(alice, "01099999999")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestAddRejectsSelf(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")

	_, err := svc.AddByNickname(alice, "alice")
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.EqualValues(t, 0, edgeCount(t, db, alice.ID))
}

func TestAddAllowsParallelEdges(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	createMember(t, db, "01022222222", "bob")

	_, err := svc.AddByNickname(alice, "bob")
	require.NoError(t, err)
	_, err = svc.AddByNickname(alice, "bob")
	require.NoError(t, err)

	assert.EqualValues(t, 2, edgeCount(t, db, alice.ID))
}

func TestListIsDirected(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	bob := createMember(t, db, "01022222222", "bob")
	createMember(t, db, "01033333333", "carol")

	_, err := svc.AddByNickname(alice, "bob")
	require.NoError(t, err)
	_, err = svc.AddByNickname(alice, "carol")
	require.NoError(t, err)

	infos, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "bob", infos[0].Nickname)
	assert.Equal(t, "carol", infos[1].Nickname)

	// Bob never added anyone; the edge is not symmetric.
	infos, err = svc.List(bob)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestRemoveDeletesExactlyOneEdge(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	bob := createMember(t, db, "01022222222", "bob")
	createMember(t, db, "01033333333", "carol")

	_, err := svc.AddByNickname(alice, "bob")
	require.NoError(t, err)
	_, err = svc.AddByNickname(alice, "carol")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(alice, bob.ID))

	infos, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "carol", infos[0].Nickname)
}

func TestRemoveMissingEdge(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	bob := createMember(t, db, "01022222222", "bob")

	// Bob exists but was never added.
	err := svc.Remove(alice, bob.ID)
	assert.ErrorIs(t, err, ErrEdgeNotFound)

	// The target member does not exist at all.
	err = svc.Remove(alice, 999)
	assert.ErrorIs(t, err, ErrEdgeNotFound)

	assert.EqualValues(t, 0, edgeCount(t, db, alice.ID))
}

func TestRemoveIsOwnerScoped(t *testing.T) {
	db := testDB(t)
	svc := testFriendService(db)
	alice := createMember(t, db, "01011111111", "alice")
	bob := createMember(t, db, "01022222222", "bob")
	createMember(t, db, "01033333333", "carol")

	// Both alice and bob add carol; removing alice's edge keeps bob's.
	_, err := svc.AddByNickname(alice, "carol")
	require.NoError(t, err)
	carolInfo, err := svc.AddByNickname(bob, "carol")
	require.NoError(t, err)

	carol, err := NewMemberService(db).FindByNickname("carol")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(alice, carol.ID))

	infos, err := svc.List(bob)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, *carolInfo, infos[0])
}
