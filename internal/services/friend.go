package services

import (
	"gorm.io/gorm"

	"github.com/example/moim/internal/models"
)

// FriendInfo is the projection of a friend exposed in listings.
type FriendInfo struct {
	Nickname    string  `json:"nickname"`
	CreditScore float64 `json:"creditScore"`
}

// FriendService manages directed friend edges. Every operation takes the
// authenticated owner explicitly; the service never inspects request state.
type FriendService struct {
	db      *gorm.DB
	members *MemberService
}

// NewFriendService constructs a FriendService.
func NewFriendService(db *gorm.DB, members *MemberService) *FriendService {
	return &FriendService{db: db, members: members}
}

// List returns the projections of every friend the owner has added, in
// persisted order.
func (s *FriendService) List(owner *models.Member) ([]FriendInfo, error) {
	var edges []models.FriendEdge
	err := s.db.Preload("Friend").
		Where("owner_id = ?", owner.ID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	infos := make([]FriendInfo, 0, len(edges))
	for _, edge := range edges {
		infos = append(infos, projectFriend(&edge.Friend))
	}
	return infos, nil
}

// AddByNickname adds the member holding the nickname as a friend of the
// owner and returns the new friend's projection. No duplicate check is
// performed; repeated calls create parallel edges.
func (s *FriendService) AddByNickname(owner *models.Member, nickname string) (*FriendInfo, error) {
	target, err := s.members.FindByNickname(nickname)
	if err != nil {
		if err == ErrMemberNotFound {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return s.add(owner, target)
}

// AddByPhoneNumber adds the member holding the phone number as a friend of
// the owner and returns the new friend's projection.
func (s *FriendService) AddByPhoneNumber(owner *models.Member, phoneNumber string) (*FriendInfo, error) {
	target, err := s.members.FindByPhoneNumber(phoneNumber)
	if err != nil {
		if err == ErrMemberNotFound {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return s.add(owner, target)
}

func (s *FriendService) add(owner, target *models.Member) (*FriendInfo, error) {
	if owner.ID == target.ID {
		return nil, ErrTargetNotFound
	}

	edge := models.FriendEdge{OwnerID: owner.ID, FriendID: target.ID}
	if err := s.db.Create(&edge).Error; err != nil {
		return nil, err
	}

	info := projectFriend(target)
	return &info, nil
}

// Remove deletes the edge from the owner to the member with the given id.
// A missing target member and a missing edge both surface as
// ErrEdgeNotFound; callers do not distinguish them.
func (s *FriendService) Remove(owner *models.Member, friendMemberID uint) error {
	target, err := s.members.FindByID(friendMemberID)
	if err != nil {
		if err == ErrMemberNotFound {
			return ErrEdgeNotFound
		}
		return err
	}

	var edge models.FriendEdge
	err = s.db.Where("owner_id = ? AND friend_id = ?", owner.ID, target.ID).
		First(&edge).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrEdgeNotFound
		}
		return err
	}

	return s.db.Delete(&edge).Error
}

func projectFriend(friend *models.Member) FriendInfo {
	return FriendInfo{
		Nickname:    friend.NicknameOrEmpty(),
		CreditScore: friend.Credit,
	}
}
