package services

import (
	"gorm.io/gorm"

	"github.com/example/moim/internal/models"
)

const (
	defaultPoint  = 1000
	defaultCredit = 100.0
)

// MemberService creates and looks up members and enforces field uniqueness.
type MemberService struct {
	db *gorm.DB
}

// NewMemberService constructs a MemberService.
func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// FindOrCreate returns the member registered under the phone number,
// creating one with signup defaults when none exists.
func (s *MemberService) FindOrCreate(phoneNumber string) (*models.Member, error) {
	var member models.Member
	err := s.db.Where("phone_number = ?", phoneNumber).First(&member).Error
	if err == nil {
		return &member, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	member = models.Member{
		PhoneNumber: phoneNumber,
		Password:    models.DefaultPassword,
		Role:        models.RoleMember,
		Point:       defaultPoint,
		Credit:      defaultCredit,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// FindByID returns the member with the given id or ErrMemberNotFound.
func (s *MemberService) FindByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// FindByNickname returns the member holding the nickname or ErrMemberNotFound.
func (s *MemberService) FindByNickname(nickname string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("nickname = ?", nickname).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// FindByPhoneNumber returns the member holding the phone number or
// ErrMemberNotFound.
func (s *MemberService) FindByPhoneNumber(phoneNumber string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("phone_number = ?", phoneNumber).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// IsPhoneNumberAvailable reports whether no member holds the phone number.
func (s *MemberService) IsPhoneNumberAvailable(value string) (bool, error) {
	return s.fieldAvailable("phone_number", value)
}

// IsNicknameAvailable reports whether no member holds the nickname.
func (s *MemberService) IsNicknameAvailable(value string) (bool, error) {
	return s.fieldAvailable("nickname", value)
}

// IsEmailAvailable reports whether no member holds the email.
func (s *MemberService) IsEmailAvailable(value string) (bool, error) {
	return s.fieldAvailable("email", value)
}

func (s *MemberService) fieldAvailable(column, value string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Member{}).
		Where(column+" = ?", value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// UpdateProfile sets the member's nickname and/or email after re-checking
// uniqueness. Nil arguments leave the field untouched.
func (s *MemberService) UpdateProfile(member *models.Member, nickname, email *string) error {
	updates := map[string]interface{}{}

	if nickname != nil {
		available, err := s.fieldAvailable("nickname", *nickname)
		if err != nil {
			return err
		}
		if !available {
			return ErrNicknameTaken
		}
		updates["nickname"] = *nickname
	}

	if email != nil {
		available, err := s.fieldAvailable("email", *email)
		if err != nil {
			return err
		}
		if !available {
			return ErrEmailTaken
		}
		updates["email"] = *email
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.db.Model(member).Updates(updates).Error; err != nil {
		return err
	}

	if nickname != nil {
		member.Nickname = nickname
	}
	if email != nil {
		member.Email = email
	}
	return nil
}
