package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"gorm.io/gorm"

	"github.com/example/moim/internal/models"
)

// AuthCodeService issues and consumes one-time login codes keyed by phone
// number. Only the most recently issued code for a number is valid.
type AuthCodeService struct {
	db *gorm.DB
}

// NewAuthCodeService constructs an AuthCodeService.
func NewAuthCodeService(db *gorm.DB) *AuthCodeService {
	return &AuthCodeService{db: db}
}

// SendCode issues a fresh 6-digit code for the phone number, invalidating
// any previously issued code. The code is returned to the caller in place
// of an SMS/email delivery.
func (s *AuthCodeService) SendCode(phoneNumber string) (string, error) {
	code, err := generateAuthCode()
	if err != nil {
		return "", err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phone_number = ?", phoneNumber).
			Delete(&models.AuthCode{}).Error; err != nil {
			return err
		}
		record := models.AuthCode{PhoneNumber: phoneNumber, Code: code}
		return tx.Create(&record).Error
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

// Verify consumes the code stored for the phone number. It returns
// ErrCodeNotFound when no record exists, ErrCodeMismatch when the submitted
// code differs (the record is kept), and nil after deleting the record on
// success. The delete is keyed by record id and code so that concurrent
// verifications of the same number consume the code at most once.
func (s *AuthCodeService) Verify(phoneNumber, submitted string) error {
	var record models.AuthCode
	err := s.db.Where("phone_number = ?", phoneNumber).
		Order("id desc").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCodeNotFound
		}
		return err
	}

	if record.Code != submitted {
		return ErrCodeMismatch
	}

	res := s.db.Where("id = ? AND code = ?", record.ID, submitted).
		Delete(&models.AuthCode{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Consumed by a concurrent verification.
		return ErrCodeNotFound
	}

	return nil
}

func generateAuthCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
