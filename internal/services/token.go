package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/moim/internal/models"
)

// TokenPair carries the two credentials a session consists of: a short-lived
// access token and a persisted, revocable refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	jwt.RegisteredClaims
}

// TokenService mints and validates session token pairs. Refresh tokens are
// recorded by their uuid id so they can be checked and revoked per member.
type TokenService struct {
	db             *gorm.DB
	secret         string
	accessExpires  time.Duration
	refreshExpires time.Duration
}

// NewTokenService constructs a TokenService.
func NewTokenService(db *gorm.DB, secret string, accessExpires, refreshExpires time.Duration) *TokenService {
	return &TokenService{
		db:             db,
		secret:         secret,
		accessExpires:  accessExpires,
		refreshExpires: refreshExpires,
	}
}

// Issue mints an access/refresh pair for the member and persists the refresh
// token. A new row is recorded per issuance.
func (s *TokenService) Issue(member *models.Member) (*TokenPair, error) {
	now := time.Now()
	subject := strconv.FormatUint(uint64(member.ID), 10)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, &accessClaims{
		Role: string(member.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpires)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	accessToken, err := access.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New()
	expiresAt := now.Add(s.refreshExpires)
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        tokenID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	refreshToken, err := refresh.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	record := models.RefreshToken{
		MemberID:  member.ID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Authenticate validates a presented token pair and resolves the member it
// belongs to. Any malformed, expired, revoked, or mismatched token yields
// ErrTokenInvalid.
func (s *TokenService) Authenticate(accessToken, refreshToken string) (*models.Member, error) {
	memberID, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	record, err := s.validateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if record.MemberID != memberID {
		return nil, ErrTokenInvalid
	}

	var member models.Member
	if err := s.db.First(&member, "id = ?", memberID).Error; err != nil {
		return nil, ErrTokenInvalid
	}

	return &member, nil
}

// Revoke deletes the member's persisted refresh tokens and reports whether
// any existed to delete.
func (s *TokenService) Revoke(member *models.Member) (bool, error) {
	res := s.db.Where("member_id = ?", member.ID).Delete(&models.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *TokenService) parseAccessToken(tokenString string) (uint, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, s.keyFunc)
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}
	return parseMemberID(claims.Subject)
}

func (s *TokenService) validateRefreshToken(tokenString string) (*models.RefreshToken, error) {
	var claims refreshClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, s.keyFunc)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	var record models.RefreshToken
	if err := s.db.Where("token_id = ?", tokenID).First(&record).Error; err != nil {
		return nil, ErrTokenInvalid
	}
	if record.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenInvalid
	}

	return &record, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.secret), nil
}

func parseMemberID(subject string) (uint, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return uint(id), nil
}
