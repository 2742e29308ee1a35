package models

// Role enumerates member authority levels.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// DefaultPassword is the placeholder stored until a member sets a real one.
const DefaultPassword = "@"

// Member represents a registered account, created on first successful
// verification of a phone number.
type Member struct {
	BaseModel
	PhoneNumber string  `gorm:"uniqueIndex;not null" json:"phone_number"`
	Nickname    *string `gorm:"uniqueIndex" json:"nickname"`
	Email       *string `gorm:"uniqueIndex" json:"email"`
	Password    string  `json:"-"`
	Role        Role    `gorm:"type:varchar(16)" json:"role"`
	Point       int     `json:"point"`
	Credit      float64 `json:"credit"`
}

// NicknameOrEmpty returns the nickname or "" when it has not been set yet.
func (m *Member) NicknameOrEmpty() string {
	if m.Nickname == nil {
		return ""
	}
	return *m.Nickname
}
