package models

// AuthCode keeps track of one-time login codes issued per phone number.
// Only the latest record for a phone number is meaningful: sending a new
// code deletes the previous record, and a successful verification consumes
// the record immediately.
type AuthCode struct {
	BaseModel
	PhoneNumber string `gorm:"index" json:"phone_number"`
	Code        string `json:"code"`
}
