package models

// FriendEdge is a directed relation: the owner added the friend. A mutual
// friendship is two edges. Listing is always "edges owned by X".
type FriendEdge struct {
	BaseModel
	OwnerID  uint   `gorm:"index;not null" json:"owner_id"`
	FriendID uint   `gorm:"not null" json:"friend_id"`
	Owner    Member `gorm:"foreignKey:OwnerID" json:"-"`
	Friend   Member `gorm:"foreignKey:FriendID" json:"-"`
}
