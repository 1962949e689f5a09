package models

import "time"

// Group is a set of members who share availability queries.
type Group struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	OwnerID    string    `bson:"ownerId" json:"owner_id"`
	InviteCode string    `bson:"inviteCode" json:"invite_code"`
	MemberIDs  []string  `bson:"memberIds" json:"member_ids"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// Member is the identity view of a group participant consumed by the
// availability engine; it carries no engine-owned state.
type Member struct {
	ID          string `bson:"id" json:"id"`
	DisplayName string `bson:"displayName" json:"display_name"`
}
