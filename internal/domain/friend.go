package domain

import "time"

// FriendLink is a directed edge owned by one dealer pointing at another
// dealer's canonical company name. Edges are never mirrored: A adding B
// creates no edge from B to A.
type FriendLink struct {
	Owner     string    `json:"owner" dynamodbav:"owner"`
	FriendID  string    `json:"friendId" dynamodbav:"friend_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Company   string    `json:"company" dynamodbav:"company"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type AddFriendRequest struct {
	FriendName    string `json:"friendName" validate:"required"`
	FriendCompany string `json:"friendCompany" validate:"required"`
}
