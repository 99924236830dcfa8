package domain

import "time"

// Notification type tags.
const (
	NotificationTypeFriendAddedCar = "friend_added_car"
)

// Notification is a persisted per-tenant message. IsRead and IsSeen are
// independent flags that only ever transition false→true. IsSeen starts
// as the inverse of the recipient's notifications-enabled setting: a muted
// recipient's notifications are born already seen.
type Notification struct {
	ID          string    `json:"id" dynamodbav:"id"`
	CompanyName string    `json:"companyName" dynamodbav:"company_name"`
	Message     string    `json:"message" dynamodbav:"message"`
	Type        string    `json:"type" dynamodbav:"type"`
	IsRead      bool      `json:"isRead" dynamodbav:"is_read"`
	IsSeen      bool      `json:"isSeen" dynamodbav:"is_seen"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
}

// NotificationSettings is one row per dealer. A missing row means enabled:
// the default is applied at the read site, never stored as a sentinel.
type NotificationSettings struct {
	CompanyName          string `json:"companyName" dynamodbav:"company_name"`
	NotificationsEnabled bool   `json:"notificationsEnabled" dynamodbav:"notifications_enabled"`
}
