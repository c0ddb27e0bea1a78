package models

import "time"

// ChatType is fixed: all threads are one-to-one conversations.
type ChatType string

const ChatIndividual ChatType = "individual"

// MessageStatus tracks delivery of a chat message.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// ChatThread is a two-participant conversation, optionally anchored to a
// product. The Other* fields denormalize the non-initiating participant and
// stay valid because membership never changes after creation.
// LastMessageText, LastMessageTime and UnreadCount are derived from the
// thread's messages by the reconciliation pass.
type ChatThread struct {
	ID   ID       `json:"id"`
	Type ChatType `json:"type"`

	UserIDs       []ID   `json:"userIds"`
	OtherUserID   ID     `json:"otherUserId"`
	OtherName     string `json:"otherName"`
	OtherUsername string `json:"otherUsername"`
	OtherAvatar   string `json:"otherAvatar"`
	IsOnline      bool   `json:"isOnline"`

	LastMessageText string    `json:"lastMessageText"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`

	ProductID    ID     `json:"productId,omitempty"`
	ProductName  string `json:"productName,omitempty"`
	ProductImage string `json:"productImage,omitempty"`
}

// ChatMessage belongs to exactly one thread; the sender is always one of
// the thread's two participants.
type ChatMessage struct {
	ID           ID            `json:"id"`
	ThreadID     ID            `json:"threadId"`
	SenderUserID ID            `json:"senderUserId"`
	Text         string        `json:"text"`
	Images       []string      `json:"images,omitempty"`
	Time         time.Time     `json:"time"`
	IsRead       bool          `json:"isRead"`
	Status       MessageStatus `json:"status"`
}
