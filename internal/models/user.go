package models

import "time"

// Role enumerates the access levels a user can hold.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// User represents a marketplace account as surfaced to the admin panel.
type User struct {
	ID        ID     `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`

	Location string `json:"location"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Address  string `json:"address"`

	Verified     bool `json:"verified"`
	Role         Role `json:"role"`
	OnlineStatus bool `json:"onlineStatus"`
	IsPremium    bool `json:"isPremium"`

	JoinDate     time.Time `json:"joinDate"`
	LastActive   time.Time `json:"lastActive"`
	Rating       float64   `json:"rating"`
	ResponseRate int       `json:"responseRate"`

	FavoritesProductIDs []ID `json:"favoritesProductIds"`
	FollowersCount      int  `json:"followersCount"`
	FollowingCount      int  `json:"followingCount"`
}
