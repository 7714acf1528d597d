package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents user roles in the system
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// Shop actions gated by role.
const (
	ActionViewRecords   = "view_records"
	ActionCreateRecord  = "create_record"
	ActionUpdateStatus  = "update_status"
	ActionManageFleet   = "manage_fleet"
	ActionExportRecords = "export_records"
	ActionViewStats     = "view_stats"
	ActionManageUsers   = "manage_users"
)

// User represents a shop operator account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	LastLogin    *time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request. An empty role
// defaults to viewer; promotion is an admin task.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims is the authenticated identity carried in the request context.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleTechnician, RoleViewer:
		return true
	default:
		return false
	}
}

// Permits reports whether the role may perform a shop action. Admins may
// do everything, technicians run the workshop day to day, viewers are
// read-only.
func (r Role) Permits(action string) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleTechnician:
		switch action {
		case ActionViewRecords, ActionCreateRecord, ActionUpdateStatus,
			ActionManageFleet, ActionExportRecords, ActionViewStats:
			return true
		}
	case RoleViewer:
		return action == ActionViewRecords || action == ActionViewStats
	}
	return false
}

// HasPermission checks if a user may perform a shop action.
func (u *User) HasPermission(action string) bool {
	return u.Role.Permits(action)
}
