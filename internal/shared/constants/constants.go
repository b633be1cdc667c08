// Package constants defines shared constant values used across the application.
package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Database table names
const (
	TableUsers         = "users"
	TableProfiles      = "profiles"
	TableSubscriptions = "subscriptions"
	TablePlans         = "plans"
	TablePayments      = "payments"
)

// Context keys set by HTTP middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// Roles carried in the auth token
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)
