package models

// UserAuth is the session/entitlement record created at checkout time.
// It is distinct from the dating Profile; one Profile at most hangs off it.
type UserAuth struct {
	UserID          string `dynamodbav:"userId" json:"userId"`
	Email           string `dynamodbav:"email" json:"email"`
	StripeSessionID string `dynamodbav:"stripeSessionId" json:"stripeSessionId"`
	Paid            bool   `dynamodbav:"paid" json:"paid"`
	Token           string `dynamodbav:"token" json:"-"`
	Verified        bool   `dynamodbav:"verified" json:"verified"`
}

// UserAuthTable is the DynamoDB table name for auth/session records
const UserAuthTable = "UserAuth"

// TokenIndex is the GSI used to resolve a bearer token to a UserAuth record
const TokenIndex = "token-index"

// SessionIndex is the GSI used to resolve a checkout session id
const SessionIndex = "session-index"
