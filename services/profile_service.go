package services

import (
	"context"
	"fmt"

	"matchmaking_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"
)

// ProfileService owns the one-profile-per-user storage.
type ProfileService struct {
	Dynamo Store
}

var validate = validator.New()

// Upsert statuses reported back to the caller
const (
	ProfileCreated = "created"
	ProfileUpdated = "updated"
)

// OwnProfileResponse pairs the caller's profile (nil if none yet) with the
// email and verified flag off the auth record.
type OwnProfileResponse struct {
	Profile *models.Profile `json:"profile"`
	User    OwnUserInfo     `json:"user"`
}

type OwnUserInfo struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// UpsertProfile validates the profile and replaces or inserts it under the
// caller's user id. Requires a completed payment.
func (ps *ProfileService) UpsertProfile(ctx context.Context, user *models.UserAuth, profile models.Profile) (string, error) {
	if !user.Paid {
		return "", fmt.Errorf("profile writes require a completed payment: %w", ErrPaymentRequired)
	}

	if err := validate.Struct(profile); err != nil {
		return "", fmt.Errorf("profile rejected: %v: %w", err, ErrBadRequest)
	}

	// The profile always belongs to the authenticated caller, whatever the
	// payload claimed.
	profile.UserID = user.UserID

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: user.UserID},
	}
	existing, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return "", fmt.Errorf("failed to look up existing profile: %w", err)
	}

	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return "", fmt.Errorf("failed to store profile: %w", err)
	}

	if existing != nil {
		return ProfileUpdated, nil
	}
	return ProfileCreated, nil
}

// GetOwnProfile returns the caller's profile plus auth info, regardless of
// payment status. Profile is nil when none has been created yet.
func (ps *ProfileService) GetOwnProfile(ctx context.Context, user *models.UserAuth) (*OwnProfileResponse, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: user.UserID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	response := &OwnProfileResponse{
		User: OwnUserInfo{Email: user.Email, Verified: user.Verified},
	}
	if item != nil {
		var profile models.Profile
		if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
		}
		response.Profile = &profile
	}
	return response, nil
}
