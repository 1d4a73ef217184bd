package services

import (
	"context"
	"fmt"
	"log"

	"matchmaking_server/models"
	"matchmaking_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// AdminService carries the privileged moderation operations. The admin
// secret itself is checked at the controller; nothing here is tied to a
// UserAuth identity.
type AdminService struct {
	Dynamo Store
}

// ListProfiles returns every profile, unfiltered.
func (s *AdminService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, nil, nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, nil
}

// VerifyUser sets the verified badge on a user's auth record.
func (s *AdminService) VerifyUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("malformed user id %q: %w", userID, ErrBadRequest)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UserAuthTable, key)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if item == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.UserAuthTable, "SET #verified = :verified", key,
		map[string]types.AttributeValue{
			":verified": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{"#verified": "verified"})
	if err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}

// DeleteUser cascades over everything referencing the user — profile, like
// edges in either direction, matches on either side, messages they sent —
// before removing the auth record itself. Every step is delete-if-exists, so
// a partially failed cascade can be re-run safely. Whether the identity was
// present decides the reported outcome.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("malformed user id %q: %w", userID, ErrBadRequest)
	}

	if err := s.Dynamo.DeleteItem(ctx, models.ProfilesTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}); err != nil {
		return fmt.Errorf("cascade failed at profile: %w", err)
	}

	var likes []models.Like
	err := s.Dynamo.ScanWithFilter(ctx, models.LikesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "fromUserId") == userID || utils.ExtractString(item, "toUserId") == userID
	}, nil, &likes)
	if err != nil {
		return fmt.Errorf("cascade failed at likes: %w", err)
	}
	likeKeys := make([]map[string]types.AttributeValue, 0, len(likes))
	for _, like := range likes {
		likeKeys = append(likeKeys, map[string]types.AttributeValue{
			"likeId": &types.AttributeValueMemberS{Value: like.LikeID},
		})
	}
	if err := s.Dynamo.BatchDeleteItems(ctx, models.LikesTable, likeKeys); err != nil {
		return fmt.Errorf("cascade failed at likes: %w", err)
	}

	var matches []models.Match
	err = s.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userA") == userID || utils.ExtractString(item, "userB") == userID
	}, nil, &matches)
	if err != nil {
		return fmt.Errorf("cascade failed at matches: %w", err)
	}
	matchKeys := make([]map[string]types.AttributeValue, 0, len(matches))
	for _, match := range matches {
		matchKeys = append(matchKeys, map[string]types.AttributeValue{
			"pairKey": &types.AttributeValueMemberS{Value: match.PairKey},
		})
	}
	if err := s.Dynamo.BatchDeleteItems(ctx, models.MatchesTable, matchKeys); err != nil {
		return fmt.Errorf("cascade failed at matches: %w", err)
	}

	var messages []models.Message
	err = s.Dynamo.ScanWithFilter(ctx, models.MessagesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "senderId") == userID
	}, nil, &messages)
	if err != nil {
		return fmt.Errorf("cascade failed at messages: %w", err)
	}
	messageKeys := make([]map[string]types.AttributeValue, 0, len(messages))
	for _, message := range messages {
		messageKeys = append(messageKeys, map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: message.MatchID},
			"createdAt": &types.AttributeValueMemberS{Value: message.CreatedAt},
		})
	}
	if err := s.Dynamo.BatchDeleteItems(ctx, models.MessagesTable, messageKeys); err != nil {
		return fmt.Errorf("cascade failed at messages: %w", err)
	}

	log.Printf("Cascade for user %s removed %d likes, %d matches, %d messages",
		userID, len(likes), len(matches), len(messages))

	authKey := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UserAuthTable, authKey)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if item == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err := s.Dynamo.DeleteItem(ctx, models.UserAuthTable, authKey); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetStats aggregates the counters for the admin dashboard.
func (s *AdminService) GetStats(ctx context.Context) (*models.Stats, error) {
	totalUsers, err := s.Dynamo.CountItems(ctx, models.UserAuthTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalMatches, err := s.Dynamo.CountItems(ctx, models.MatchesTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	verifiedUsers, err := s.Dynamo.CountItems(ctx, models.UserAuthTable, map[string]string{"verified": "true"})
	if err != nil {
		return nil, fmt.Errorf("failed to count verified users: %w", err)
	}
	senders, err := s.Dynamo.DistinctStrings(ctx, models.MessagesTable, "senderId")
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return &models.Stats{
		TotalUsers:    totalUsers,
		TotalMatches:  totalMatches,
		VerifiedUsers: verifiedUsers,
		ActiveUsers:   len(senders),
	}, nil
}
