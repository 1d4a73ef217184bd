package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"matchmaking_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ActionService records like edges and materializes matches when they become
// mutual. This is the only place cross-user relationship state is created.
type ActionService struct {
	Dynamo Store
}

// Like outcomes returned to the caller
const (
	StatusLiked = "liked"
	StatusMatch = "match"
)

// LikeUser inserts a like edge from the requester to the target, then probes
// for the reverse edge. On a mutual like the match is created with a
// conditional put on the canonical pair key, so two racing mutual likes still
// yield exactly one match. Repeated likes are stored as-is, not deduplicated.
func (as *ActionService) LikeUser(ctx context.Context, user *models.UserAuth, targetID string) (string, error) {
	if targetID == user.UserID {
		return "", fmt.Errorf("self-like rejected: %w", ErrInvalidTarget)
	}
	if !user.Paid {
		return "", fmt.Errorf("liking requires a completed payment: %w", ErrPaymentRequired)
	}

	like := models.Like{
		LikeID:     uuid.NewString(),
		FromUserID: user.UserID,
		ToUserID:   targetID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Dynamo.PutItem(ctx, models.LikesTable, like); err != nil {
		return "", fmt.Errorf("failed to record like: %w", err)
	}

	reverse, err := as.Dynamo.QueryItemsWithIndex(ctx, models.LikesTable, models.LikesFromToIndex,
		"fromUserId = :fromUserId AND toUserId = :toUserId",
		map[string]types.AttributeValue{
			":fromUserId": &types.AttributeValueMemberS{Value: targetID},
			":toUserId":   &types.AttributeValueMemberS{Value: user.UserID},
		}, nil, 1)
	if err != nil {
		return "", fmt.Errorf("failed to check for mutual like: %w", err)
	}
	if len(reverse) == 0 {
		return StatusLiked, nil
	}

	match := models.Match{
		PairKey:   models.PairKey(user.UserID, targetID),
		MatchID:   uuid.NewString(),
		UserA:     user.UserID,
		UserB:     targetID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	created, err := as.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "pairKey")
	if err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}
	if !created {
		log.Printf("Match already exists for pair %s", match.PairKey)
	}
	return StatusMatch, nil
}
