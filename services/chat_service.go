package services

import (
	"context"
	"fmt"
	"time"

	"matchmaking_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Fixed-width timestamp layout so createdAt sorts lexicographically as the
// table's range key. RFC3339Nano trims trailing zeros and would not.
const messageTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ChatService relays messages between the two parties of a match. Every
// operation re-checks the match and the caller's membership in it.
type ChatService struct {
	Dynamo  Store
	Matches *MatchService
}

// SendMessage appends a message to the match with a server-assigned
// timestamp. The caller must be one of the two participants.
func (cs *ChatService) SendMessage(ctx context.Context, user *models.UserAuth, matchID, text string) (*models.Message, error) {
	match, err := cs.Matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(user.UserID) {
		return nil, fmt.Errorf("sender is not part of this match: %w", ErrForbidden)
	}

	message := models.Message{
		MatchID:   match.MatchID,
		CreatedAt: time.Now().UTC().Format(messageTimeLayout),
		MessageID: uuid.NewString(),
		SenderID:  user.UserID,
		Text:      text,
	}
	if err := cs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetMessages returns the full history for a match in ascending creation
// order, gated the same way as SendMessage.
func (cs *ChatService) GetMessages(ctx context.Context, user *models.UserAuth, matchID string) ([]models.Message, error) {
	match, err := cs.Matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(user.UserID) {
		return nil, fmt.Errorf("reader is not part of this match: %w", ErrForbidden)
	}

	items, err := cs.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable,
		"#matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: match.MatchID},
		},
		map[string]string{"#matchId": "matchId"},
		0, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
