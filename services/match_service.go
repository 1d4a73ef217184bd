package services

import (
	"context"
	"fmt"

	"matchmaking_server/models"
	"matchmaking_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService reads match records for a user.
type MatchService struct {
	Dynamo Store
}

// GetMatchesForUser returns every match the user participates in, on either
// side.
func (ms *MatchService) GetMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userA") == userID || utils.ExtractString(item, "userB") == userID
	}, nil, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

// GetMatchByID looks a match up by its public match id.
func (ms *MatchService) GetMatchByID(ctx context.Context, matchID string) (*models.Match, error) {
	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchIDIndex,
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		}, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to look up match: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("match not found: %w", ErrNotFound)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}
