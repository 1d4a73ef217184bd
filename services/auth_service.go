package services

import (
	"context"
	"fmt"
	"strings"

	"matchmaking_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// AuthService issues sessions through the mock checkout flow and resolves
// bearer tokens to UserAuth records.
type AuthService struct {
	Dynamo Store
}

// CheckoutSession is the response of the mock payment flow. The checkout URL
// points at the success page a real payment provider would redirect to.
type CheckoutSession struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
}

// CreateCheckoutSession creates an unpaid UserAuth record with a fresh bearer
// token and a mock checkout session
func (as *AuthService) CreateCheckoutSession(ctx context.Context, email string) (*CheckoutSession, error) {
	user := models.UserAuth{
		UserID:          uuid.NewString(),
		Email:           email,
		StripeSessionID: newOpaqueID(),
		Paid:            false,
		Token:           newOpaqueID(),
		Verified:        false,
	}

	if err := as.Dynamo.PutItem(ctx, models.UserAuthTable, user); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{
		CheckoutURL: "/pay/success?session_id=" + user.StripeSessionID,
		SessionID:   user.StripeSessionID,
	}, nil
}

// ConfirmPayment marks the session's UserAuth record as paid and hands back
// the bearer token for subsequent calls
func (as *AuthService) ConfirmPayment(ctx context.Context, sessionID string) (string, error) {
	items, err := as.Dynamo.QueryItemsWithIndex(ctx, models.UserAuthTable, models.SessionIndex,
		"stripeSessionId = :stripeSessionId",
		map[string]types.AttributeValue{
			":stripeSessionId": &types.AttributeValueMemberS{Value: sessionID},
		}, nil, 1)
	if err != nil {
		return "", fmt.Errorf("failed to look up checkout session: %w", err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("checkout session not found: %w", ErrNotFound)
	}

	var user models.UserAuth
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return "", fmt.Errorf("failed to unmarshal auth record: %w", err)
	}

	_, err = as.Dynamo.UpdateItem(ctx, models.UserAuthTable, "SET #paid = :paid",
		map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: user.UserID},
		},
		map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{"#paid": "paid"})
	if err != nil {
		return "", fmt.Errorf("failed to mark session as paid: %w", err)
	}

	return user.Token, nil
}

// ResolveToken maps a bearer token to its UserAuth record. A missing or
// unknown token is ErrUnauthorized; there are no side effects.
func (as *AuthService) ResolveToken(ctx context.Context, token string) (*models.UserAuth, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", ErrUnauthorized)
	}

	items, err := as.Dynamo.QueryItemsWithIndex(ctx, models.UserAuthTable, models.TokenIndex,
		"#token = :token",
		map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		map[string]string{"#token": "token"}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}

	var user models.UserAuth
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth record: %w", err)
	}
	return &user, nil
}

// newOpaqueID returns a dashless uuid, matching the hex tokens the original
// checkout flow hands out.
func newOpaqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
