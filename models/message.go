package models

// Message is one chat message inside a match. CreatedAt doubles as the sort
// key, so history queries come back in send order.
type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Text      string `dynamodbav:"text" json:"text"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
