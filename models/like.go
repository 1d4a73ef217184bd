package models

// Like is a directed interest edge between two users. Repeated likes from the
// same user to the same target each get their own record.
type Like struct {
	LikeID     string `dynamodbav:"likeId" json:"likeId"`
	FromUserID string `dynamodbav:"fromUserId" json:"fromUserId"`
	ToUserID   string `dynamodbav:"toUserId" json:"toUserId"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// LikesTable is the DynamoDB table name for like edges
const LikesTable = "Likes"

// LikesFromToIndex is the GSI (fromUserId partition, toUserId sort) used to
// probe for the reverse edge when detecting a mutual like
const LikesFromToIndex = "from-to-index"
