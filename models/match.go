package models

// Match is the undirected relationship formed by mutual likes. The table is
// keyed by PairKey so a conditional put can guarantee at most one match per
// unordered user pair.
type Match struct {
	PairKey   string `dynamodbav:"pairKey" json:"-"`
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserA     string `dynamodbav:"userA" json:"userA"`
	UserB     string `dynamodbav:"userB" json:"userB"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Involves reports whether the given user is one of the two participants.
func (m Match) Involves(userID string) bool {
	return m.UserA == userID || m.UserB == userID
}

// PairKey builds the canonical key for an unordered user pair: the two ids
// sorted lexicographically and joined with '#'.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"

// MatchIDIndex is the GSI used to look a match up by its matchId
const MatchIDIndex = "matchId-index"
