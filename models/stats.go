package models

// Stats is the admin aggregate snapshot. ActiveUsers counts distinct users
// that have sent at least one message.
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalMatches  int `json:"totalMatches"`
	VerifiedUsers int `json:"verifiedUsers"`
	ActiveUsers   int `json:"activeUsers"`
}
