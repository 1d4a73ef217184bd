package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"matchmaking_server/models"
	"matchmaking_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SearchService applies declarative filters over the profile set and builds
// public-safe result cards.
type SearchService struct {
	Dynamo Store
}

// SearchFilters are all optional. Equality filters go straight into the scan;
// city prefix and the age window are evaluated client-side.
type SearchFilters struct {
	AgeMin         *int
	AgeMax         *int
	City           string
	Religion       string
	ReligionLevel  string
	EducationLevel string
	Occupation     string
	IncomeRange    string
	Diet           string
	VerifiedOnly   bool
}

// SearchProfiles returns cards for every profile matching the filters, in
// storage order. No pagination, no ranking.
func (ss *SearchService) SearchProfiles(ctx context.Context, filters SearchFilters) ([]models.Card, error) {
	matchFields := map[string]string{}
	if filters.Religion != "" {
		matchFields["religion"] = filters.Religion
	}
	if filters.ReligionLevel != "" {
		matchFields["religionLevel"] = filters.ReligionLevel
	}
	if filters.EducationLevel != "" {
		matchFields["educationLevel"] = filters.EducationLevel
	}
	if filters.Occupation != "" {
		matchFields["occupation"] = filters.Occupation
	}
	if filters.IncomeRange != "" {
		matchFields["incomeRange"] = filters.IncomeRange
	}
	if filters.Diet != "" {
		matchFields["diet"] = filters.Diet
	}

	now := time.Now()
	// Cutoff birth dates keep month and day: someone born exactly ageMax
	// years ago today still qualifies.
	var latestBirth, earliestBirth string
	if filters.AgeMin != nil {
		latestBirth = birthCutoff(now, *filters.AgeMin)
	}
	if filters.AgeMax != nil {
		earliestBirth = birthCutoff(now, *filters.AgeMax)
	}

	cityPrefix := strings.ToLower(filters.City)

	var profiles []models.Profile
	err := ss.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		if cityPrefix != "" {
			city := strings.ToLower(utils.ExtractString(item, "city"))
			if !strings.HasPrefix(city, cityPrefix) {
				return false
			}
		}
		// ISO dates compare lexicographically
		birthDate := utils.ExtractString(item, "birthDate")
		if latestBirth != "" && birthDate > latestBirth {
			return false
		}
		if earliestBirth != "" && birthDate < earliestBirth {
			return false
		}
		return true
	}, matchFields, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	cards := []models.Card{}
	for _, profile := range profiles {
		verified, err := ss.isVerified(ctx, profile.UserID)
		if err != nil {
			return nil, err
		}
		if filters.VerifiedOnly && !verified {
			continue
		}

		cards = append(cards, models.Card{
			Name:           profile.FullName,
			Age:            ageFromBirthDate(profile.BirthDate, now),
			City:           profile.City,
			PhotoURL:       profile.PhotoURL,
			Religion:       profile.Religion,
			ReligionLevel:  profile.ReligionLevel,
			Occupation:     profile.Occupation,
			EducationLevel: profile.EducationLevel,
			UserID:         profile.UserID,
			Verified:       verified,
		})
	}
	return cards, nil
}

func (ss *SearchService) isVerified(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	item, err := ss.Dynamo.GetItem(ctx, models.UserAuthTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return false, fmt.Errorf("failed to resolve verified flag: %w", err)
	}
	if item == nil {
		return false, nil
	}
	return utils.ExtractBool(item, "verified"), nil
}

// birthCutoff computes today's date moved back by age years, as an ISO date.
func birthCutoff(now time.Time, age int) string {
	if age < 0 {
		age = 0
	}
	return time.Date(now.Year()-age, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// ageFromBirthDate floors elapsed days over the mean year length.
func ageFromBirthDate(birthDate string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	days := now.Sub(born).Hours() / 24
	return int(days / 365.25)
}
