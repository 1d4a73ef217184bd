package services

import (
	"context"
	"testing"
	"time"

	"matchmaking_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProfile(t *testing.T, store *fakeStore, user *models.UserAuth, profile models.Profile) {
	t.Helper()
	profile.UserID = user.UserID
	if profile.FullName == "" {
		profile.FullName = user.Email
	}
	if profile.Gender == "" {
		profile.Gender = "female"
	}
	if profile.BirthDate == "" {
		profile.BirthDate = "1995-06-15"
	}
	require.NoError(t, store.PutItem(context.Background(), models.ProfilesTable, profile))
}

func intPtr(v int) *int { return &v }

func cardUserIDs(cards []models.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.UserID)
	}
	return ids
}

func TestSearchNoFiltersReturnsAll(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	alice := seedUser(t, store, "alice@example.com", true, false)
	bob := seedUser(t, store, "bob@example.com", true, false)
	seedProfile(t, store, alice, models.Profile{FullName: "Alice", City: "Jakarta"})
	seedProfile(t, store, bob, models.Profile{FullName: "Bob", City: "Bandung"})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestSearchAgeMaxBoundary(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	now := time.Now()

	// Born exactly 30 years ago today: still within age_max=30.
	exact := seedUser(t, store, "exact@example.com", true, false)
	seedProfile(t, store, exact, models.Profile{
		BirthDate: now.AddDate(-30, 0, 0).Format("2006-01-02"),
	})
	// Born one day earlier: just over the line.
	older := seedUser(t, store, "older@example.com", true, false)
	seedProfile(t, store, older, models.Profile{
		BirthDate: now.AddDate(-30, 0, -1).Format("2006-01-02"),
	})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{AgeMax: intPtr(30)})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, exact.UserID, cards[0].UserID)
}

func TestSearchAgeMinExcludesYounger(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	now := time.Now()

	young := seedUser(t, store, "young@example.com", true, false)
	seedProfile(t, store, young, models.Profile{
		BirthDate: now.AddDate(-20, 0, 0).Format("2006-01-02"),
	})
	old := seedUser(t, store, "old@example.com", true, false)
	seedProfile(t, store, old, models.Profile{
		BirthDate: now.AddDate(-40, 0, 0).Format("2006-01-02"),
	})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{AgeMin: intPtr(25)})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, old.UserID, cards[0].UserID)
}

func TestSearchCityPrefixCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	alice := seedUser(t, store, "alice@example.com", true, false)
	bob := seedUser(t, store, "bob@example.com", true, false)
	seedProfile(t, store, alice, models.Profile{City: "Jakarta Selatan"})
	seedProfile(t, store, bob, models.Profile{City: "Bandung"})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{City: "jAkArTa"})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, alice.UserID, cards[0].UserID)
}

func TestSearchEqualityFilters(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	alice := seedUser(t, store, "alice@example.com", true, false)
	bob := seedUser(t, store, "bob@example.com", true, false)
	carol := seedUser(t, store, "carol@example.com", true, false)
	seedProfile(t, store, alice, models.Profile{Religion: "islam", EducationLevel: "s1"})
	seedProfile(t, store, bob, models.Profile{Religion: "islam", EducationLevel: "s2"})
	seedProfile(t, store, carol, models.Profile{Religion: "catholic", EducationLevel: "s1"})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{Religion: "islam"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alice.UserID, bob.UserID}, cardUserIDs(cards))

	cards, err = search.SearchProfiles(context.Background(), SearchFilters{
		Religion:       "islam",
		EducationLevel: "s1",
	})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, alice.UserID, cards[0].UserID)
}

func TestSearchVerifiedOnly(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	verified := seedUser(t, store, "verified@example.com", true, true)
	unverified := seedUser(t, store, "plain@example.com", true, false)
	seedProfile(t, store, verified, models.Profile{FullName: "Vera"})
	seedProfile(t, store, unverified, models.Profile{FullName: "Paul"})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{VerifiedOnly: true})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, verified.UserID, cards[0].UserID)
	assert.True(t, cards[0].Verified)
}

func TestSearchCardShape(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}
	alice := seedUser(t, store, "alice@example.com", true, true)
	seedProfile(t, store, alice, models.Profile{
		FullName:  "Alice",
		BirthDate: time.Now().AddDate(-28, -1, 0).Format("2006-01-02"),
		City:      "Jakarta",
		Religion:  "islam",
		PhotoURL:  "https://example.com/alice.jpg",
	})

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, "Alice", card.Name)
	assert.Equal(t, "Jakarta", card.City)
	assert.Equal(t, "islam", card.Religion)
	assert.Equal(t, "https://example.com/alice.jpg", card.PhotoURL)
	assert.Equal(t, alice.UserID, card.UserID)
	assert.True(t, card.Verified)
	assert.Equal(t, 28, card.Age)
}

func TestSearchEmptyResultIsNotNil(t *testing.T) {
	store := newFakeStore()
	search := &SearchService{Dynamo: store}

	cards, err := search.SearchProfiles(context.Background(), SearchFilters{City: "nowhere"})
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestBirthCutoffKeepsMonthAndDay(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "1996-03-14", birthCutoff(now, 30))
	assert.Equal(t, "2026-03-14", birthCutoff(now, 0))
	assert.Equal(t, "2026-03-14", birthCutoff(now, -5))
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, ageFromBirthDate("not-a-date", now))
	assert.Equal(t, 0, ageFromBirthDate("2026-01-01", now))
	assert.Equal(t, 25, ageFromBirthDate("2000-06-15", now))
}
