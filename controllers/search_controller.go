package controllers

import (
	"log"
	"net/http"
	"strconv"

	"matchmaking_server/helpers"
	"matchmaking_server/services"
)

// SearchController handles the profile search endpoint
type SearchController struct {
	AuthService   *services.AuthService
	SearchService *services.SearchService
}

// NewSearchController creates a new SearchController instance
func NewSearchController(authService *services.AuthService, searchService *services.SearchService) *SearchController {
	return &SearchController{AuthService: authService, SearchService: searchService}
}

// HandleSearch runs the filter set from the query string and returns cards
func (sc *SearchController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	_, err := sc.AuthService.ResolveToken(r.Context(), query.Get("token"))
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}

	filters := services.SearchFilters{
		City:           query.Get("city"),
		Religion:       query.Get("religion"),
		ReligionLevel:  query.Get("religion_level"),
		EducationLevel: query.Get("education_level"),
		Occupation:     query.Get("occupation"),
		IncomeRange:    query.Get("income_range"),
		Diet:           query.Get("diet"),
		VerifiedOnly:   query.Get("verified_only") == "true",
	}
	if raw := query.Get("age_min"); raw != "" {
		if ageMin, err := strconv.Atoi(raw); err == nil {
			filters.AgeMin = &ageMin
		}
	}
	if raw := query.Get("age_max"); raw != "" {
		if ageMax, err := strconv.Atoi(raw); err == nil {
			filters.AgeMax = &ageMax
		}
	}

	cards, err := sc.SearchService.SearchProfiles(r.Context(), filters)
	if err != nil {
		log.Printf("Error searching profiles: %v", err)
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"results": cards})
}
