package integration_test

import "time"

const (
	// users created for every suite
	TestCustomerUsername = "alice"
	TestCustomerEmail    = "alice@example.com"
	TestOtherUsername    = "bob"
	TestAdminUsername    = "admin"
	TestUserPassword     = "Test123!@#"

	// catalogue seeded before every test
	TestMovieId          = 1
	TestMovieTitle       = "Test Movie"
	TestMovieDirector    = "Jane Doe"
	TestMovieReleaseYear = 2024
	TestMovieGenre       = "Drama"
	TestMovieRating      = "7.5"
	TestMoviePosterUrl   = "https://example.com/poster.jpg"
	TestTheatreId        = 1
	TestTheatreName      = "Grand Hall"
	TestUpcomingShowId   = 1
	TestPastShowId       = 2
	TestTotalSeats       = 40
	TestTicketPrice      = 200
)

var (
	TestUpcomingStart = time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	TestPastStart     = time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second)
)
