package handler_test

import (
	"net/http"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

var challengeStart = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

func (s *HandlerTestSuite) TestCreateChallenge() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")

	// Act
	w := s.do(http.MethodPost, "/api/challenges", &u, map[string]string{"startDate": "2025-10-01"})

	// Assert
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var actual habits.Challenge
	s.data(w, &actual)
	s.Require().NotEmpty(actual.ID)
	s.Require().Equal(u.ID, actual.UserID)
	s.Require().Equal(habits.ChallengeActive, actual.Status)
	s.Require().True(challengeStart.Equal(actual.StartDate))
	s.Require().True(challengeStart.AddDate(0, 0, 30).Equal(actual.EndDate))
	s.Require().Empty(actual.Habits)

	for _, tc := range []struct {
		name string
		body any
	}{
		{"Missing", map[string]string{}},
		{"Bad-Date", map[string]string{"startDate": "10/01/2025"}},
	} {
		s.Run(tc.name, func() {
			// Act
			w := s.do(http.MethodPost, "/api/challenges", &u, tc.body)

			// Assert
			s.Require().Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestListChallenges() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	postgrestest.CreateChallenge(s.T(), s.db, other.ID, challengeStart)
	postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)

	// Act
	w := s.do(http.MethodGet, "/api/challenges", &u, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code)

	var actual []habits.Challenge
	s.data(w, &actual)
	s.Require().Len(actual, 1)
	s.Require().Equal(c.ID, actual[0].ID)
	s.Require().Len(actual[0].Habits, 1)
}

func (s *HandlerTestSuite) TestChallengeOwnership() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/challenges/" + c.ID, nil},
		{http.MethodPut, "/api/challenges/" + c.ID, map[string]string{"status": "completed"}},
		{http.MethodDelete, "/api/challenges/" + c.ID, nil},
		{http.MethodGet, "/api/challenges/" + c.ID + "/habits", nil},
		{http.MethodPost, "/api/challenges/" + c.ID + "/habits", map[string]string{"name": "Walk", "type": "binary"}},
		{http.MethodGet, "/api/challenges/" + c.ID + "/entries/2025-10-02", nil},
	} {
		s.Run(tc.method+tc.path, func() {
			// Act
			w := s.do(tc.method, tc.path, &other, tc.body)

			// Assert
			s.Require().Equal(http.StatusNotFound, w.Code, w.Body.String())
			s.Require().Equal("not found: challenge", s.errMsg(w))
		})
	}
}

func (s *HandlerTestSuite) TestUpdateChallenge() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)

	// Act
	w := s.do(http.MethodPut, "/api/challenges/"+c.ID, &u, map[string]string{"status": "abandoned"})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual habits.Challenge
	s.data(w, &actual)
	s.Require().Equal(habits.ChallengeAbandoned, actual.Status)

	// Act
	w = s.do(http.MethodPut, "/api/challenges/"+c.ID, &u, map[string]string{"status": "paused"})

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Require().Contains(w.Body.String(), "validationErrors")
}

func (s *HandlerTestSuite) TestDeleteChallenge() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	postgrestest.CreateEntry(s.T(), s.db, h.ID, challengeStart, true)

	// Act
	w := s.do(http.MethodDelete, "/api/challenges/"+c.ID, &u, nil)

	// Assert
	s.Require().Equal(http.StatusNoContent, w.Code)
	s.Require().Empty(w.Body.String())

	// Act
	w = s.do(http.MethodGet, "/api/challenges/"+c.ID, &u, nil)

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)

	// Act
	w = s.do(http.MethodGet, "/api/habits/"+h.ID, &u, nil)

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)
}
