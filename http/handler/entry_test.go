package handler_test

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (s *HandlerTestSuite) TestUpsertEntry() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	path := "/api/habits/" + h.ID + "/entries"

	// Act
	w := s.do(http.MethodPost, path, &u, map[string]any{"date": "2025-10-02T18:30:00Z", "completed": true})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var first habits.DailyEntry
	s.data(w, &first)
	s.Require().True(first.Completed)
	s.Require().True(challengeStart.AddDate(0, 0, 1).Equal(first.Date))

	// Act
	w = s.do(http.MethodPost, path, &u, map[string]any{"date": "2025-10-02", "completed": false, "count": 3})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var second habits.DailyEntry
	s.data(w, &second)
	s.Require().Equal(first.ID, second.ID)
	s.Require().False(second.Completed)
	s.Require().Equal(3, *second.Count)
}

func (s *HandlerTestSuite) TestUpsertEntryRules() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	path := "/api/habits/" + h.ID + "/entries"

	for _, tc := range []struct {
		name     string
		user     habits.User
		body     any
		expected int
		msg      string
	}{
		{"Future", u, map[string]any{"date": "2025-10-16"}, http.StatusBadRequest, habits.ErrFutureEntry.Error()},
		{"Before-Start", u, map[string]any{"date": "2025-09-30"}, http.StatusBadRequest, habits.ErrEntryBeforeStart.Error()},
		{"Bad-Date", u, map[string]any{"date": "yesterday"}, http.StatusBadRequest, ""},
		{"Negative-Count", u, map[string]any{"date": "2025-10-02", "count": -1}, http.StatusBadRequest, "invalid request"},
		{"Other-User", other, map[string]any{"date": "2025-10-02"}, http.StatusNotFound, "not found: habit"},
	} {
		s.Run(tc.name, func() {
			// Act
			w := s.do(http.MethodPost, path, &tc.user, tc.body)

			// Assert
			s.Require().Equal(tc.expected, w.Code, w.Body.String())
			if tc.msg != "" {
				s.Require().Equal(tc.msg, s.errMsg(w))
			}
		})
	}
}

func (s *HandlerTestSuite) TestListEntries() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	for i := 0; i < 5; i++ {
		postgrestest.CreateEntry(s.T(), s.db, h.ID, challengeStart.AddDate(0, 0, i), true)
	}

	for _, tc := range []struct {
		name     string
		query    string
		expected int
	}{
		{"Unbounded", "", 5},
		{"Start", "?startDate=2025-10-03", 3},
		{"End", "?endDate=2025-10-02", 2},
		{"Between", "?startDate=2025-10-02&endDate=2025-10-03", 2},
	} {
		s.Run(tc.name, func() {
			// Act
			w := s.do(http.MethodGet, "/api/habits/"+h.ID+"/entries"+tc.query, &u, nil)

			// Assert
			s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

			var actual []habits.DailyEntry
			s.data(w, &actual)
			s.Require().Len(actual, tc.expected)
			for i := 1; i < len(actual); i++ {
				s.Require().True(actual[i-1].Date.After(actual[i].Date))
			}
		})
	}

	// Act
	w := s.do(http.MethodGet, "/api/habits/"+h.ID+"/entries?startDate=soon", &u, nil)

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListChallengeEntries() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	active := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	archived := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Swim", 1)
	s.Require().Nil(s.db.Model(&archived).Update(map[string]any{"is_active": false}))

	day := challengeStart.AddDate(0, 0, 1)
	e := postgrestest.CreateEntry(s.T(), s.db, active.ID, day, true)
	postgrestest.CreateEntry(s.T(), s.db, archived.ID, day, true)
	postgrestest.CreateEntry(s.T(), s.db, active.ID, challengeStart, true)

	// Act
	w := s.do(http.MethodGet, "/api/challenges/"+c.ID+"/entries/2025-10-02", &u, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual []habits.DailyEntry
	s.data(w, &actual)
	s.Require().Len(actual, 1)
	s.Require().Equal(e.ID, actual[0].ID)

	// Act
	w = s.do(http.MethodGet, "/api/challenges/"+c.ID+"/entries/tomorrow", &u, nil)

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdateAndDeleteEntry() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	e := postgrestest.CreateEntry(s.T(), s.db, h.ID, challengeStart, false)
	path := "/api/entries/" + e.ID

	// Act
	w := s.do(http.MethodPut, path, &u, map[string]any{"completed": true})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual habits.DailyEntry
	s.data(w, &actual)
	s.Require().True(actual.Completed)
	s.Require().Nil(actual.Count)

	// Act
	w = s.do(http.MethodPut, path, &other, map[string]any{"completed": false})

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.Require().Equal("not found: entry", s.errMsg(w))

	// Act
	w = s.do(http.MethodDelete, path, &other, nil)

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)

	// Act
	w = s.do(http.MethodDelete, path, &u, nil)

	// Assert
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, path, &u, nil)
	s.Require().Equal(http.StatusNotFound, w.Code)
}
