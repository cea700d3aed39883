package handler_test

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (s *HandlerTestSuite) TestCreateHabit() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	path := "/api/challenges/" + c.ID + "/habits"

	// Act
	w := s.do(http.MethodPost, path, &u, map[string]any{
		"name":        "Push-ups",
		"type":        "counted",
		"targetCount": 20,
	})

	// Assert
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var actual habits.Habit
	s.data(w, &actual)
	s.Require().Equal(c.ID, actual.ChallengeID)
	s.Require().Equal(habits.HabitCounted, actual.Type)
	s.Require().Equal(20, *actual.TargetCount)
	s.Require().True(actual.IsActive)
	s.Require().Zero(actual.Order)

	// Act
	w = s.do(http.MethodPost, path, &u, map[string]any{"name": "No Alcohol", "type": "binary", "templateId": "no_alcohol"})

	// Assert
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	s.data(w, &actual)
	tmpl, err := habits.TemplateByID("no_alcohol")
	s.Require().Nil(err)
	s.Require().Equal(tmpl.Icon, *actual.Icon)
	s.Require().Equal(1, actual.Order)

	for _, tc := range []struct {
		name string
		body any
	}{
		{"Missing-Name", map[string]any{"type": "binary"}},
		{"Bad-Type", map[string]any{"name": "Walk", "type": "sometimes"}},
		{"Zero-Target", map[string]any{"name": "Walk", "type": "counted", "targetCount": 0}},
		{"Negative-Order", map[string]any{"name": "Walk", "type": "binary", "order": -1}},
	} {
		s.Run(tc.name, func() {
			// Act
			w := s.do(http.MethodPost, path, &u, tc.body)

			// Assert
			s.Require().Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (s *HandlerTestSuite) TestCreateHabitLimit() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	for i := 0; i < habits.MaxActiveHabits; i++ {
		postgrestest.CreateHabit(s.T(), s.db, c.ID, fmt.Sprint("habit ", i), i)
	}

	// Act
	w := s.do(http.MethodPost, "/api/challenges/"+c.ID+"/habits", &u, map[string]any{"name": "One more", "type": "binary"})

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Require().Equal(habits.ErrHabitLimit.Error(), s.errMsg(w))
}

func (s *HandlerTestSuite) TestListHabits() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	second := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Second", 1)
	first := postgrestest.CreateHabit(s.T(), s.db, c.ID, "First", 0)

	// Act
	w := s.do(http.MethodGet, "/api/challenges/"+c.ID+"/habits", &u, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code)

	var actual []habits.Habit
	s.data(w, &actual)
	s.Require().Len(actual, 2)
	s.Require().Equal(first.ID, actual[0].ID)
	s.Require().Equal(second.ID, actual[1].ID)
}

func (s *HandlerTestSuite) TestUpdateHabit() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	path := "/api/habits/" + h.ID

	// Act
	w := s.do(http.MethodPut, path, &u, map[string]any{"name": "Run", "type": "counted", "targetCount": 5})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual habits.Habit
	s.data(w, &actual)
	s.Require().Equal("Run", actual.Name)
	s.Require().Equal(habits.HabitCounted, actual.Type)
	s.Require().Equal(5, *actual.TargetCount)

	// Act
	w = s.do(http.MethodPut, path, &u, map[string]any{})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code)
	s.data(w, &actual)
	s.Require().Equal("Run", actual.Name)

	// Act
	w = s.do(http.MethodPut, path, &u, map[string]any{"type": "sometimes"})

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)

	// Act
	w = s.do(http.MethodPut, path, &other, map[string]any{"name": "Mine"})

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)
	s.Require().Equal("not found: habit", s.errMsg(w))
}

func (s *HandlerTestSuite) TestArchiveHabit() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	other := postgrestest.CreateUser(s.T(), s.db, "b@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	h := postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)

	// Act
	w := s.do(http.MethodDelete, "/api/habits/"+h.ID, &other, nil)

	// Assert
	s.Require().Equal(http.StatusNotFound, w.Code)

	// Act
	w = s.do(http.MethodDelete, "/api/habits/"+h.ID, &u, nil)

	// Assert
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/habits/"+h.ID, &u, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var actual habits.Habit
	s.data(w, &actual)
	s.Require().False(actual.IsActive)
}
