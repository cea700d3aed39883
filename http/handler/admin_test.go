package handler_test

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (s *HandlerTestSuite) TestAdminForbidden() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")

	for _, path := range []string{"/api/admin/stats", "/api/admin/users"} {
		s.Run(path, func() {
			// Act
			w := s.do(http.MethodGet, path, &u, nil)

			// Assert
			s.Require().Equal(http.StatusForbidden, w.Code)
			s.Require().Equal("not enough permissions", s.errMsg(w))

			// Act
			w = s.do(http.MethodGet, path, nil, nil)

			// Assert
			s.Require().Equal(http.StatusUnauthorized, w.Code)
		})
	}
}

func (s *HandlerTestSuite) TestAdminStats() {
	// Arrange
	admin := postgrestest.CreateUser(s.T(), s.db, "ADMIN@habits.test")
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	c := postgrestest.CreateChallenge(s.T(), s.db, u.ID, challengeStart)
	postgrestest.CreateHabit(s.T(), s.db, c.ID, "Walk", 0)
	postgrestest.CreateHabit(s.T(), s.db, c.ID, "Swim", 1)

	// Act
	w := s.do(http.MethodGet, "/api/admin/stats", &admin, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual struct {
		TotalUsers  int           `json:"totalUsers"`
		TotalHabits int           `json:"totalHabits"`
		Users       []habits.User `json:"users"`
	}
	s.data(w, &actual)
	s.Require().Equal(2, actual.TotalUsers)
	s.Require().Equal(2, actual.TotalHabits)
	s.Require().Len(actual.Users, 2)
}

func (s *HandlerTestSuite) TestAdminUsers() {
	// Arrange
	admin := postgrestest.CreateUser(s.T(), s.db, adminEmail)
	postgrestest.CreateUser(s.T(), s.db, "a@x.com")
	postgrestest.CreateUser(s.T(), s.db, "b@x.com")

	// Act
	w := s.do(http.MethodGet, "/api/admin/users?page=2&perPage=2", &admin, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual struct {
		Items      []habits.User `json:"items"`
		Page       int64         `json:"page"`
		PerPage    int64         `json:"perPage"`
		TotalItems int64         `json:"totalItems"`
		TotalPages int64         `json:"totalPages"`
	}
	s.data(w, &actual)
	s.Require().Len(actual.Items, 1)
	s.Require().EqualValues(2, actual.Page)
	s.Require().EqualValues(2, actual.PerPage)
	s.Require().EqualValues(3, actual.TotalItems)
	s.Require().EqualValues(2, actual.TotalPages)

	// Act
	w = s.do(http.MethodGet, "/api/admin/users?perPage=500", &admin, nil)

	// Assert
	s.Require().Equal(http.StatusBadRequest, w.Code)
}
