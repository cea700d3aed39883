package handler_test

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (s *HandlerTestSuite) TestProfile() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")

	// Act
	w := s.do(http.MethodGet, "/api/users/profile", &u, nil)

	// Assert
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Equal("no-store", w.Header().Get("Cache-Control"))

	var actual habits.User
	s.data(w, &actual)
	s.Require().Equal(u.ID, actual.ID)
	s.Require().Equal(u.Email, actual.Email)
	s.Require().NotContains(w.Body.String(), u.GoogleID)
}

func (s *HandlerTestSuite) TestUpdateProfile() {
	// Arrange
	u := postgrestest.CreateUser(s.T(), s.db, "a@x.com")

	// Act
	w := s.do(http.MethodPut, "/api/users/profile", &u, map[string]string{"name": "  Ada  "})

	// Assert
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var actual habits.User
	s.data(w, &actual)
	s.Require().Equal("Ada", actual.Name)

	for _, tc := range []struct {
		name string
		body any
	}{
		{"Empty", map[string]string{"name": ""}},
		{"Missing", map[string]string{}},
		{"Too-Long", map[string]string{"name": string(make([]byte, 256))}},
	} {
		s.Run(tc.name, func() {
			// Act
			w := s.do(http.MethodPut, "/api/users/profile", &u, tc.body)

			// Assert
			s.Require().Equal(http.StatusBadRequest, w.Code)
			s.Require().Equal("invalid request", s.errMsg(w))
		})
	}
}
