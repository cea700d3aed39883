package postgres_test

import (
	"context"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (suite *DBTestSuite) TestEntryStoreUpsert() {
	// Arrange
	store := postgres.NewEntryStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	h := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	first := habits.DailyEntry{HabitID: h.ID, Date: start.Add(9 * time.Hour), Completed: false}

	// Act
	err := store.Upsert(ctx, &first)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(first.ID, 36)
	suite.Require().True(start.Equal(first.Date))

	// Arrange
	count := 3
	again := habits.DailyEntry{HabitID: h.ID, Date: start.Add(21 * time.Hour), Completed: true, Count: &count}

	// Act
	err = store.Upsert(ctx, &again)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(first.ID, again.ID)
	suite.Require().True(again.Completed)
	suite.Require().Equal(count, *again.Count)

	actual, err := store.ListForHabit(ctx, owner.ID, h.ID, time.Time{}, time.Time{})
	suite.Require().Nil(err)
	suite.Require().Len(actual, 1)
	suite.Require().True(actual[0].Completed)
}

func (suite *DBTestSuite) TestEntryStoreListForHabit() {
	// Arrange
	store := postgres.NewEntryStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	h := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	day1 := postgrestest.CreateEntry(suite.T(), suite.db, h.ID, start, true)
	day2 := postgrestest.CreateEntry(suite.T(), suite.db, h.ID, start.AddDate(0, 0, 1), false)
	day3 := postgrestest.CreateEntry(suite.T(), suite.db, h.ID, start.AddDate(0, 0, 2), true)

	tcs := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{"unbounded", time.Time{}, time.Time{}, []string{day3.ID, day2.ID, day1.ID}},
		{"from", start.AddDate(0, 0, 1), time.Time{}, []string{day3.ID, day2.ID}},
		{"until", time.Time{}, start.AddDate(0, 0, 1).Add(12 * time.Hour), []string{day2.ID, day1.ID}},
		{"between", start.AddDate(0, 0, 1), start.AddDate(0, 0, 1), []string{day2.ID}},
		{"outside", start.AddDate(0, 1, 0), time.Time{}, []string{}},
	}

	for _, tc := range tcs {
		suite.Run(tc.name, func() {
			// Act
			actual, err := store.ListForHabit(ctx, owner.ID, h.ID, tc.start, tc.end)

			// Assert
			suite.Require().Nil(err)
			ids := make([]string, 0, len(actual))
			for _, e := range actual {
				ids = append(ids, e.ID)
			}
			suite.Require().Equal(tc.want, ids)
		})
	}

	// Act
	_, err := store.ListForHabit(ctx, other.ID, h.ID, time.Time{}, time.Time{})

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestEntryStoreListForChallengeDate() {
	// Arrange
	store := postgres.NewEntryStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	read := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	run := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "run", 1)
	archived := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "archived", 2)
	want := postgrestest.CreateEntry(suite.T(), suite.db, read.ID, start, true)
	_ = postgrestest.CreateEntry(suite.T(), suite.db, run.ID, start.AddDate(0, 0, 1), true)
	_ = postgrestest.CreateEntry(suite.T(), suite.db, archived.ID, start, true)
	suite.Require().Nil(postgres.NewHabitStore(suite.db).Archive(ctx, owner.ID, archived.ID))

	// Act
	actual, err := store.ListForChallengeDate(ctx, owner.ID, c.ID, start.Add(15*time.Hour))

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 1)
	suite.Require().Equal(want.ID, actual[0].ID)

	// Act
	actual, err = store.ListForChallengeDate(ctx, owner.ID, c.ID, start.AddDate(0, 0, 5))

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Empty(actual)

	// Act
	_, err = store.ListForChallengeDate(ctx, other.ID, c.ID, start)

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestEntryStoreUpdateAndDelete() {
	// Arrange
	store := postgres.NewEntryStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	h := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	e := postgrestest.CreateEntry(suite.T(), suite.db, h.ID, start, false)
	completed := true
	count := 2

	// Act
	_, err := store.Update(ctx, other.ID, e.ID, postgres.Updates{"completed": &completed})

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)

	// Act
	actual, err := store.Update(ctx, owner.ID, e.ID, postgres.Updates{"completed": &completed, "count": &count})

	// Assert
	suite.Require().Nil(err)
	suite.Require().True(actual.Completed)
	suite.Require().Equal(count, *actual.Count)
	suite.Require().True(start.Equal(actual.Date))

	// Act
	err = store.DeleteForUser(ctx, other.ID, e.ID)

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)

	// Act
	err = store.DeleteForUser(ctx, owner.ID, e.ID)

	// Assert
	suite.Require().Nil(err)
	_, err = store.FindForUser(ctx, owner.ID, e.ID)
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}
