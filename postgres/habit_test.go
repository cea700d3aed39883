package postgres_test

import (
	"context"
	"fmt"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (suite *DBTestSuite) TestHabitStoreCreate() {
	// Arrange
	store := postgres.NewHabitStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	target := 20

	// Act
	err := store.Create(ctx, other.ID, &habits.Habit{ChallengeID: c.ID, Name: "read", Type: habits.HabitBinary})

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)

	// Arrange
	first := habits.Habit{ChallengeID: c.ID, Name: "read", Type: habits.HabitBinary}
	second := habits.Habit{ChallengeID: c.ID, Name: "pushups", Type: habits.HabitCounted, TargetCount: &target}

	// Act
	suite.Require().Nil(store.Create(ctx, owner.ID, &first))
	suite.Require().Nil(store.Create(ctx, owner.ID, &second))

	// Assert
	suite.Require().Len(first.ID, 36)
	suite.Require().True(first.IsActive)
	suite.Require().Equal(0, first.Order)
	suite.Require().Equal(1, second.Order)
	suite.Require().Equal(target, *second.TargetCount)
}

func (suite *DBTestSuite) TestHabitStoreCreateLimit() {
	// Arrange
	store := postgres.NewHabitStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	for i := 0; i < habits.MaxActiveHabits; i++ {
		h := habits.Habit{ChallengeID: c.ID, Name: fmt.Sprintf("habit-%d", i), Type: habits.HabitBinary}
		suite.Require().Nil(store.Create(ctx, owner.ID, &h))
	}

	// Act
	err := store.Create(ctx, owner.ID, &habits.Habit{ChallengeID: c.ID, Name: "one more", Type: habits.HabitBinary})

	// Assert
	suite.Require().ErrorIs(err, habits.ErrHabitLimit)
	suite.Require().ErrorIs(err, habits.ErrNotValid)

	count, err := store.Count(ctx)
	suite.Require().Nil(err)
	suite.Require().Equal(int64(habits.MaxActiveHabits), count)

	// Arrange
	list, err := store.ListForChallenge(ctx, owner.ID, c.ID)
	suite.Require().Nil(err)
	suite.Require().Nil(store.Archive(ctx, owner.ID, list[0].ID))

	// Act
	err = store.Create(ctx, owner.ID, &habits.Habit{ChallengeID: c.ID, Name: "one more", Type: habits.HabitBinary})

	// Assert
	suite.Require().Nil(err)
}

func (suite *DBTestSuite) TestHabitStoreListForChallenge() {
	// Arrange
	store := postgres.NewHabitStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)

	// Act
	actual, err := store.ListForChallenge(ctx, owner.ID, c.ID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Empty(actual)

	// Arrange
	last := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "last", 2)
	archived := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "archived", 1)
	first := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "first", 0)
	suite.Require().Nil(store.Archive(ctx, owner.ID, archived.ID))

	// Act
	actual, err = store.ListForChallenge(ctx, owner.ID, c.ID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 3)
	suite.Require().Equal(first.ID, actual[0].ID)
	suite.Require().Equal(archived.ID, actual[1].ID)
	suite.Require().False(actual[1].IsActive)
	suite.Require().Equal(last.ID, actual[2].ID)

	// Act
	_, err = store.ListForChallenge(ctx, other.ID, c.ID)

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestHabitStoreUpdate() {
	// Arrange
	store := postgres.NewHabitStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	h := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	name := "read 20 pages"
	icon := "book"
	var noTime *string

	tcs := []struct {
		name    string
		userID  string
		updates postgres.Updates
		check   func(habits.Habit)
		err     error
	}{
		{
			"other-user",
			other.ID,
			postgres.Updates{"name": &name},
			nil,
			habits.ErrNotFound,
		},
		{
			"partial",
			owner.ID,
			postgres.Updates{"name": &name, "icon": &icon, "preferred_time": noTime},
			func(actual habits.Habit) {
				suite.Require().Equal(name, actual.Name)
				suite.Require().Equal(icon, *actual.Icon)
				suite.Require().Nil(actual.PreferredTime)
				suite.Require().Equal(habits.HabitBinary, actual.Type)
			},
			nil,
		},
		{
			"nothing-set",
			owner.ID,
			postgres.Updates{"name": noTime, "type": habits.HabitType("")},
			func(actual habits.Habit) {
				suite.Require().Equal(name, actual.Name)
				suite.Require().Equal(habits.HabitBinary, actual.Type)
			},
			nil,
		},
		{
			"type",
			owner.ID,
			postgres.Updates{"type": habits.HabitCounted},
			func(actual habits.Habit) { suite.Require().Equal(habits.HabitCounted, actual.Type) },
			nil,
		},
	}

	for _, tc := range tcs {
		suite.Run(tc.name, func() {
			// Act
			actual, err := store.Update(ctx, tc.userID, h.ID, tc.updates)

			// Assert
			if tc.err != nil {
				suite.Require().ErrorIs(err, tc.err)
				return
			}

			suite.Require().Nil(err)
			tc.check(actual)
		})
	}
}

func (suite *DBTestSuite) TestHabitStoreArchive() {
	// Arrange
	store := postgres.NewHabitStore(suite.db)
	ctx := context.Background()
	owner := postgrestest.CreateUser(suite.T(), suite.db, "owner@x.com")
	other := postgrestest.CreateUser(suite.T(), suite.db, "other@x.com")
	c := postgrestest.CreateChallenge(suite.T(), suite.db, owner.ID, start)
	h := postgrestest.CreateHabit(suite.T(), suite.db, c.ID, "read", 0)
	e := postgrestest.CreateEntry(suite.T(), suite.db, h.ID, start, true)

	// Act
	err := store.Archive(ctx, other.ID, h.ID)

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)

	// Act
	err = store.Archive(ctx, owner.ID, h.ID)

	// Assert
	suite.Require().Nil(err)
	actual, err := store.FindForUser(ctx, owner.ID, h.ID)
	suite.Require().Nil(err)
	suite.Require().False(actual.IsActive)

	var entry habits.DailyEntry
	suite.Require().Nil(suite.db.Where("id = ?", e.ID).First(&entry))
}
