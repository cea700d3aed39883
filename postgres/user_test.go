package postgres_test

import (
	"context"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres"
	"github.com/xy-planning-network/habits/postgres/postgrestest"
)

func (suite *DBTestSuite) TestUserStoreUpsertFromGoogle() {
	// Arrange
	store := postgres.NewUserStore(suite.db)
	ctx := context.Background()
	pic := "https://example.com/a.png"

	// Act
	created, err := store.UpsertFromGoogle(ctx, habits.User{
		Email:    "a@x.com",
		Name:     "Ada",
		Picture:  &pic,
		GoogleID: "g-1",
	})

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(created.ID, 36)
	suite.Require().Equal("a@x.com", created.Email)
	suite.Require().Equal(pic, *created.Picture)

	// Act
	updated, err := store.UpsertFromGoogle(ctx, habits.User{
		Email:    "ada@x.com",
		Name:     "Ada Lovelace",
		GoogleID: "g-1",
	})

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(created.ID, updated.ID)
	suite.Require().Equal("ada@x.com", updated.Email)
	suite.Require().Equal("Ada Lovelace", updated.Name)
	suite.Require().Nil(updated.Picture)

	count, err := store.Count(ctx)
	suite.Require().Nil(err)
	suite.Require().Equal(int64(1), count)

	actual, err := store.FindByGoogleID(ctx, "g-1")
	suite.Require().Nil(err)
	suite.Require().Equal("ada@x.com", actual.Email)

	// Arrange
	_ = postgrestest.CreateUser(suite.T(), suite.db, "taken@x.com")

	// Act
	_, err = store.UpsertFromGoogle(ctx, habits.User{Email: "taken@x.com", Name: "B", GoogleID: "g-2"})

	// Assert
	suite.Require().ErrorIs(err, habits.ErrExists)
	_, err = store.FindByGoogleID(ctx, "g-2")
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestUserStoreFindByID() {
	// Arrange
	store := postgres.NewUserStore(suite.db)
	u := postgrestest.CreateUser(suite.T(), suite.db, "a@x.com")

	// Act
	actual, err := store.FindByID(context.Background(), u.ID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(u.Email, actual.Email)

	// Act
	_, err = store.FindByID(context.Background(), "missing")

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestUserStoreUpdateName() {
	// Arrange
	store := postgres.NewUserStore(suite.db)
	u := postgrestest.CreateUser(suite.T(), suite.db, "a@x.com")

	// Act
	actual, err := store.UpdateName(context.Background(), u.ID, "Ada")

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal("Ada", actual.Name)
	suite.Require().Equal(u.Email, actual.Email)

	// Act
	_, err = store.UpdateName(context.Background(), "missing", "Ada")

	// Assert
	suite.Require().ErrorIs(err, habits.ErrNotFound)
}

func (suite *DBTestSuite) TestUserStoreList() {
	// Arrange
	store := postgres.NewUserStore(suite.db)
	ctx := context.Background()

	// Act
	actual, err := store.List(ctx)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Empty(actual)

	// Arrange
	first := postgrestest.CreateUser(suite.T(), suite.db, "first@x.com")
	suite.Require().Nil(suite.db.Model(new(habits.User)).Where("id = ?", first.ID).Update(postgres.Updates{
		"created_at": first.CreatedAt.AddDate(0, 0, -1),
	}))
	second := postgrestest.CreateUser(suite.T(), suite.db, "second@x.com")

	// Act
	actual, err = store.List(ctx)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 2)
	suite.Require().Equal(second.ID, actual[0].ID)
	suite.Require().Equal(first.ID, actual[1].ID)

	// Act
	page, err := store.Paged(ctx, 1, 1)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(int64(2), page.TotalItems)
	items := page.Items.(*[]habits.User)
	suite.Require().Equal(second.ID, (*items)[0].ID)
}
