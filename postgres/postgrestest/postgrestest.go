// Package postgrestest provides utilities for testing code persisting data through package postgres.
//
// Databases are in-memory SQLite databases migrated from the habits models,
// so tests need no running PostgreSQL.
package postgrestest

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/postgres"
)

// NewDB opens an empty, migrated database closed when t finishes.
func NewDB(t testing.TB) *postgres.DB {
	t.Helper()

	db, err := postgres.Open(sqlite.Open(":memory:"), habits.Testing)
	if err != nil {
		t.Fatal(err)
	}

	sqlDB, err := db.DB().DB()
	if err != nil {
		t.Fatal(err)
	}

	// NOTE(dlk): every connection to :memory: opens a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.DB().AutoMigrate(
		new(habits.User),
		new(habits.Challenge),
		new(habits.Habit),
		new(habits.DailyEntry),
	)
	if err != nil {
		t.Fatal(err)
	}

	return db
}

// CreateUser inserts a User with email.
func CreateUser(t testing.TB, db *postgres.DB, email string) habits.User {
	t.Helper()

	u := habits.User{Email: email, Name: email, GoogleID: "google-" + email}
	if err := db.Create(&u); err != nil {
		t.Fatal(err)
	}

	return u
}

// CreateChallenge inserts an active Challenge for the User starting at start.
func CreateChallenge(t testing.TB, db *postgres.DB, userID string, start time.Time) habits.Challenge {
	t.Helper()

	c := habits.NewChallenge(userID, start)
	c.Habits = make([]habits.Habit, 0)
	if err := db.Create(&c); err != nil {
		t.Fatal(err)
	}

	return c
}

// CreateHabit inserts an active binary Habit named name into the Challenge.
func CreateHabit(t testing.TB, db *postgres.DB, challengeID, name string, order int) habits.Habit {
	t.Helper()

	h := habits.Habit{
		ChallengeID: challengeID,
		Name:        name,
		Type:        habits.HabitBinary,
		Order:       order,
		IsActive:    true,
	}
	if err := db.Create(&h); err != nil {
		t.Fatal(err)
	}

	return h
}

// CreateEntry inserts a DailyEntry for the Habit on the day date falls on.
func CreateEntry(t testing.TB, db *postgres.DB, habitID string, date time.Time, completed bool) habits.DailyEntry {
	t.Helper()

	e := habits.DailyEntry{HabitID: habitID, Date: habits.NormalizeDate(date), Completed: completed}
	if err := db.Create(&e); err != nil {
		t.Fatal(err)
	}

	return e
}
