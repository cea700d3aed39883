/*
Package postgres persists the habits domain in PostgreSQL through GORM.

DB wraps *gorm.DB, translating database failures into the habits error values
so callers never inspect driver errors.
UserStore, ChallengeStore, HabitStore and EntryStore build on DB,
scoping every read and write to the User owning the data.

The schema lives in embedded SQL migrations applied with golang-migrate, see Migrate.
*/
package postgres
