package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xy-planning-network/habits"
)

// A Scope is a reusable query fragment applied with *DB.Preload.
type Scope func(*DB) *DB

// A DB builds and runs queries against the habits database.
// Every query building method returns a new *DB,
// so a *DB can be shared across goroutines and reused as the root of many queries.
type DB struct {
	// NOTE(dlk): some *gorm.DB methods mutate the statement they are called on.
	// Each method here either chains off a method that clones the statement
	// or clones it first with safeGORMSession.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// WithContext binds ctx to every query run from the returned *DB.
func (db *DB) WithContext(ctx context.Context) *DB { return &DB{db: db.db.WithContext(ctx)} }

// withErr returns a *DB carrying err, which the next finisher method returns.
func (db *DB) withErr(err error) *DB {
	gdb := db.db.Session(safeGORMSession)
	_ = gdb.AddError(err)
	return &DB{db: gdb}
}

// Finishers run the query built so far.
// An error raised while building the query returns before anything reaches the database.

// Count returns the number of records matching the query.
func (db *DB) Count() (n int64, err error) {
	if err = db.db.Error; err != nil {
		return 0, err
	}

	if err = db.db.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: failed counting: %s", habits.ErrUnexpected, err)
	}

	return n, nil
}

// Create inserts the model value points to, leaving its associations alone,
// and writes back generated columns.
// value must be a non-nil pointer.
func (db *DB) Create(value any) (err error) {
	unaddressable := fmt.Errorf("%w: %T must be a non-nil pointer or slice", habits.ErrUnaddressable, value)
	defer func() {
		if recover() != nil {
			err = unaddressable
		}
	}()

	if err = db.db.Error; err != nil {
		return err
	}

	if value == nil || reflect.TypeOf(value).Kind() != reflect.Pointer {
		return unaddressable
	}

	return translate(db.db.Omit(clause.Associations).Create(value).Error, "creating", value)
}

// Delete removes the records of value's table matching the query.
// Deleting nothing is ErrNotFound.
func (db *DB) Delete(value any) error {
	if err := db.db.Error; err != nil {
		return err
	}

	return affected(db.db.Delete(value), "deleting", value)
}

// Exists reports whether any record matches the query.
func (db *DB) Exists() (ok bool, err error) {
	if err = db.db.Error; err != nil {
		return false, err
	}

	// NOTE(dlk): the subquery only renders from a fresh session
	if err = db.db.Raw("SELECT EXISTS(?)", db.db.Session(safeGORMSession)).Scan(&ok).Error; err != nil {
		return false, fmt.Errorf("%w: failed checking existence: %s", habits.ErrUnexpected, err)
	}

	return ok, nil
}

// Find scans every record matching the query into dest.
// Finding nothing is ErrNotFound.
func (db *DB) Find(dest any) (err error) {
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("%w: %T cannot be scanned into", habits.ErrNotValid, dest)
		}
	}()

	if err = db.db.Error; err != nil {
		return err
	}

	return affected(db.db.Find(dest), "finding", dest)
}

// First scans the record with the lowest primary key matching the query into dest.
func (db *DB) First(dest any) error {
	if err := db.db.Error; err != nil {
		return err
	}

	return translate(db.db.First(dest).Error, "finding", dest)
}

// affected translates the error of a finished statement,
// treating a statement that touched no rows as ErrNotFound.
func affected(res *gorm.DB, op string, value any) error {
	if res.Error != nil {
		return translate(res.Error, op, value)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %T", habits.ErrNotFound, value)
	}

	return nil
}

// Paged runs the query for a single page of results.
// The query must name its table with Model; the page's Items are a pointer to a slice of that type.
func (db *DB) Paged(page, perPage int64) (pd PagedData, err error) {
	defer func() {
		if r := recover(); r != nil {
			pd, err = PagedData{}, fmt.Errorf("%w: Paged panicked: %s", habits.ErrUnexpected, r)
		}
	}()

	if err = db.db.Error; err != nil {
		return PagedData{}, err
	}

	items := db.db.Statement.Model
	if items == nil {
		return PagedData{}, fmt.Errorf("%w: must use Model with Paged", habits.ErrUnaddressable)
	}

	if elem := reflect.TypeOf(items).Elem(); elem.Kind() != reflect.Slice {
		items = reflect.New(reflect.SliceOf(elem)).Interface()
	}

	pd = newPagedData(items, page, perPage)

	var total int64
	if err = db.db.Session(safeGORMSession).Count(&total).Error; err == nil {
		err = db.db.Limit(int(pd.PerPage)).Offset(pd.offset()).Find(pd.Items).Error
	}

	if err != nil {
		return PagedData{}, fmt.Errorf("%w: failed paging: %s", habits.ErrUnexpected, err)
	}

	pd.setTotal(total)
	return pd, nil
}

// Update sets values on every record matching the query.
// Updating nothing is ErrNotFound.
func (db *DB) Update(values Updates) error {
	if err := db.db.Error; err != nil {
		return err
	}

	if err := values.valid(); err != nil {
		return err
	}

	return affected(db.db.Updates(map[string]any(values)), "updating", db.db.Statement.Model)
}

// Query builders return a new *DB with one more clause.

// Limit caps the number of records returned.
func (db *DB) Limit(limit int) *DB {
	// NOTE(dlk): GORM drops a negative LIMIT where PostgreSQL raises an error.
	// Raise one here too.
	if limit < 0 {
		return db.withErr(fmt.Errorf("%w: limit must not be negative", habits.ErrNotValid))
	}

	return &DB{db: db.db.Limit(limit)}
}

// Model names the table queried after model's type, pluralized and snake cased:
// Challenge queries challenges, DailyEntry queries daily_entries.
// Call it once per query.
func (db *DB) Model(model any) *DB { return &DB{db: db.db.Model(model)} }

func (db *DB) Order(order string) *DB { return &DB{db: db.db.Order(order)} }

// Preload loads the association named after a struct field of the model, e.g. Habits,
// narrowing what is loaded with scopes:
//
//	ordered := func(dbx *DB) *DB { return dbx.Order("sort_order ASC") }
//	db.Preload("Habits", ordered).Where("id = ?", id).First(&challenge)
func (db *DB) Preload(association string, scopes ...Scope) *DB {
	conds := make([]any, len(scopes))
	for i, scope := range scopes {
		conds[i] = func(gdb *gorm.DB) *gorm.DB { return scope(NewDB(gdb)).DB() }
	}

	return &DB{db: db.db.Preload(association, conds...)}
}

func (db *DB) Select(columns ...string) *DB { return &DB{db: db.db.Select(columns)} }

// Where ANDs query onto the WHERE clause.
// query is a SQL fragment or a *DB subquery, taking at most one arg.
// More args, a nil query or a *DB already in error make the finisher fail.
func (db *DB) Where(query any, args ...any) *DB {
	if len(args) > 1 {
		return db.withErr(fmt.Errorf("%w: Where supports one or none args", habits.ErrNotValid))
	}

	args, err := unwrap(args...)
	if err != nil && !errors.Is(err, errNilArg) {
		return db.withErr(err)
	}

	q, err := unwrap(query)
	if err != nil {
		return db.withErr(err)
	}

	return &DB{db: db.db.Where(q[0], args...)}
}

// Transaction runs fn in a database transaction, committing only when fn returns nil.
// A panic in fn rolls back and propagates.
func (db *DB) Transaction(fn func(tx *DB) error) error {
	if err := db.db.Error; err != nil {
		return err
	}

	return db.db.Transaction(func(tx *gorm.DB) error { return fn(NewDB(tx)) })
}

// unwrap swaps each *DB in args for its *gorm.DB, collecting the errors those carry.
// A nil arg adds ErrNotValid alongside errNilArg, so callers may tolerate it.
func unwrap(args ...any) ([]any, error) {
	out := make([]any, len(args))
	var errs []error
	for i, arg := range args {
		out[i] = arg
		switch v := arg.(type) {
		case nil:
			errs = append(errs, habits.ErrNotValid, errNilArg)
		case *DB:
			out[i] = v.db
			if v.db.Error != nil {
				errs = append(errs, v.db.Error)
			}
		}
	}

	return out, errors.Join(errs...)
}
