package habits

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values,
// such as ChallengeStatus or HabitType.
//
// Adding a new constant value ought to include a migration updating the CHECK constraint
// on the column storing it.
type Enumerable interface {
	String() string
	Valid() error
}
