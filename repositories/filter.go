package repositories

import (
	"gorm.io/gorm"
)

// Equals is a single "column = value" clause.
type Equals struct {
	Column string
	Value  interface{}
}

// Conjunction is the logical AND of its clauses. An empty conjunction
// applies no constraint.
type Conjunction []Equals

// And appends a clause and returns the extended conjunction.
func (c Conjunction) And(column string, value interface{}) Conjunction {
	return append(c, Equals{Column: column, Value: value})
}

// Apply adds every clause to the query as a WHERE condition.
func (c Conjunction) Apply(tx *gorm.DB) *gorm.DB {
	for _, eq := range c {
		tx = tx.Where(eq.Column+" = ?", eq.Value)
	}
	return tx
}
