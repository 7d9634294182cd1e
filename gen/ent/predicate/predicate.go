// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CapitalCallDetail is the predicate function for capitalcalldetail builders.
type CapitalCallDetail func(*sql.Selector)

// DistributionDetail is the predicate function for distributiondetail builders.
type DistributionDetail func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)
