// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CachedSession is the predicate function for cachedsession builders.
type CachedSession func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)
