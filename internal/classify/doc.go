// Package classify maps file extensions to sorting categories.
//
// The rule table is fixed at compile time and exposed only through read
// methods. Classification is total: every extension resolves to a Category,
// and the boolean result tells callers whether the table knew it.
package classify
