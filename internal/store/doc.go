// Package store implements the persistence layer of the quote API on top of
// Cloud Firestore.
//
// All durable state lives in two collections of the managed database: the
// quote request documents and the user records consulted for authorization.
// Repositories expose narrow interfaces so the service layer never touches
// the Firestore SDK directly, and all well-known failure conditions are
// reported through sentinel errors matched with [errors.Is].
package store
