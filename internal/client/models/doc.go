// Package models defines the carmarket domain types: car listings, the
// registered users of the auth directory, profile accounts, purchase offers
// and the persisted settings flags.
package models
