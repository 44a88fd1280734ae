// Package services contains the application services of the carmarket CLI:
// the car catalog, the auth directory, the in-memory profile account list
// and the persisted settings flags.
package services
