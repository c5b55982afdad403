// Package checks holds the individual integrity checks run by the integrity feature
// and the integrity command.
package checks
