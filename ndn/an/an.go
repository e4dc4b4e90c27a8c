// Package an contains assigned numbers in NDN protocols.
package an
