// Package repository provides database access for domain entities.
package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadySaved is returned when a user saves a course twice.
var ErrAlreadySaved = errors.New("course already saved")
