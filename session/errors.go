// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPhase       = errors.New("invalid workflow phase")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateProposal  = errors.New("duplicate proposal")
	ErrAlreadyRegistered  = errors.New("voter already registered")
	ErrAlreadyVoted       = errors.New("voter already voted")
	ErrUnknownProposal    = errors.New("unknown proposal")
	ErrWinnerNotFound     = errors.New("winner not found")
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")
	ErrAdminMismatch      = errors.New("administrator mismatch")
)
