// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoCurrentUser is returned when a protected handler runs without a
	// user resolved by the auth middleware.
	ErrNoCurrentUser = errors.New("no authenticated user in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidQueryParameter is returned for non-integer skip or limit.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrInvalidUpload is returned when the avatar body cannot be read.
	ErrInvalidUpload = errors.New("invalid upload")
)
