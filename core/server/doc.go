// Package server holds the HTTP server configuration and the mapping from
// domain errors to HTTP responses shared by every feature handler.
//
// # Error mapping
//
//	kitchen.ErrNotFound      -> 404
//	kitchen.ErrInvalid       -> 400
//	kitchen.ErrForbidden     -> 403
//	kitchen.ErrAlreadyExists -> 409
//	kitchen.ErrIntegrity     -> 422
//	anything else            -> 500
package server
