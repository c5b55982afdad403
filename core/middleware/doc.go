// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns every request a ray id, exposed in locals and the X-Ray-ID header.
//   - auth: rejects requests without the configured API key.
//   - identity: resolves the calling user from a bearer token or the X-User-ID
//     header. Ownership checks in the features rely on it.
//
// Register rayid first so every later log line carries the id.
package middleware
