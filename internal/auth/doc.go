// Package auth provides authentication and authorization for the admin API.
//
// # Authentication
//
// LocalProvider checks an email and password against the users table.
// Passwords are stored as Argon2id hashes; bcrypt hashes of accounts
// imported from the previous backend are still accepted.
//
// # Tokens
//
// Issuer signs HS256 JSON Web Tokens carrying the user id, email and role.
// A token is valid until it expires; there is no revocation list.
//
// # Middleware
//
// Two independent fiber handlers guard routes:
//   - RequireAuthenticated rejects requests without a valid bearer token (401)
//   - RequireAdmin rejects authenticated users lacking the admin role (403)
//
// Example usage:
//
//	issuer, err := auth.NewIssuer(cfg.Auth)
//
//	admin := app.Group("/api", auth.RequireAuthenticated(issuer), auth.RequireAdmin())
//	admin.Post("/doctors", handler)
//
// # Bootstrap
//
// EnsureAdmin creates the configured admin account at startup unless a user
// with that email already exists.
package auth
