// Package google resolves OAuth2 credentials for the Google Calendar API.
//
// Two strategies exist and are never mixed within a single resolution:
//
//   - Environment strategy: GOOGLE_REFRESH_TOKEN, GOOGLE_CLIENT_ID and
//     GOOGLE_CLIENT_SECRET are all set. Credentials are built directly from
//     the refresh token against Google's fixed token endpoint, with no disk
//     I/O. This is the unattended (production) path.
//
//   - File strategy: a token file (token.json) holds a previously granted
//     credential. If it is absent, expired or otherwise invalid, the
//     interactive consent flow is run against a client-secrets file
//     (credentials.json) and the result is persisted back to the token
//     file. This is the development path.
//
// A present-but-expired token file deliberately triggers the full consent
// flow rather than a refresh-token-only renewal; unattended refresh belongs
// to the environment strategy.
package google
