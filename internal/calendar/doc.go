// Package calendar wraps the Google Calendar API for the two operations the
// tool catalog exposes: listing upcoming events and creating an event.
//
// The package owns the provider-facing payload rules: the UTC listing window,
// the fixed result limit, and the timezone policy for created events (naive
// start times are tagged with the default Pacific timezone label; start times
// that carry a UTC offset keep it inline and get no label).
package calendar
