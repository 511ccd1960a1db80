// Package dashboard holds the presentation components of the site: listings
// that fetch a remote collection into local state, the appointment board with
// its refetch-after-mutation flow, derived counts, and the HTML renderer.
//
// Components are created per request and discarded with it. A component never
// returns a fetch error to its caller; failures are logged and reported
// through a Notifier.
package dashboard
