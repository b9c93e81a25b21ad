// Package services coordinates the catalogue client: the debounced search
// fetch, the cached list, the derived table rows and the add/edit and delete
// dialogs.
//
// # Fetching
//
// Catalog.SetQuery arms a debounce timer; when it fires, the list is fetched
// for the latest query. A result is applied only if no newer query, Refresh,
// Load or Close happened since the fetch started. Stale results are computed
// and dropped, never aborted.
//
// # Dialogs
//
// FormDialog (add/edit) and DeleteDialog run one remote write at a time.
// Only one of them may be open. While a write is in flight Close is a no-op.
// On success the cached list is patched locally (prepend, replace in place,
// remove) and the dialog closes; on failure the list is untouched, the
// dialog stays open and Error returns the message to show.
package services
