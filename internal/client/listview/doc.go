// Package listview implements the remote list view shared by every admin
// screen: fetch a collection from the API, filter and page it locally,
// create, update and delete records, upload record assets and export the
// filtered set as CSV.
//
// A screen is a Config value; View does the rest. Load calls are
// sequenced: only the response of the most recently issued Load is
// applied, older ones return ErrSuperseded.
package listview
