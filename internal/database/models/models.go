// Package models holds the five persisted record types and their update
// whitelists. Column names and JSON property names follow the schema and
// wire format the UI client already depends on, so the client keeps working
// against this server unchanged.
package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields must marshal as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// MutableFields records, per table, the columns a PUT is allowed to change.
// Every other column keeps its stored value regardless of the payload. The
// update request types in internal/service must stay in sync with this table;
// a test enforces that.
var MutableFields = map[string][]string{
	"users": {
		"username", "password", "first", "last", "phone", "email",
		"imageUrl", "pan", "expiryMonth", "expiryYear", "roles",
	},
	"film":      {"title"},
	"menu_item": {"name", "description", "category", "price", "imageurl", "available"},
	"orders":    {"pickuptime", "area", "location", "status"},
	"item":      {"price", "notes", "firstname"},
}
