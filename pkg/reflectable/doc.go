// Package reflectable derives human readable paths from Go struct fields.
//
// A path is the ordered list of segments naming a property inside a model,
// as it should be shown to an end user. Segments come from the `json` tag of
// each traversed field and fall back to the Go field name when the tag is
// missing or has no name.
//
//	type Address struct {
//		City string `json:"city"`
//	}
//
//	type User struct {
//		Mail    string  `json:"mail"`
//		Address Address `json:"address"`
//	}
//
//	path, _ := reflectable.Path[User]("Address.City") // ["address", "city"]
//
// Unknown fields yield a nil path without error; only a model that is not a
// struct is rejected with ErrDoesNotConform. Results are cached per type and
// field, so repeated lookups do not walk the struct again.
package reflectable
