// Package manifest decodes package manifests and renders their orders as text.
//
// A TOML manifest looks like this:
//
//	[package]
//	name = "not-a-gift-order"
//
//	[package.metadata]
//	orders = [
//	    { item = "Toy car", quantity = 2 },
//	    { item = "Lego brick", quantity = 230 },
//	]
//
// and renders, with the default line template, as:
//
//	Toy car: 2
//	Lego brick: 230
//
// The media type selects the decoder. application/toml is decoded,
// application/json is recognised but returns ErrNotImplemented, and anything
// else returns ErrUnsupportedMediaType. Decoding failures match
// ErrInvalidManifest with errors.Is.
package manifest
