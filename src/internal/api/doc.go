// Package api provides the HTTP surface of octetpost.
//
// Every route is stateless: handlers decode the request, call one pure
// function from addrmath or manifest and write the result as plain text.
//
// # Routes
//
//	GET  /                  greeting
//	GET  /redirect-example  redirect to the configured location
//	GET  /-1/seek           same as /redirect-example
//	GET  /2/dest            ?from=&key=  IPv4, from + key per octet
//	GET  /2/key             ?from=&to=   IPv4, to - from per octet
//	GET  /2/v6/dest         ?from=&key=  IPv6, from XOR key
//	GET  /2/v6/key          ?from=&to=   IPv6, from XOR to
//	POST /5/manifest        TOML manifest body, rendered orders
//	GET  /healthz           liveness
//	GET  /metrics           prometheus metrics, when enabled
//
// # Status Codes
//
// Malformed query parameters and malformed manifests are 400 with a
// plain-text message. An empty manifest is 204. Unknown manifest media
// types are 415 with no body, and JSON manifests are 501 until a schema
// is defined.
package api
