// Package inspect owns the HTTP inspection service.
//
// Ownership boundary:
// - decode requests over HTTP
// - catalog and field metadata listings
// - health, readiness and metrics endpoints
//
// Decoding itself stays in package arp.
package inspect
