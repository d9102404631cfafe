// Package arp owns the ARP/RARP wire decoder.
//
// Ownership boundary:
// - fixed header and address layout parsing
// - address rendering per hardware/protocol type
// - protocol label and info summary
// - ordered field entries handed to a Sink
//
// Packet capture, ethertype dispatch and entry storage stay with the caller.
package arp
