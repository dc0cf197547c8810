// Package models defines typed representations of the venue's push events.
//
// Push frames carry an "e" member naming the event kind; Decode dispatches on
// it and returns the matching struct. Price and quantity fields are decoded
// into decimal.Decimal to keep exact values end to end.
package models
