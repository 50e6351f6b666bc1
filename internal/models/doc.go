// Package models defines the item domain model and its request payloads.
//
// Item is the sole entity: a flat document with a store-assigned identifier,
// a required name, an optional description, and an immutable UTC creation
// timestamp. There are no relationships between items.
//
// CreateItem and UpdateItem mirror the wire payloads. UpdateItem uses
// pointer fields so that "field absent" and "field set" are distinguishable;
// partial updates only ever touch fields the caller provided.
package models
