// Package manifest edits JSON documents in place, field by field, so that keys
// the migration does not know about survive untouched and keep their order.
// It is used for package.json and for the JSON config files the migration
// generates.
package manifest
