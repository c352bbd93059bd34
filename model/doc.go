// Package model provides the intermediate representation (IR) for extracted
// file metadata.
//
// This package defines the user-facing data structures that every decoder
// ultimately produces, making them the primary API for consuming extraction
// results.
//
// # Records
//
// The [Record] type represents the complete output for one file: identity
// fields (filename, path, size, extension) plus zero or more named sections:
//
//	rec := model.NewRecord("photo.jpg", "/pics/photo.jpg", 2456789, ".jpg")
//	rec.AddSection("exif", exifSection)
//
// # Sections
//
// A [Section] is a flat, insertion-ordered mapping from field name to scalar
// value. Keys are unique; setting an existing key overwrites its value
// without changing its position. Sections marshal to JSON in insertion
// order, so serialized output is reproducible byte for byte.
//
// # Coordinates
//
// [Coordinates] holds a resolved GPS position with signed decimal latitude
// and longitude and a map link. It is always derived from a gps section,
// never decoded directly from file bytes.
package model
