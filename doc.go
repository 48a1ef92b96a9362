// Package avro implements a schema-driven binary codec for a
// self-describing, schema-evolved data format.
//
// Given a writer's Schema describing the shape of a value and, optionally, a
// reader's Schema describing the shape a consumer expects, the codec
// validates that a datum conforms to the writer's schema, serializes
// conforming data into a compact binary stream with Encoder, and reads a
// stream back with Decoder, resolving differences between the writer's and
// reader's schemas according to the format's promotion and default rules.
//
// Schema parsing, structural introspection, and the byte-stream I/O
// abstraction are treated as external collaborators; see Schema and Stream.
package avro
