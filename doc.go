// Package jsonschema compiles JSON Schema draft-04/06/07 documents into
// specialized Go validator functions, rather than re-interpreting a schema
// tree on every call. It emits rich, path-annotated diagnostics, resolves
// $ref across documents and scopes, and supports a special-fields
// extension for arbitrating the "most relevant" anyOf branch of a
// discriminated union.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
