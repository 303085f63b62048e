// Package attr implements the attribute-path evaluation core: a closed
// kind classifier over JSON-decoded values, a deterministic stringifier
// for building violation messages, and a dot-path resolver that walks
// nested attribute trees.
//
// Two distinct "missing" signals flow out of the resolver:
//
//   - nil (Null): the container exists but the final key does not, or the
//     value is an explicit null in the plan data.
//   - Absent: the path is structurally wrong for the data, such as a
//     numeric index applied to a mapping or a segment applied past a
//     scalar.
//
// Filters treat both as a "null or undefined" finding, but callers that
// need to tell them apart can (see IsAbsent).
package attr
