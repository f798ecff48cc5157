// Package family holds the input model of a family diagram and the pure
// analysis passes that run before layout.
//
// # Model
//
// A [Family] is a list of [Person] records plus a list of [Relationship]
// records. Only relationships whose Type is [ParentChild] are recognized; any
// other type is ignored by every pass in this package and downstream.
//
// # Passes
//
//   - [NewIndex] builds the id lookup and rejects duplicate ids.
//   - [InferMarriages] derives couples from children that list exactly two
//     parents. Couples are keyed by the sorted parent pair, so declaration
//     order does not matter.
//   - [Roots] returns the people nobody lists as a child, in input order.
//   - [CheckCycles] walks the parent-child graph iteratively and reports the
//     first cycle it finds.
//
// None of the passes keep state between calls. References to unknown ids are
// not errors; later stages simply have nothing to draw for them.
//
// # Reading documents
//
// [Read] and [ReadFile] decode JSON, YAML or TOML documents shaped like
//
//	{"members": [{"id": "a", "name": "Ada", "birthYear": 1815}],
//	 "relationships": [{"type": "parent-child", "parentId": "a", "childId": "b"}]}
package family
