// Package route computes the connector geometry between placed people.
//
// Two kinds of connectors exist:
//
//   - A marriage line joins the right edge of the first spouse to the left
//     edge of the second, at half box height. Each shared child hangs off the
//     line's midpoint through a right-angle elbow.
//   - A single-parent elbow drops from the bottom centre of the parent to the
//     top centre of the child. It is drawn for every relationship whose child
//     has at most one recorded parent.
//
// Children with three or more recorded parents get no connector at all, and a
// marriage between people in different generations is not drawn. Connectors
// touching someone without a position are skipped silently.
package route
