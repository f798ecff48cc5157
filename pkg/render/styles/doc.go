// Package styles defines the visual appearance of family diagrams.
//
// A [Style] writes SVG fragments for each scene command into a buffer. The
// sink owns the document skeleton (XML header, root element, section
// comments); styles own everything inside it.
//
// Two styles ship with the package:
//
//   - [Classic]: light blue boxes with blue borders and marriage lines, grey
//     descent lines, Arial labels.
//   - [Print]: the same markup in grayscale, for printers and dark-on-white
//     documents.
//
// Styles are selected by name with [ByName].
package styles
