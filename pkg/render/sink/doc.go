// Package sink serializes a [scene.Scene] into output documents.
//
// # Formats
//
//   - [RenderSVG]: standalone SVG with an XML declaration. The visual style is
//     pluggable with [WithStyle]; the default is [styles.Classic].
//   - [RenderJSON]: the scene itself, commands in paint order. [ReadJSON]
//     restores it, so a scene can be cached or shipped and rendered later.
//   - [RenderPNG], [RenderPDF]: SVG converted through rsvg-convert.
//
// Each sink is a pure function of its input scene and options.
//
// [scene.Scene]: github.com/matzehuels/familytree/pkg/scene
package sink
