package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/familytree/pkg/scene"
)

// ContentTypeJSON is the media type of [RenderJSON] output.
const ContentTypeJSON = "application/json"

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonOutput)

// WithJSONStyle records the style name so the scene can be re-rendered the
// same way.
func WithJSONStyle(s string) JSONOption { return func(o *jsonOutput) { o.Style = s } }

type jsonOutput struct {
	Style string `json:"style,omitempty"`
	scene.Scene
}

// RenderJSON writes the scene as indented JSON.
func RenderJSON(s scene.Scene, opts ...JSONOption) ([]byte, error) {
	out := jsonOutput{Scene: s}
	if out.Commands == nil {
		out.Commands = []scene.Command{}
	}
	for _, opt := range opts {
		opt(&out)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

// ReadJSON restores a scene written by [RenderJSON] along with its recorded
// style name, which may be empty.
func ReadJSON(data []byte) (scene.Scene, string, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return scene.Scene{}, "", fmt.Errorf("unmarshal scene: %w", err)
	}
	return out.Scene, out.Style, nil
}
