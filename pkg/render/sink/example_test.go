package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/familytree/pkg/render/sink"
	"github.com/matzehuels/familytree/pkg/scene"
)

func ExampleRenderSVG() {
	s := scene.Scene{
		Width:  220,
		Height: 160,
		Commands: []scene.Command{{
			Kind: scene.KindBox,
			Box:  &scene.Box{ID: "ada", Name: "Ada", X: 50, Y: 50, W: 120, H: 60, Radius: 5, NameY: 75, DetailY: 92},
		}},
	}

	svg := string(sink.RenderSVG(s))
	for _, line := range strings.Split(svg, "\n") {
		if strings.Contains(line, "person-name\" x=") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output: <text class="person-name" x="110" y="75">Ada</text>
}
