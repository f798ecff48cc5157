// Package pkg provides the core libraries for family tree diagrams.
//
// # Overview
//
// Familytree turns a list of people and parent-child relationships into a
// generational diagram: ancestors on top, one row per generation, married
// couples side by side with elbow connectors down to their children. The pkg
// directory is organized into four areas:
//
//  1. Domain: [family], [layout], [route], [scene]
//  2. Output: [render] and its [render/sink], [render/styles] and
//     [render/nodelink] subpackages
//  3. Orchestration: [pipeline] (validate → layout → route → scene → render)
//  4. Infrastructure: [cache], [storage], [observability], [errors], [buildinfo]
//
// # Architecture
//
// The data flow through familytree:
//
//	Family document (JSON, YAML, TOML or HTTP body)
//	         ↓
//	    [family] package (index, cycle check, marriages, roots)
//	         ↓
//	    [layout] package (generations and positions)
//	         ↓
//	    [route] package (marriage lines and child elbows)
//	         ↓
//	    [scene] package (ordered drawing commands)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT output
//
// # Quick Start
//
//	import "github.com/matzehuels/familytree/pkg/pipeline"
//
//	svg, err := pipeline.LayoutAndRender(members, relationships)
//
// For caching, several formats and hooks, use [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, fam, pipeline.Options{
//	    Formats: []string{"svg", "dot"},
//	})
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [family]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/family
// [layout]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/layout
// [route]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/route
// [scene]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/render/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/cache
// [storage]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/storage
// [observability]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/buildinfo
package pkg
