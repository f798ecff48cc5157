package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/pipeline"
)

func ExampleLayoutAndRender() {
	members := []family.Person{
		{ID: "ada", Name: "Ada", BirthYear: family.Year(1815)},
		{ID: "william", Name: "William"},
		{ID: "byron", Name: "Byron"},
	}
	rels := []family.Relationship{
		{Type: family.ParentChild, ParentID: "ada", ChildID: "byron"},
		{Type: family.ParentChild, ParentID: "william", ChildID: "byron"},
	}

	svg, err := pipeline.LayoutAndRender(members, rels)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(svg) > 0)
	// Output: true
}

func ExampleRunner_Execute() {
	fam := family.Family{
		Members: []family.Person{{ID: "solo", Name: "Solo"}},
	}

	runner := pipeline.NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), fam, pipeline.Options{
		Formats: []string{pipeline.FormatSVG, pipeline.FormatDOT},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Stats.Placed, len(result.Artifacts))
	// Output: 1 2
}
