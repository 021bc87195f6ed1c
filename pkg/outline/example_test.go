package outline_test

import (
	"fmt"

	"github.com/matzehuels/mikado/pkg/outline"
)

func ExampleParse() {
	res, err := outline.Parse(`o Upgrade ORM
    x Replace raw queries
    o Migrate models
        x Add model tests
`)
	if err != nil {
		panic(err)
	}

	for _, n := range res.Nodes.Sorted() {
		fmt.Printf("%s done=%t goal=%t\n", n.Name, n.Done, n.Goal)
	}
	for _, e := range res.Edges.Sorted() {
		fmt.Printf("%s -> %s done=%t\n", e.Src, e.Dst, e.Done)
	}
	// Output:
	// Add model tests done=true goal=false
	// Migrate models done=false goal=false
	// Replace raw queries done=true goal=false
	// Upgrade ORM done=false goal=true
	// Migrate models -> Add model tests done=false
	// Upgrade ORM -> Migrate models done=false
	// Upgrade ORM -> Replace raw queries done=false
}

func ExampleExtract() {
	name, done := outline.Extract("x Inline config loader")
	fmt.Println(name, done)
	// Output:
	// Inline config loader true
}
