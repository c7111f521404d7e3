package example_test

import (
	"fmt"

	"github.com/abiiranathan/hbs2ts/cmd/hbs2ts/example"
	"github.com/abiiranathan/hbs2ts/transform"
)

func Example() {
	res := transform.Transform(example.TreatmentChart, transform.TransformOptions{
		IdentifiersInScope: example.IdentifiersInScope,
	})

	fmt.Println(len(res.Errors) == 0)
	fmt.Println(res.Result != nil)
	// Output:
	// true
	// true
}
