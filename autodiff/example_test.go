package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/gradgraph/autodiff"
)

func Example() {
	g := autodiff.New()
	x := g.Leaf(2)
	p, _ := g.Add(x, x)
	q, _ := g.Mul(p, x)

	if err := g.Backward(q); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Value(q), g.Grad(x))
	// Output: 8 8
}

func ExampleGraph_Div() {
	g := autodiff.New()
	_, err := g.Div(g.Leaf(1), g.Leaf(0))
	fmt.Println(errors.Is(err, autodiff.ErrDivisionByZero))
	// Output: true
}

func ExampleGraph_ZeroGrad() {
	g := autodiff.New()
	x := g.Leaf(3)
	y, _ := g.Mul(x, x)

	_ = g.Backward(y)
	_ = g.Backward(y)
	fmt.Println(g.Grad(x))

	_ = g.ZeroGrad(y)
	_ = g.Backward(y)
	fmt.Println(g.Grad(x))
	// Output:
	// 12
	// 6
}
