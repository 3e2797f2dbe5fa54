package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/symbolic"
)

// PlotProperty samples a property closure over a concentration range at
// fixed temperature and renders it as a terminal graph.
func PlotProperty(fn params.PropertyFunc, caption string, cMin, cMax, temperature float64, points int) (string, error) {
	if points < 2 {
		return "", fmt.Errorf("viz: need at least 2 sample points, got %d", points)
	}
	if cMax <= cMin {
		return "", fmt.Errorf("viz: empty concentration range [%g, %g]", cMin, cMax)
	}

	expr := fn(symbolic.Var("c_e"), symbolic.Var("T"))

	values := make([]float64, points)
	step := (cMax - cMin) / float64(points-1)
	for i := 0; i < points; i++ {
		env := symbolic.Env{"c_e": cMin + float64(i)*step, "T": temperature}
		v, err := symbolic.Eval(expr, env)
		if err != nil {
			return "", err
		}
		values[i] = v
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
	return graph, nil
}
