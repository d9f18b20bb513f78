package main

import (
	"fmt"

	bmp "github.com/entooone/go-dibbmp"
	"github.com/knetic/govaluate"
)

// countWhere evaluates expr once per pixel and returns how many pixels it
// holds for. The expression sees red, green, blue, alpha, row and col.
func countWhere(expr string, img *bmp.Image) (int, error) {
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("invalid expression %q: %w", expr, err)
	}

	params := make(map[string]interface{}, 6)
	n := 0
	for y, row := range img.Rows {
		for x, p := range row {
			params["red"] = float64(p.Red)
			params["green"] = float64(p.Green)
			params["blue"] = float64(p.Blue)
			params["alpha"] = float64(p.Alpha)
			params["row"] = float64(y)
			params["col"] = float64(x)

			v, err := e.Evaluate(params)
			if err != nil {
				return 0, fmt.Errorf("evaluating %q at row %d, col %d: %w", expr, y, x, err)
			}

			ok, isBool := v.(bool)
			if !isBool {
				return 0, fmt.Errorf("expression %q must be boolean (got: %T)", expr, v)
			}
			if ok {
				n++
			}
		}
	}

	return n, nil
}
