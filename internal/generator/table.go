package generator

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/trajgen/internal/trajectory"
)

// Table holds a fully drained candidate sequence as four equal-length
// columns, for offline inspection and analysis.
type Table struct {
	X  []float64 `json:"x"`
	Y  []float64 `json:"y"`
	VX []float64 `json:"vx"`
	VY []float64 `json:"vy"`
}

// ToTable eagerly drains gen. Only valid for strategies with a bounded
// output; a random strategy with a huge budget is legal but expensive.
func ToTable(gen Generator) *Table {
	t := &Table{}
	it := gen.Generate()
	for {
		trj, ok := it.Next()
		if !ok {
			return t
		}
		t.Append(trj)
	}
}

func (t *Table) Append(trj trajectory.Trajectory) {
	t.X = append(t.X, float64(trj.X))
	t.Y = append(t.Y, float64(trj.Y))
	t.VX = append(t.VX, trj.VX)
	t.VY = append(t.VY, trj.VY)
}

func (t *Table) Len() int { return len(t.VX) }

// Row returns candidate i as a trajectory value.
func (t *Table) Row(i int) trajectory.Trajectory {
	return trajectory.Trajectory{
		X:  int(t.X[i]),
		Y:  int(t.Y[i]),
		VX: t.VX[i],
		VY: t.VY[i],
	}
}

func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		rec := []string{
			strconv.FormatFloat(t.X[i], 'g', -1, 64),
			strconv.FormatFloat(t.Y[i], 'g', -1, 64),
			strconv.FormatFloat(t.VX[i], 'g', -1, 64),
			strconv.FormatFloat(t.VY[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t *Table) ExportJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func (t *Table) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}
