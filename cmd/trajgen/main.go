package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajgen/internal/config"
	"github.com/san-kum/trajgen/internal/generator"
	"github.com/san-kum/trajgen/internal/stats"
	"github.com/san-kum/trajgen/internal/tui"
)

var (
	configFile string
	limit      int
	format     string
	outPath    string
	summary    bool
	axis       string
	frameRate  int
)

// paramHints documents the constructor parameters of each builtin
// strategy for the list command.
var paramHints = map[string]string{
	"SingleVelocitySearch": "vx, vy",
	"VelocityGridSearch":   "vx_steps, min_vx, max_vx, vy_steps, min_vy, max_vy",
	"KBMODV1Search":        "vel_steps, min_vel, max_vel, ang_steps, min_ang, max_ang",
	"KBMODV1SearchConfig":  "v_arr, ang_arr, average_angle",
	"RandomVelocitySearch": "min_vx, max_vx, min_vy, max_vy, max_samples, seed",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "trajgen",
		Short: "candidate trajectory generation for image-stack searches",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list registered generator strategies",
		RunE:  listGenerators,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "drain a generator into a candidate table",
		RunE:  tableCandidates,
	}
	tableCmd.Flags().StringVar(&configFile, "config", "", "search configuration file (yaml)")
	tableCmd.Flags().IntVar(&limit, "limit", 0, "cap the number of candidates (0 = all)")
	tableCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv or json")
	tableCmd.Flags().StringVar(&outPath, "out", "", "write output to a file instead of stdout")
	tableCmd.Flags().BoolVar(&summary, "summary", false, "print column statistics instead of rows")
	tableCmd.MarkFlagRequired("config")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot candidate values in emission order",
		RunE:  plotCandidates,
	}
	plotCmd.Flags().StringVar(&configFile, "config", "", "search configuration file (yaml)")
	plotCmd.Flags().IntVar(&limit, "limit", 2000, "cap the number of candidates (0 = all)")
	plotCmd.Flags().StringVar(&axis, "axis", "speed", "value to plot: vx, vy, speed or angle")
	plotCmd.MarkFlagRequired("config")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "interactive velocity-space preview of the candidate sweep",
		RunE:  previewCandidates,
	}
	previewCmd.Flags().StringVar(&configFile, "config", "", "search configuration file (yaml)")
	previewCmd.Flags().IntVar(&limit, "limit", 5000, "cap the number of candidates (0 = all)")
	previewCmd.Flags().IntVar(&frameRate, "fps", 30, "playback frame rate")
	previewCmd.MarkFlagRequired("config")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default search configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(listCmd, tableCmd, plotCmd, previewCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listGenerators(cmd *cobra.Command, args []string) error {
	fmt.Println(tui.TitleStyle.Render("registered trajectory generators"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARAMETERS")
	for _, name := range generator.Names() {
		fmt.Fprintf(w, "%s\t%s\n", name, paramHints[name])
	}
	return w.Flush()
}

func buildGenerator() (generator.Generator, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return generator.FromSearchConfig(cfg)
}

// drainTable collects up to limit candidates (all of them when limit
// is zero or negative) between the generator's lifecycle hooks.
func drainTable(gen generator.Generator) (*generator.Table, error) {
	table := &generator.Table{}
	err := generator.With(gen, func(it generator.Iterator) error {
		for limit <= 0 || table.Len() < limit {
			trj, ok := it.Next()
			if !ok {
				break
			}
			table.Append(trj)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func tableCandidates(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	table, err := drainTable(gen)
	if err != nil {
		return err
	}

	if summary {
		return printSummary(gen, table)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return table.WriteCSV(out)
	case "json":
		return table.WriteJSON(out)
	case "table":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "X\tY\tVX\tVY")
		for i := 0; i < table.Len(); i++ {
			fmt.Fprintf(w, "%g\t%g\t%.6f\t%.6f\n", table.X[i], table.Y[i], table.VX[i], table.VY[i])
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printSummary(gen generator.Generator, table *generator.Table) error {
	fmt.Println(gen)
	fmt.Printf("candidates: %d\n\n", table.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tMEAN\tSTDDEV\tMIN\tMAX")
	for _, col := range stats.Summarize(table) {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			col.Name, col.Mean, col.StdDev, col.Min, col.Max)
	}
	return w.Flush()
}

func plotCandidates(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	table, err := drainTable(gen)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		return fmt.Errorf("no candidates to plot")
	}

	data := make([]float64, table.Len())
	for i := 0; i < table.Len(); i++ {
		switch axis {
		case "vx":
			data[i] = table.VX[i]
		case "vy":
			data[i] = table.VY[i]
		case "speed":
			data[i] = math.Hypot(table.VX[i], table.VY[i])
		case "angle":
			data[i] = math.Atan2(table.VY[i], table.VX[i])
		default:
			return fmt.Errorf("unknown axis %q", axis)
		}
	}

	fmt.Println(gen)
	fmt.Printf("candidates: %d\n\n", table.Len())

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s per candidate (emission order)", axis)),
	)
	fmt.Println(graph)
	return nil
}

func previewCandidates(cmd *cobra.Command, args []string) error {
	gen, err := buildGenerator()
	if err != nil {
		return err
	}

	table, err := drainTable(gen)
	if err != nil {
		return err
	}

	m := tui.NewModel(gen.String(), table, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "search.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
