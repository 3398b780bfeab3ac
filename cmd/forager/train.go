package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-forager/forage"
	"github.com/beka-birhanu/vinom-forager/infrastruture/plot"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

type trainOptions struct {
	food        int
	dimension   int
	episodes    int
	seed        int64
	randomSeed  bool
	reportEvery int
	heatmap     string
}

func trainCommand() *cobra.Command {
	var o trainOptions

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an agent and print its best path",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.randomSeed = !cmd.Flags().Changed("seed")
			return runTrain(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().IntVar(&o.food, "food", 10, "number of food items")
	cmd.Flags().IntVar(&o.dimension, "dimension", 6, "side length of the world")
	cmd.Flags().IntVar(&o.episodes, "episodes", 500, "number of training episodes")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "deterministic seed (clock based when omitted)")
	cmd.Flags().IntVar(&o.reportEvery, "report-every", 100, "print a summary every n episodes (0 disables)")
	cmd.Flags().StringVar(&o.heatmap, "heatmap", "", "write an HTML heatmap of state values to this file")
	return cmd
}

func runTrain(w io.Writer, o trainOptions) error {
	seed := o.seed
	if o.randomSeed {
		seed = time.Now().UnixNano()
	}
	fmt.Fprintf(w, "train config => food=%d dimension=%d episodes=%d seed=%d\n", o.food, o.dimension, o.episodes, seed)

	cfg := forage.Config{
		NumFood:   o.food,
		Dimension: o.dimension,
		Episodes:  o.episodes,
	}
	if o.reportEvery > 0 {
		cfg.OnEpisode = func(s forage.EpisodeStats) {
			if s.Episode%o.reportEvery == 0 {
				fmt.Fprintf(w, "episode %d: steps=%d reward=%.2f eaten=%d epsilon=%.2f\n", s.Episode, s.Steps, s.Reward, s.Eaten, s.Epsilon)
			}
		}
	}

	res, err := forage.Train(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "best path (%d steps): %s\n", len(res.BestPath), strings.Join(res.BestPath, " "))
	printBoard(w, o.dimension, res)

	if o.heatmap != "" {
		f, err := os.Create(o.heatmap)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := plot.RenderHeatmap(f, fmt.Sprintf("seed %d", seed), res.QTable.StateValues()); err != nil {
			return err
		}
		fmt.Fprintf(w, "heatmap written to %s\n", o.heatmap)
	}
	return nil
}

// printBoard replays the best path and draws visited cells, food and the end cell.
func printBoard(w io.Writer, dim int, res *forage.Result) {
	grid := forage.Grid{Dimension: dim}
	visited := map[forage.Position]bool{grid.Origin(): true}
	pos := grid.Origin()
	for _, name := range res.BestPath {
		a, _ := forage.ParseAction(name)
		pos = grid.Move(pos, a)
		visited[pos] = true
	}

	food := forage.NewFoodSet(res.FoodLocations)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			cell := forage.Position{Row: r, Col: c}
			switch {
			case cell == pos:
				fmt.Fprint(w, aurora.Bold(aurora.Green(" A ")))
			case food.Has(cell) && visited[cell]:
				fmt.Fprint(w, aurora.Yellow(" * "))
			case food.Has(cell):
				fmt.Fprint(w, aurora.Red(" * "))
			case visited[cell]:
				fmt.Fprint(w, aurora.Blue(" . "))
			default:
				fmt.Fprint(w, "   ")
			}
			fmt.Fprint(w, aurora.White("|"))
		}
		fmt.Fprintln(w)
	}
}
