package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tonobo/floodsnake/grid"
)

var (
	region string
	path   string
)

var renderCmd = &cobra.Command{
	Use:   "render [request.json]",
	Short: "print the board of a request as text",
	Long: "render prints the board of a request. --region x,y marks the cells\n" +
		"reachable from x,y and --path x,y marks the shortest path from the\n" +
		"player's head to x,y.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		b, err := readBoard(c.InOrStdin(), args)
		if err != nil {
			return err
		}
		var marks []grid.Point
		if region != "" {
			p, err := parsePoint(region)
			if err != nil {
				return err
			}
			marks = b.ReachablePoints(p)
			pocket := b.CountReachableWithSnakeData(p)
			fmt.Fprintf(c.OutOrStdout(), "region %v: area %d, heads %d, tails %d\n",
				p, pocket.Area, pocket.Heads, pocket.Tails)
		}
		if path != "" {
			p, err := parsePoint(path)
			if err != nil {
				return err
			}
			steps := b.ShortestPath(b.Player.Head, p)
			marks = append(marks, steps...)
			fmt.Fprintf(c.OutOrStdout(), "path to %v: %d steps\n", p, len(steps))
		}
		return b.Render(c.OutOrStdout(), marks...)
	},
}

func init() {
	renderCmd.Flags().StringVar(&region, "region", "", "mark the region reachable from x,y")
	renderCmd.Flags().StringVar(&path, "path", "", "mark the shortest path from the head to x,y")
}

func parsePoint(s string) (grid.Point, error) {
	var p grid.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return p, errors.Wrapf(err, "bad point %q, want x,y", s)
	}
	return p, nil
}
