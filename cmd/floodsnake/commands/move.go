package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tonobo/floodsnake/api"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/policy"
)

var moveCmd = &cobra.Command{
	Use:   "move [request.json]",
	Short: "decide a single move for a request read from a file or stdin",
	Long: "move reads one request in the /move format, for instance a line of a\n" +
		"request log, and prints the chosen direction.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		opts, err := policyOptions()
		if err != nil {
			return err
		}
		b, err := readBoard(c.InOrStdin(), args)
		if err != nil {
			return err
		}
		if log.IsLevelEnabled(log.DebugLevel) {
			if err := b.Render(c.ErrOrStderr()); err != nil {
				return err
			}
		}
		d := policy.New(opts).Decide(b)
		log.WithField("reason", d.Reason).Debug("decided")
		fmt.Fprintln(c.OutOrStdout(), d.Direction)
		return nil
	},
}

func readBoard(stdin io.Reader, args []string) (*board.Board, error) {
	in := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening request")
		}
		defer f.Close()
		in = f
	}
	req, err := api.Decode(in)
	if err != nil {
		return nil, err
	}
	return req.NewBoard()
}
