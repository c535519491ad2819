// Package app implements the modinv command line interface.
package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kbolino/modinv"
	"github.com/kbolino/modinv/internal/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Operands used when none are given on the command line.
const (
	DefaultA = 3
	DefaultB = 5
)

// Exit statuses.
const (
	ExitNonInvertible = 1
	ExitUsage         = 2
)

var tableFlag = cli.BoolFlag{
	Name:  "table, t",
	Usage: `Print every iteration of the extended Euclidean algorithm (before the operands)`,
}

var inverseCmd = cli.Command{
	Name:      "inverse",
	Aliases:   []string{"i"},
	Usage:     "Computes the modular multiplicative inverse of A mod B",
	ArgsUsage: `[<A> <B> | "<A> mod <B>"] (options come first)`,
	Flags:     []cli.Flag{tableFlag},
	Action:    inverseAction,
}

var gcdCmd = cli.Command{
	Name:      "gcd",
	Aliases:   []string{"g"},
	Usage:     "Computes GCD(A, B) with its Bézout coefficients",
	ArgsUsage: `<A> <B> | "<A> mod <B>"`,
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return usageError(ctx, errors.New("missing operands"))
		}
		a, b, err := operands(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, ExitUsage)
		}
		if a > modinv.MaxModulus || b > modinv.MaxModulus {
			return cli.NewExitError(modinv.ErrModulusOverflow, ExitUsage)
		}
		x, y, d := modinv.ExtGCD(a, b)
		log.Logger.WithFields(logrus.Fields{"a": a, "b": b, "x": x, "y": y}).Debug("extended gcd")
		fmt.Fprintf(ctx.App.Writer, "GCD(%d, %d) = %d = %d*%d + %d*%d\n", a, b, d, x, a, y, b)
		return nil
	},
}

// New returns the modinv application writing its results to w.
// Running it without a subcommand behaves like the inverse subcommand.
func New(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "modinv"
	app.HelpName = "modinv"
	app.Usage = "Computes modular multiplicative inverses"
	app.ArgsUsage = inverseCmd.ArgsUsage
	app.Writer = w
	app.Flags = []cli.Flag{
		tableFlag,
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("debug") {
			log.SetVerbosity(log.Debug)
		} else if ctx.Bool("silent") {
			log.SetVerbosity(log.Silent)
		} else if ctx.Bool("quiet") {
			log.SetVerbosity(log.Quiet)
		} else {
			log.SetVerbosity(log.Normal)
		}
		return nil
	}
	app.OnUsageError = onUsageError
	app.Commands = []cli.Command{
		inverseCmd,
		gcdCmd,
	}
	for i := range app.Commands {
		app.Commands[i].OnUsageError = onUsageError
	}
	app.Action = inverseAction
	return app
}

func inverseAction(ctx *cli.Context) error {
	a, b, err := operands(ctx.Args())
	if err != nil {
		return cli.NewExitError(err, ExitUsage)
	}
	entry := log.Logger.WithFields(logrus.Fields{"a": a, "b": b})
	entry.Debug("computing modular inverse")
	steps, x, err := modinv.Steps(a, b)
	if err != nil {
		entry.WithError(err).Debug("no inverse")
		if errors.Is(err, modinv.ErrNonInvertible) {
			return cli.NewExitError(err, ExitNonInvertible)
		}
		return cli.NewExitError(err, ExitUsage)
	}
	for i, s := range steps {
		entry.WithFields(logrus.Fields{
			"step": i, "q": s.Quotient, "r": s.Remainder,
			"x": s.X, "y": s.Y, "t": s.T,
		}).Debug("iteration")
	}
	if ctx.Bool("table") {
		if err := writeTable(ctx.App.Writer, steps); err != nil {
			return err
		}
	}
	fmt.Fprintf(ctx.App.Writer, "The modular multiplicative inverse of %d Mod %d is %d\n", a, b, x)
	return nil
}

// operands accepts no arguments, "A mod B", or A and B.
func operands(args cli.Args) (a, b uint64, err error) {
	switch len(args) {
	case 0:
		return DefaultA, DefaultB, nil
	case 1:
		return modinv.ParseExpr(args[0])
	case 2:
		if a, err = modinv.ParseOperand(args[0]); err != nil {
			return 0, 0, err
		}
		if b, err = modinv.ParseOperand(args[1]); err != nil {
			return 0, 0, err
		}
		return a, b, nil
	}
	return 0, 0, errors.Errorf("expected at most 2 operands, got %d (options must precede operands)", len(args))
}

// onUsageError keeps flag parsing failures off stdout and maps them to
// ExitUsage.
func onUsageError(ctx *cli.Context, err error, _ bool) error {
	return usageError(ctx, err)
}

func usageError(ctx *cli.Context, err error) error {
	name := ctx.App.HelpName
	if cmd := ctx.Command.Name; cmd != "" {
		name += " " + cmd
	}
	return cli.NewExitError(fmt.Sprintf("Incorrect Usage: %v\nRun '%s --help' for usage.", err, name), ExitUsage)
}

// writeTable prints the steps as columns Q A B R x y T, followed by the
// terminal row holding the GCD and the unnormalized coefficient.
func writeTable(w io.Writer, steps []modinv.Step) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Q\tA\tB\tR\tx\ty\tT\t")
	for _, s := range steps {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			s.Quotient, s.Dividend, s.Divisor, s.Remainder, s.X, s.Y, s.T)
	}
	if n := len(steps); n > 0 {
		last := steps[n-1]
		fmt.Fprintf(tw, "-\t%d\t%d\t-\t%d\t%d\t-\t\n", last.Divisor, last.Remainder, last.Y, last.T)
	}
	return tw.Flush()
}
