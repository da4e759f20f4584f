package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/exercises/lines"
	"github.com/npillmayer/exercises/persistent/bst"
	"github.com/npillmayer/exercises/persistent/stack"
	"github.com/npillmayer/exercises/phrase"
	"github.com/npillmayer/exercises/quaternion"
	"github.com/npillmayer/exercises/result"
	"github.com/npillmayer/exercises/seqs"
	"github.com/npillmayer/exercises/shape"
	"github.com/spf13/cobra"
)

// --- first -----------------------------------------------------------------

func newFirstCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "first --prefix P words…",
		Short: "Print the first word starting with a prefix, lower-cased",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := seqs.FirstThenLowerCase(args, func(s string) bool {
				return strings.HasPrefix(s, prefix)
			})
			var word string
			switch x := m.Match(); x {
			case x.Just(&word):
				fmt.Fprintln(cmd.OutOrStdout(), word)
			case x.Nothing():
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix to look for")
	return cmd
}

// --- say -------------------------------------------------------------------

func newSayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "say words…",
		Short: "Join words into a phrase",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), phrase.Say(args...))
		},
	}
}

// --- lines -----------------------------------------------------------------

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines files…",
		Short: "Count lines which are neither blank nor comments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				var n int
				var err error
				switch m := result.Try(lines.Count(filename)).Match(); m {
				case m.Ok(&n):
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n, filename)
				case m.Err(&err):
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "error\t%s\t%v\n", filename, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}

// --- quat ------------------------------------------------------------------

func newQuatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quat",
		Short: "Quaternion arithmetic; quaternions are written as a,b,c,d",
	}
	binaryOp := func(use, short string, op func(p, q quaternion.Quaternion) quaternion.Quaternion) *cobra.Command {
		return &cobra.Command{
			Use:   use + " P Q",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := parseQuaternion(args[0])
				if err != nil {
					return err
				}
				q, err := parseQuaternion(args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), op(p, q))
				return nil
			},
		}
	}
	cmd.AddCommand(
		binaryOp("add", "Print P + Q", quaternion.Quaternion.Plus),
		binaryOp("mul", "Print the Hamilton product P · Q", quaternion.Quaternion.Times),
		&cobra.Command{
			Use:   "conj Q",
			Short: "Print the conjugate of Q",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := parseQuaternion(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), q.Conjugate())
				return nil
			},
		},
	)
	return cmd
}

// parseQuaternion reads "a,b,c,d".
func parseQuaternion(s string) (quaternion.Quaternion, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quaternion.Zero, fmt.Errorf("quaternion %q: need 4 comma-separated coefficients, have %d", s, len(parts))
	}
	var c [4]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quaternion.Zero, fmt.Errorf("quaternion %q: %w", s, err)
		}
		c[i] = x
	}
	return quaternion.New(c[0], c[1], c[2], c[3])
}

// --- bst -------------------------------------------------------------------

func newBSTCmd(a *app) *cobra.Command {
	var probes []string
	var styleFlag string
	cmd := &cobra.Command{
		Use:   "bst keys…",
		Short: "Insert keys into a search tree and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			style := styleFlag
			if style == "" {
				style = a.cfg.Tree.Style
			}
			tree := bst.New(args...)
			tracer().Debugf("tree of %d keys from %d arguments", tree.Size(), len(args))
			out := cmd.OutOrStdout()
			switch style {
			case "paren":
				fmt.Fprintln(out, tree)
			case "outline":
				fmt.Fprint(out, bst.Outline(tree))
			default:
				return fmt.Errorf("unknown tree style %q", style)
			}
			fmt.Fprintf(out, "size=%d height=%d\n", tree.Size(), tree.Height())
			for _, k := range probes {
				fmt.Fprintf(out, "contains %q: %v\n", k, tree.Contains(k))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&probes, "contains", nil, "key to look up (may be repeated)")
	cmd.Flags().StringVar(&styleFlag, "style", "", "output style: paren or outline (default from config)")
	return cmd
}

// --- stack -----------------------------------------------------------------

func newStackCmd() *cobra.Command {
	var pops int
	cmd := &cobra.Command{
		Use:   "stack [--pop N] items…",
		Short: "Push items onto a stack, then pop some of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stack.New(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for range pops {
				var x string
				if s, x, err = s.Pop(); err != nil {
					return err
				}
				fmt.Fprintf(out, "pop %s\n", x)
			}
			fmt.Fprintf(out, "%v size=%d\n", s, s.Size())
			return nil
		},
	}
	cmd.Flags().IntVar(&pops, "pop", 0, "number of items to pop")
	return cmd
}

// --- powers ----------------------------------------------------------------

func newPowersCmd() *cobra.Command {
	var base, limit, most int
	cmd := &cobra.Command{
		Use:   "powers",
		Short: "Print the powers of a base up to a limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if most <= 0 {
				return errors.New("--max must be positive")
			}
			var out []string
			for p := range seqs.Powers(base, limit) {
				out = append(out, strconv.Itoa(p))
				if len(out) == most {
					break
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 2, "base")
	cmd.Flags().IntVar(&limit, "limit", 100, "largest value to print")
	cmd.Flags().IntVar(&most, "max", 64, "maximum number of values to print")
	return cmd
}

// --- shape -----------------------------------------------------------------

func newShapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Print volume and surface area of a shape",
	}
	measure := func(cmd *cobra.Command, args []string, mk func(x []float64) shape.Shape) error {
		x := make([]float64, len(args))
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return err
			}
			x[i] = v
		}
		s := mk(x)
		fmt.Fprintf(cmd.OutOrStdout(), "volume=%g surface=%g\n", s.Volume(), s.SurfaceArea())
		return nil
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "box WIDTH LENGTH DEPTH",
			Short: "A rectangular box",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return measure(cmd, args, func(x []float64) shape.Shape {
					return shape.Box{Width: x[0], Length: x[1], Depth: x[2]}
				})
			},
		},
		&cobra.Command{
			Use:   "sphere RADIUS",
			Short: "A sphere",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return measure(cmd, args, func(x []float64) shape.Shape {
					return shape.Sphere{Radius: x[0]}
				})
			},
		},
	)
	return cmd
}
