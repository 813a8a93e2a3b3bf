package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/interp"
	"github.com/pontaoski/tawascript/lexer"
	"github.com/pontaoski/tawascript/parser"
	"github.com/pontaoski/tawascript/runtime"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawascript", "main")

func setupLogging(level string) error {
	if level == "" {
		level = "WARNING"
	}
	lvl, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, lvl >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}

// readSource reads a file, or stdin when name is "-".
func readSource(name string) (string, error) {
	if name == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := ioutil.ReadFile(name)
	return string(data), err
}

func printBindings(w io.Writer, env *runtime.Environment) {
	for _, name := range env.Keys() {
		v, _ := env.Get(name)
		fmt.Fprintf(w, "%s = %s\n", name, v)
	}
}

// report prints err for a user and returns the exit error for the CLI.
func report(err error, trace bool) error {
	if trace {
		tracerr.PrintSourceColor(err)
		return cli.Exit("", 1)
	}
	if le, ok := errors.AsLangError(err); ok {
		return cli.Exit(fmt.Sprintf("%s: %s", le.Category(), le), 1)
	}
	return cli.Exit(err.Error(), 1)
}

func runFile(name string, bindings bool, out io.Writer) error {
	src, err := readSource(name)
	if err != nil {
		return err
	}

	plog.Infof("running %s", name)
	env := runtime.NewEnvironment()
	result, err := interp.Eval(src, env)
	if result != nil {
		fmt.Fprintln(out, result)
	}
	if bindings {
		printBindings(out, env)
	}
	return err
}

func main() {
	var m tawaManifest

	app := &cli.App{
		Name:  "tawascript",
		Usage: "tawa script interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print errors with a stack trace",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			m, _, err = loadManifest(".")
			if err != nil {
				return err
			}
			level := c.String("log-level")
			if level == "" {
				level = m.LogLevel
			}
			return setupLogging(level)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a tawa.yml pointing at an entry file",
				ArgsUsage: "<entry>",
				Action: func(c *cli.Context) error {
					entry := c.Args().First()
					if entry == "" {
						return cli.Exit("no entry file provided", 1)
					}
					return writeManifest(".", tawaManifest{Entry: entry})
				},
			},
			{
				Name:      "run",
				Usage:     "run a file, stdin (-), or the manifest entry",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "bindings",
						Usage: "print every variable after the run",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						name = m.Entry
					}
					if name == "" {
						return cli.Exit("no file given and no Entry in "+manifestYAML, 1)
					}

					err := runFile(name, c.Bool("bindings") || m.PrintBindings, os.Stdout)
					if err != nil {
						return report(err, c.Bool("trace"))
					}
					return nil
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					tokens, err := lexer.Tokenize(src)
					if err != nil {
						return report(err, c.Bool("trace"))
					}
					repr.Println(tokens)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					block, err := parser.ParseSource(src)
					if err != nil {
						return report(err, c.Bool("trace"))
					}
					repr.Println(block)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
