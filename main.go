package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"todo-threader/comm"
)

// plainFormatter renders entries as "[LEVEL]: message".
type plainFormatter struct{}

func (f *plainFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s]: %s\n", strings.ToUpper(entry.Level.String()), entry.Message)), nil
}

func main() {
	app := cli.NewApp()
	app.Name = "todo-threader"
	app.Usage = "relay task commands to a todo display device over a serial link"
	app.Version = "0.2.0"
	app.ArgsUsage = "ADDRESS"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML file with default settings",
		},
		cli.IntFlag{
			Name:  "baud-rate, B",
			Usage: "set the baud rate for communications",
			Value: 9600,
		},
		cli.IntFlag{
			Name:  "timeout, T",
			Usage: "the timeout in milliseconds for communications",
			Value: 500,
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "set log level to debug",
		},
		cli.BoolFlag{
			Name:  "test, t",
			Usage: "send a test to see if the device is available",
		},
		cli.StringFlag{
			Name:  "raw, r",
			Usage: "send a `PAYLOAD` directly",
		},
		cli.BoolFlag{
			Name:  "next, n",
			Usage: "send a next command to mark the current task as done",
		},
		cli.BoolFlag{
			Name:  "swap, s",
			Usage: "swap the current task with the next one",
		},
		cli.StringFlag{
			Name:  "following, f",
			Usage: "set a `TASK` and schedule it as the next one",
		},
		cli.StringFlag{
			Name:  "add, a",
			Usage: "set a `TASK` and schedule it at the end",
		},
		cli.StringFlag{
			Name:  "color, c",
			Usage: "set the color for a new task in HTML notation",
			Value: "#FFFFFF",
		},
		cli.BoolFlag{
			Name:  "random, R",
			Usage: "randomize the color for a new task",
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetFormatter(&plainFormatter{})
		if c.Bool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := appConfig{
		Baud:    c.Int("baud-rate"),
		Timeout: c.Int("timeout"),
		Color:   c.String("color"),
	}
	if path := c.String("config"); path != "" {
		if err := cfg.load(path); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		// explicit flags win over file values
		if c.IsSet("baud-rate") {
			cfg.Baud = c.Int("baud-rate")
		}
		if c.IsSet("timeout") {
			cfg.Timeout = c.Int("timeout")
		}
		if c.IsSet("color") {
			cfg.Color = c.String("color")
		}
	}
	if c.NArg() > 0 {
		cfg.Port = c.Args().First()
	}
	if cfg.Port == "" {
		cli.ShowAppHelp(c)
		return cli.NewExitError("missing serial port address", 2)
	}

	cmd, err := selectCommand(c, cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	if cmd == nil {
		cli.ShowAppHelp(c)
		return nil
	}

	device, err := comm.Open(comm.Config{
		Address: cfg.Port,
		Baud:    cfg.Baud,
		Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	})
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("failed to initialize communication with the device: %v", err), 1)
	}
	defer device.Close()

	switch {
	case c.Bool("test"):
		comm.Test(device)
	case c.IsSet("raw"):
		comm.Raw(device, []byte(c.String("raw")))
	case cmd.Mutating():
		// exhausted retries only log; the exit code stays zero
		comm.SendWithRetry(device, *cmd)
	}
	return nil
}

// selectCommand maps the operation flags to a command. It returns nil
// when no operation was selected and an error when more than one was.
func selectCommand(c *cli.Context, cfg appConfig) (*comm.Command, error) {
	selected := 0
	for _, name := range []string{"test", "raw", "next", "swap", "following", "add"} {
		if c.IsSet(name) {
			selected++
		}
	}
	if selected > 1 {
		return nil, fmt.Errorf("only one operation may be selected at a time")
	}

	var cmd comm.Command
	switch {
	case selected == 0:
		return nil, nil
	case c.Bool("test"):
		cmd = comm.NewTestCommand()
	case c.IsSet("raw"):
		cmd = comm.NewRawCommand([]byte(c.String("raw")))
	case c.Bool("next"):
		cmd = comm.NewNextCommand()
	case c.Bool("swap"):
		cmd = comm.NewSwapCommand()
	case c.IsSet("following"):
		cmd = comm.NewFollowingCommand(c.String("following"), taskColor(c, cfg))
	case c.IsSet("add"):
		cmd = comm.NewAddCommand(c.String("add"), taskColor(c, cfg))
	}
	return &cmd, nil
}

// taskColor picks the color for a task-creating command: --random wins
// over an explicit --color.
func taskColor(c *cli.Context, cfg appConfig) string {
	if c.Bool("random") {
		color := comm.RandomColor()
		log.Debugf("randomized color: %s", color)
		return color
	}
	return cfg.Color
}
