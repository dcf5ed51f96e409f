package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/shtc1"
	"github.com/mklimuk/shtc1/cmd/shtc1/console"
)

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read the sensor ID register",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		bus, err := newBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		sensor := shtc1.New(bus)
		id, err := sensor.ReadID(ctx)
		if err != nil {
			return console.Exit(1, "error reading sensor id: %s", console.Red(err))
		}
		console.Printf("%s %s\n", console.PictoPin, console.White(fmt.Sprintf("%#04x", uint16(id))))
		if id.IsSHTC1() {
			console.Printf("ID pattern matches %s\n", console.Green("SHTC1"))
		} else {
			console.Warnf("ID pattern does not match SHTC1")
		}
		return nil
	},
}

var resetCmd = cli.Command{
	Name:  "reset",
	Usage: "issue a soft reset (sensor returns to power-on defaults)",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "do not ask for confirmation",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		if !c.Bool("yes") {
			answer, err := console.YesOrNo("reset the sensor?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				console.Print("aborted")
				return nil
			}
		}
		bus, err := newBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		sensor := shtc1.New(bus)
		err = sensor.Reset(ctx)
		if err != nil {
			return console.Exit(1, "error resetting sensor: %s", console.Red(err))
		}
		console.Print("sensor reset")
		return nil
	},
}
