package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/shtc1"
	"github.com/mklimuk/shtc1/cmd/shtc1/console"
)

var measureCmd = cli.Command{
	Name:    "measure",
	Aliases: []string{"read"},
	Usage:   "perform a single temperature and humidity measurement",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "unit",
			Aliases: []string{"u"},
			Usage:   "temperature unit: celsius or fahrenheit",
			Value:   "celsius",
		},
		&cli.BoolFlag{
			Name:  "low-power",
			Usage: "use the low power measurement commands",
		},
		&cli.BoolFlag{
			Name:  "no-clock-stretching",
			Usage: "disable I2C clock stretching during conversion",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		bus, err := newBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}

		unit := shtc1.Celsius
		if c.String("unit") == "fahrenheit" {
			unit = shtc1.Fahrenheit
		}
		sensor := shtc1.New(bus,
			shtc1.WithLowPower(c.Bool("low-power")),
			shtc1.WithClockStretching(!c.Bool("no-clock-stretching")),
		)
		m, err := sensor.Measure(ctx, unit)
		if err != nil {
			return console.Exit(1, "error getting measurement: %s", console.Red(err))
		}
		console.Printf("%s  %s%s\n%s %s%%\n",
			console.PictoThermometer, console.White(m.Temperature), m.Unit,
			console.PictoHumidity, console.White(m.Humidity))
		return nil
	},
}
