package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/shtc1"
	"github.com/mklimuk/shtc1/adapter"
	"github.com/mklimuk/shtc1/i2c"
)

var adapterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Usage:   "bus adapter: mcp2221, periph or nanopi",
		Value:   "mcp2221",
	},
	&cli.StringFlag{
		Name:  "device",
		Usage: "periph bus name (empty opens the first available bus)",
	},
	&cli.IntFlag{
		Name:  "bus",
		Usage: "gobot bus number (-1 selects the platform default)",
		Value: -1,
	},
}

func newBus(c *cli.Context) (shtc1.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		return adapter.NewMCP2221(), nil
	case "periph":
		bus, err := i2c.NewGenericBus(c.String("device"))
		if err != nil {
			return nil, fmt.Errorf("could not open periph bus: %w", err)
		}
		return bus, nil
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		return adapter.NewGobotBus(npi, c.Int("bus")), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", c.String("adapter"))
	}
}
