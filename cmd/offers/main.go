package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-leo/offer-visitor/campaign"
	"github.com/go-leo/offer-visitor/config"
	"github.com/go-leo/offer-visitor/creditcard"
	"github.com/go-leo/offer-visitor/feed"
	"github.com/go-leo/offer-visitor/logs"
	"github.com/go-leo/offer-visitor/offer"
	"github.com/go-leo/offer-visitor/render"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run applies the stock offers: bronze gets gas and hotel, gold gets gas.
func run(ctx context.Context, stdout io.Writer, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logs.NewWithWriter(cfg.Log, stderr)
	if err != nil {
		return err
	}

	bus := feed.NewBus()
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = bus.Close(closeCtx)
	}()
	renderer, err := render.New(cfg.Output, stdout)
	if err != nil {
		return err
	}
	if err := render.Subscribe(bus, renderer); err != nil {
		return err
	}

	var goldOpts []creditcard.GoldOption
	if cfg.Gold.Suspended {
		goldOpts = append(goldOpts, creditcard.Suspended())
	}
	c := campaign.New(campaign.Default(goldOpts...),
		campaign.Logger(logger),
		campaign.Bus(bus),
		campaign.Parallel(cfg.Parallel),
		campaign.Middlewares(offer.Logging(logger)),
	)
	report, err := c.Run(ctx)
	logger.Info().Int("applied", len(report.Discounts())).Int("failed", len(report.Failed())).Msg("campaign finished")
	return err
}
