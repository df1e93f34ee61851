// Command gen-ridership writes a synthetic ridership export in the
// source's UTF-16 tab-separated format, for local development and
// loader testing.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/lwyay/riderboard/internal/domain/model"
	"github.com/lwyay/riderboard/internal/gendata"
	"github.com/lwyay/riderboard/pkg/logger"
)

func main() {
	out := flag.String("out", "daily-ridership.tsv", "output file path")
	from := flag.String("from", "", "first day to generate (YYYY-MM-DD)")
	to := flag.String("to", "", "last day to generate (YYYY-MM-DD)")
	seed := flag.Int64("seed", 0, "random seed; 0 uses the clock")
	badEvery := flag.Int("bad-every", 0, "inject one malformed row per N clean rows; 0 disables")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Get()

	var opts []gendata.Option
	if *seed != 0 {
		opts = append(opts, gendata.WithSeed(*seed))
	}
	if *badEvery > 0 {
		opts = append(opts, gendata.WithBadRows(*badEvery))
	}
	if *from != "" || *to != "" {
		fromDay, err := time.Parse(model.DateLayout, *from)
		if err != nil {
			log.Error(ctx, "invalid -from date", logger.Error(err))
			os.Exit(1)
		}
		toDay, err := time.Parse(model.DateLayout, *to)
		if err != nil {
			log.Error(ctx, "invalid -to date", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, gendata.WithRange(fromDay.UTC(), toDay.UTC()))
	}

	gen := gendata.NewGenerator(opts...)
	table := gen.Table()
	if err := gendata.WriteFile(*out, table); err != nil {
		log.Error(ctx, "failed to write export", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "wrote synthetic ridership export",
		logger.String("out", *out),
		logger.Int("rows", len(table)-2),
	)
}
