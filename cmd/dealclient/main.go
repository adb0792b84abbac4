package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dealswap/internal/client/api"
	"dealswap/internal/client/clientcfg"
	"dealswap/internal/client/clientlog"
	"dealswap/internal/client/dailydeal"
	"dealswap/internal/client/dealcache"
	"dealswap/internal/client/swipe"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/dealclient.toml", "client configuration file")
	batch := flag.Int("batch", 0, "candidate batch size (0 = server default)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: dealclient [flags] [swipe|trades]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := clientcfg.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger, err := clientlog.New(clientlog.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{cfg: cfg, logger: logger, in: bufio.NewScanner(os.Stdin), out: os.Stdout, batch: *batch}
	if err := app.run(ctx, flag.Arg(0)); err != nil {
		logger.Error("dealclient exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, api.UserMessage(err))
		os.Exit(1)
	}
}

type app struct {
	cfg    clientcfg.Config
	logger *zap.Logger
	in     *bufio.Scanner
	out    io.Writer
	batch  int
}

func (a *app) run(ctx context.Context, command string) error {
	client := api.New(a.cfg.API(), a.logger)
	if err := a.login(ctx, client); err != nil {
		return err
	}

	switch command {
	case "trades":
		return a.trades(ctx, client)
	case "", "swipe":
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}
	cache, err := dealcache.Open(a.cfg.Cache.Path, a.logger)
	if err != nil {
		return err
	}
	defer cache.Close()

	daily := dailydeal.NewService(client, cache, clock.NewCalendar(loc), clock.NewRealClock(), a.cfg.Auth.Username, a.logger)
	if err := a.today(ctx, daily); err != nil {
		return err
	}
	return a.swipe(ctx, client)
}

func (a *app) login(ctx context.Context, client *api.Client) error {
	auth := a.cfg.Auth
	_, err := client.Login(ctx, auth.Username, auth.Password)
	if err == nil {
		return nil
	}
	if !auth.Signup || !errs.Is(err, errs.ErrIdentityRequired) {
		return err
	}

	a.logger.Info("login rejected, trying signup", zap.String("username", auth.Username))
	if _, signupErr := client.Signup(ctx, auth.Username, auth.Password); signupErr != nil {
		if errs.Is(signupErr, errs.ErrConflict) {
			return err
		}
		return signupErr
	}
	fmt.Fprintf(a.out, "Created account %s\n", auth.Username)
	return nil
}

func (a *app) today(ctx context.Context, daily *dailydeal.Service) error {
	rec, err := daily.Today(ctx)
	if errs.Is(err, errs.ErrNotFound) {
		fmt.Fprintln(a.out, "No deal available today.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deal of the day (%s): %s\n", rec.Day, rec.Deal.Description)
	fmt.Fprintf(a.out, "Next deal in %s\n", daily.NextRefresh(time.Now()).Round(time.Minute))
	if rec.Saved {
		fmt.Fprintln(a.out, "Already saved.")
		return nil
	}

	if !a.confirm("Save it? [y/N] ") {
		return nil
	}
	if _, err := daily.Save(ctx); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err))
		return nil
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}

func (a *app) swipe(ctx context.Context, client *api.Client) error {
	queue := swipe.New(client, a.batch, a.logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for out := range queue.Outcomes() {
			if out.Err != nil {
				fmt.Fprintf(a.out, "  ! %s not claimed: %s\n", out.DealID, api.UserMessage(out.Err))
				continue
			}
			fmt.Fprintf(a.out, "  ✓ claimed %s\n", out.DealID)
		}
	}()
	defer func() {
		queue.Close()
		<-done
		fmt.Fprintf(a.out, "Claimed this session: %d\n", len(queue.Claimed()))
	}()

	if err := queue.Start(ctx); err != nil {
		return err
	}

	for {
		top, ok := queue.Top()
		if !ok {
			fmt.Fprintln(a.out, "No more deals.")
			return nil
		}

		fmt.Fprintf(a.out, "\n%s\n[y] keep  [n] skip  [q] quit > ", top.Description)
		if !a.in.Scan() {
			return a.in.Err()
		}

		var accepted bool
		switch strings.ToLower(strings.TrimSpace(a.in.Text())) {
		case "y", "yes":
			accepted = true
		case "n", "no":
		case "q", "quit":
			return nil
		default:
			continue
		}

		if err := queue.Decide(ctx, top.ID, accepted); err != nil {
			if errs.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintln(a.out, api.UserMessage(err))
		}
	}
}

func (a *app) trades(ctx context.Context, client *api.Client) error {
	budget, err := client.TradeBudget(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cancels left (%s): %d of %d\n", budget.PeriodKey, budget.Remaining, budget.Allowance)

	cursor := ""
	for {
		page, err := client.ListTrades(ctx, "", cursor, 20)
		if err != nil {
			return err
		}
		for _, t := range page.Trades {
			fmt.Fprintf(a.out, "%s  %-9s  %s:%s -> %s:%s\n",
				t.ID, t.State, t.FromUsername, t.ItemFrom, t.ToUsername, t.ItemTo)
		}
		if page.NextCursor == nil {
			return nil
		}
		cursor = *page.NextCursor
	}
}

func (a *app) confirm(prompt string) bool {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.in.Text()))
	return answer == "y" || answer == "yes"
}
