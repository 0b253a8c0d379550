package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"returns-report-service/internal/dashboard"
	"returns-report-service/internal/platform/auth"
	reportshttp "returns-report-service/internal/reports/adapters/http/fiber"
	"returns-report-service/internal/reports/core/domain"

	"github.com/joho/godotenv"
)

const usage = "Usage: reportctl <show|watch|chart|token> [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	var err error
	switch os.Args[1] {
	case "show":
		err = cmdShow(os.Args[2:])
	case "watch":
		err = cmdWatch(os.Args[2:])
	case "chart":
		err = cmdChart(os.Args[2:])
	case "token":
		err = cmdToken(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n%s\n", os.Args[1], usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type viewFlags struct {
	api     *string
	token   *string
	from    *string
	to      *string
	groupBy *string
	zone    *string
	tab     *string
	kpi     *string
}

func bindViewFlags(fs *flag.FlagSet) viewFlags {
	def := dashboard.DefaultViewState(time.Now())
	return viewFlags{
		api:     fs.String("api", envOr("REPORTS_API", "http://localhost:8080"), "report API base URL"),
		token:   fs.String("token", os.Getenv("REPORTS_TOKEN"), "bearer token"),
		from:    fs.String("from", def.Filters.From, "first day (YYYY-MM-DD)"),
		to:      fs.String("to", def.Filters.To, "last day (YYYY-MM-DD)"),
		groupBy: fs.String("group-by", string(def.Filters.GroupBy), "day | week | month | year"),
		zone:    fs.String("zone", "", "zone filter"),
		tab:     fs.String("tab", string(def.Tab), "general | aisles | people | zones | detail"),
		kpi:     fs.String("kpi", def.KPI, "amount | pieces | returns"),
	}
}

// controller builds a dashboard controller that prints every update.
func (v viewFlags) controller() (*dashboard.Controller, error) {
	g, err := domain.ParseGranularity(*v.groupBy)
	if err != nil {
		return nil, err
	}
	tab, err := dashboard.ParseTab(*v.tab)
	if err != nil {
		return nil, err
	}
	kpi, err := dashboard.ParseKPI(*v.kpi)
	if err != nil {
		return nil, err
	}

	state := dashboard.ViewState{
		Filters: dashboard.Filters{From: *v.from, To: *v.to, GroupBy: g, Zone: *v.zone},
		Tab:     tab,
		KPI:     kpi,
	}

	client := dashboard.NewClient(*v.api, *v.token, 30*time.Second)
	ctrl := dashboard.NewController(client, state)
	ctrl.Subscribe(dashboard.ObserverFunc(func(s dashboard.ViewState, rep *reportshttp.ReportResponse) {
		if err := dashboard.Render(os.Stdout, s, rep); err != nil {
			log.Printf("render: %v", err)
		}
	}))
	return ctrl, nil
}

func cmdShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	v := bindViewFlags(fs)
	fs.Parse(args)

	ctrl, err := v.controller()
	if err != nil {
		return err
	}
	return ctrl.Refresh(context.Background())
}

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	v := bindViewFlags(fs)
	interval := fs.Duration("interval", time.Minute, "refresh interval")
	fs.Parse(args)

	ctrl, err := v.controller()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresh := func() {
		err := ctrl.Refresh(ctx)
		switch {
		case err == nil, errors.Is(err, context.Canceled):
		case errors.Is(err, dashboard.ErrRefreshInFlight):
			log.Println("previous refresh still running, skipping")
		default:
			log.Printf("refresh failed: %v", err)
		}
	}

	go refresh()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			go refresh()
		}
	}
}

func cmdChart(args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	v := bindViewFlags(fs)
	out := fs.String("out", "chart.png", "output PNG path")
	fs.Parse(args)

	g, err := domain.ParseGranularity(*v.groupBy)
	if err != nil {
		return err
	}

	client := dashboard.NewClient(*v.api, *v.token, 30*time.Second)
	png, err := client.FetchChart(context.Background(),
		dashboard.Filters{From: *v.from, To: *v.to, GroupBy: g, Zone: *v.zone}, *v.kpi)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	fmt.Printf("Chart written: %s\n", *out)
	return nil
}

func cmdToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	secret := fs.String("secret", os.Getenv("JWT_SECRET"), "HS256 signing key")
	subject := fs.String("sub", "operator", "token subject")
	ttl := fs.Duration("ttl", auth.TokenExpiry, "token lifetime")
	fs.Parse(args)

	if *secret == "" {
		return errors.New("a signing secret is required (-secret or JWT_SECRET)")
	}

	token, err := auth.GenerateToken(*secret, *subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
