// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Command browse is a terminal front end for the catalog API. It drives the
// infinite-scroll controller: every filter change starts over from the first
// page and each "next" loads one more page.
//
// With -pages N it loads up to N pages and exits. Otherwise it reads
// commands from stdin:
//
//	n               load the next page
//	g <genre>       filter by genre ("All" clears)
//	s <text>        search title and description
//	l <language>    filter by language ("" clears)
//	c <country>     filter by country ("" clears)
//	y <year>        filter by year (0 clears)
//	m <rating>      minimum rating (0 clears)
//	r               reset all filters
//	o               show filter options
//	a               show catalog analytics
//	q               quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/tomtom215/cinecatalog/internal/client"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/seed"
)

func main() {
	var (
		baseURL   = flag.String("api", client.DefaultBaseURL, "catalog API base URL")
		genre     = flag.String("genre", client.AllGenres, "initial genre filter")
		search    = flag.String("search", "", "initial search text")
		language  = flag.String("language", "", "initial language filter")
		country   = flag.String("country", "", "initial country filter")
		year      = flag.Int("year", 0, "initial year filter")
		minRating = flag.Float64("min-rating", 0, "initial minimum rating")
		pages     = flag.Int("pages", 0, "load this many pages and exit; 0 for interactive")
		logLevel  = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console"})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	api := client.New(*baseURL)
	if health, err := api.Health(ctx); err != nil {
		logging.Warn().Err(err).Str("api", api.BaseURL()).Msg("Health check failed")
	} else if health.Store != "ok" {
		logging.Warn().Str("store", health.Store).Msg("Catalog store is unavailable")
	}

	filters := client.NewFilterState(client.DefaultSearchDelay)
	filters.SetGenre(*genre)
	filters.SetLanguage(*language)
	filters.SetCountry(*country)
	filters.SetYear(*year)
	filters.SetMinRating(*minRating)
	if *search != "" {
		filters.SetSearch(*search)
		filters.FlushSearch()
	}

	updates := make(chan struct{}, 1)
	ctrl := client.NewController(api, filters, client.WithOnUpdate(func(client.State) {
		select {
		case updates <- struct{}{}:
		default:
		}
	}))

	proximity := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx, proximity) }()

	out := &printer{w: os.Stdout}
	if *pages > 0 {
		autoLoad(ctx, cancel, ctrl, out, updates, proximity, *pages)
	} else {
		go interact(ctx, cancel, api, filters, proximity, os.Stdin)
		for {
			select {
			case <-ctx.Done():
				<-done
				return
			case <-updates:
				out.render(ctrl.State())
			}
		}
	}
	<-done
}

// autoLoad signals proximity whenever the controller is idle until the
// requested number of pages is loaded or the catalog runs out.
func autoLoad(ctx context.Context, cancel context.CancelFunc, ctrl *client.Controller, out *printer,
	updates <-chan struct{}, proximity chan<- struct{}, pages int) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
		}
		st := ctrl.State()
		out.render(st)
		if st.Loading {
			continue
		}
		loaded := (len(st.Items) + client.PageSize - 1) / client.PageSize
		if st.Err != "" || !st.HasMore || loaded >= pages {
			cancel()
			return
		}
		select {
		case proximity <- struct{}{}:
		case <-ctx.Done():
			return
		}
	}
}

func interact(ctx context.Context, cancel context.CancelFunc, api *client.Client, filters *client.FilterState,
	proximity chan<- struct{}, in io.Reader) {
	defer cancel()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)
		switch cmd {
		case "":
		case "n":
			select {
			case proximity <- struct{}{}:
			case <-ctx.Done():
				return
			}
		case "g":
			filters.SetGenre(arg)
		case "s":
			filters.SetSearch(arg)
		case "l":
			filters.SetLanguage(arg)
		case "c":
			filters.SetCountry(arg)
		case "y":
			n, err := strconv.Atoi(orZero(arg))
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid year %q\n", arg)
				continue
			}
			filters.SetYear(n)
		case "m":
			r, err := strconv.ParseFloat(orZero(arg), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid rating %q\n", arg)
				continue
			}
			filters.SetMinRating(r)
		case "r":
			filters.Reset()
		case "o":
			showOptions(ctx, api)
		case "a":
			showAnalytics(ctx, api)
		case "q":
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		}
	}
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func showOptions(ctx context.Context, api *client.Client) {
	opts, err := api.FilterOptions(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, client.LoadErrorMessage(err))
		return
	}
	fmt.Printf("languages: %s\n", strings.Join(opts.Languages, ", "))
	fmt.Printf("countries: %s\n", strings.Join(opts.Countries, ", "))
	years := make([]string, len(opts.Years))
	for i, y := range opts.Years {
		years[i] = strconv.Itoa(y)
	}
	fmt.Printf("years:     %s\n", strings.Join(years, ", "))
}

func showAnalytics(ctx context.Context, api *client.Client) {
	a, err := api.Analytics(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, client.LoadErrorMessage(err))
		return
	}
	if err := seed.WriteReport(os.Stdout, a); err != nil {
		logging.Error().Err(err).Msg("Failed to write analytics")
	}
}
