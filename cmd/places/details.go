package main

import (
	"context"
	"flag"

	"github.com/ternarybob/places/pkg/places"
)

func runDetails(ctx context.Context, service *places.Service, args []string) (interface{}, error) {
	fs := flag.NewFlagSet("details", flag.ContinueOnError)
	placeID := fs.String("id", "", "Place ID (or first positional argument)")
	language := fs.String("lang", "", "Result language")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	options := places.NewDetailsOptions(*placeID)
	if options.PlaceID == "" && fs.NArg() > 0 {
		options.PlaceID = fs.Arg(0)
	}
	options.Language = *language

	resp, err := service.GetDetailsWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
