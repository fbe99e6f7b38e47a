package main

import (
	"context"
	"flag"

	"github.com/ternarybob/places/pkg/places"
	"github.com/ternarybob/places/pkg/places/models"
)

func runText(ctx context.Context, service *places.Service, args []string) (interface{}, error) {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	query := fs.String("query", "", "Text query (or remaining positional arguments)")
	lat := fs.Float64("lat", 0, "Latitude to bias results around")
	lng := fs.Float64("lng", 0, "Longitude to bias results around")
	radius := fs.Int("radius", 0, "Bias radius in meters (max 50000)")
	placeType := fs.String("type", "", "Restrict results to a place type")
	minPrice := fs.String("minprice", "", "Minimum price level")
	maxPrice := fs.String("maxprice", "", "Maximum price level")
	pageToken := fs.String("pagetoken", "", "Fetch the page identified by a previous next_page_token")
	language := fs.String("lang", "", "Result language")
	pages := fs.Int("pages", 1, "Number of result pages to fetch")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	options := places.NewTextSearchOptionsAt(*query, *lat, *lng, *radius)
	if options.Query == "" && fs.NArg() > 0 {
		options.Query = joinArgs(fs.Args())
	}
	options.Type = *placeType
	options.Language = *language
	options.PageToken = *pageToken
	options.MinPrice = models.ParsePriceLevel(*minPrice)
	options.MaxPrice = models.ParsePriceLevel(*maxPrice)

	first, err := service.TextSearchWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}

	// Follow-up pages repeat the query and location alongside the token.
	bodies, err := followPages(ctx, *pages, first.Body,
		func(b *models.TextSearchResponseBody) string {
			if !b.HasNextPageToken() {
				return ""
			}
			return b.NextPageToken
		},
		func(ctx context.Context, token string) (*models.TextSearchResponseBody, error) {
			next := *options
			next.PageToken = token
			resp, err := service.TextSearchWithOptions(ctx, &next)
			if err != nil {
				return nil, err
			}
			return resp.Body, nil
		})
	if err != nil {
		return nil, err
	}
	if len(bodies) == 1 {
		return bodies[0], nil
	}
	return bodies, nil
}
