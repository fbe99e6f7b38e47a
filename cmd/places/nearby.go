package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/ternarybob/places/pkg/places"
	"github.com/ternarybob/places/pkg/places/models"
)

func runNearby(ctx context.Context, service *places.Service, args []string) (interface{}, error) {
	fs := flag.NewFlagSet("nearby", flag.ContinueOnError)
	lat := fs.Float64("lat", 0, "Latitude of the search centre")
	lng := fs.Float64("lng", 0, "Longitude of the search centre")
	radius := fs.Int("radius", 0, "Search radius in meters (max 50000)")
	keyword := fs.String("keyword", "", "Term matched against all indexed content")
	name := fs.String("name", "", "Term matched against place names")
	placeType := fs.String("type", "", "Restrict results to a place type")
	rankBy := fs.String("rankby", "prominence", "Result order: prominence or distance")
	minPrice := fs.String("minprice", "", "Minimum price level (free, inexpensive, moderate, expensive, very_expensive or 0-4)")
	maxPrice := fs.String("maxprice", "", "Maximum price level")
	fields := fs.String("fields", "", "Comma-separated result fields")
	pageToken := fs.String("pagetoken", "", "Fetch the page identified by a previous next_page_token")
	language := fs.String("lang", "", "Result language")
	pages := fs.Int("pages", 1, "Number of result pages to fetch")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	options := places.NewNearbySearchOptions(*lat, *lng, *radius)
	options.Keyword = *keyword
	options.Name = *name
	options.Type = *placeType
	options.Language = *language
	options.PageToken = *pageToken
	options.MinPrice = models.ParsePriceLevel(*minPrice)
	options.MaxPrice = models.ParsePriceLevel(*maxPrice)
	if *fields != "" {
		options.Fields = strings.Split(*fields, ",")
	}

	rank, ok := models.ParseRankBy(*rankBy)
	if !ok {
		return nil, fmt.Errorf("invalid rankby %q", *rankBy)
	}
	options.RankBy = rank

	first, err := service.NearbySearchWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}

	bodies, err := followPages(ctx, *pages, first.Body,
		func(b *models.NearbySearchResponseBody) string {
			if !b.HasNextPageToken() {
				return ""
			}
			return b.NextPageToken
		},
		func(ctx context.Context, token string) (*models.NearbySearchResponseBody, error) {
			resp, err := service.NearbySearchPage(ctx, token)
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
