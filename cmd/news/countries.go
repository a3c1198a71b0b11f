package main

import (
	"fmt"

	// Packages
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	table "github.com/mutablelogic/go-news/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CountriesCommand struct{}

type countryTable []newsapi.Country

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CountriesCommand) Run(ctx *Globals) error {
	_, err := fmt.Fprintln(ctx.stdout, table.RenderWidth(countryTable(newsapi.Countries()), ctx.width))
	return err
}

///////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (t countryTable) Header() []string {
	return []string{"Code", "Country"}
}

func (t countryTable) Len() int {
	return len(t)
}

func (t countryTable) Row(i int) []any {
	return []any{table.Bold{Value: t[i].String()}, t[i].Name()}
}
