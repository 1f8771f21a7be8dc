package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/timebound/core"
)

var errEmptyInstance = errors.New("instance document is empty")

// valvesDoc is the YAML form of a flow network.
type valvesDoc struct {
	Start string    `yaml:"start"`
	Nodes []nodeDoc `yaml:"nodes"`
}

type nodeDoc struct {
	ID    string   `yaml:"id"`
	Rate  int      `yaml:"rate"`
	Links []string `yaml:"links"`
}

// recipesDoc is the YAML form of a batch of cookbooks sharing a target.
type recipesDoc struct {
	Target    string         `yaml:"target"`
	Initial   map[string]int `yaml:"initial"`
	Cookbooks []cookbookDoc  `yaml:"cookbooks"`
}

type cookbookDoc struct {
	ID      int         `yaml:"id"`
	Recipes []recipeDoc `yaml:"recipes"`
}

type recipeDoc struct {
	Output string         `yaml:"output"`
	Inputs map[string]int `yaml:"inputs"`
}

// decodeFile strictly decodes the YAML document at path into v.
func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w", path, errEmptyInstance)
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// loadNetwork reads a valves document. start is "" when the document does not name one.
func loadNetwork(path string) (net *core.Network, start string, err error) {
	var doc valvesDoc
	if err = decodeFile(path, &doc); err != nil {
		return nil, "", err
	}

	nodes := make([]core.Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		nodes[i] = core.Node{ID: n.ID, Rate: n.Rate, Links: n.Links}
	}
	if net, err = core.NewNetwork(nodes); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return net, doc.Start, nil
}

// loadCookbooks reads a recipes document. Map entries are applied in key order.
// Without an initial section each cookbook starts with one unit of its first
// recipe's output.
func loadCookbooks(path string) ([]*core.Cookbook, error) {
	var doc recipesDoc
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	books := make([]*core.Cookbook, 0, len(doc.Cookbooks))
	for i, cd := range doc.Cookbooks {
		recipes := make([]core.Recipe, len(cd.Recipes))
		for j, rd := range cd.Recipes {
			recipes[j].Output = rd.Output
			for _, name := range slices.Sorted(maps.Keys(rd.Inputs)) {
				recipes[j].Inputs = append(recipes[j].Inputs, core.Ingredient{Resource: name, Quantity: rd.Inputs[name]})
			}
		}

		var opts []core.CookbookOption
		for _, name := range slices.Sorted(maps.Keys(doc.Initial)) {
			opts = append(opts, core.WithInitialRate(name, doc.Initial[name]))
		}
		if len(opts) == 0 && len(recipes) > 0 {
			opts = append(opts, core.WithInitialRate(recipes[0].Output, 1))
		}

		id := cd.ID
		if id == 0 {
			id = i + 1
		}
		cb, err := core.NewCookbook(id, doc.Target, recipes, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: cookbook %d: %w", path, id, err)
		}
		books = append(books, cb)
	}

	return books, nil
}
