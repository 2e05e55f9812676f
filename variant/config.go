package variant

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/felt/card"
	"github.com/lox/felt/hand"
	"github.com/lox/felt/table"
)

// File is the root of a variant configuration file. A file holds any
// number of variant blocks:
//
//	variant "double-board-draw" {
//	  structure  = "no-limit"
//	  hand_types = ["standard-high"]
//	  street {
//	    hole    = [false, false]
//	    min_bet = 10
//	  }
//	  street {
//	    burn    = true
//	    board   = 5
//	    min_bet = 10
//	  }
//	}
type File struct {
	Variants []Config `hcl:"variant,block"`
}

// Config describes one custom variant.
type Config struct {
	Name      string         `hcl:"name,label"`
	Code      string         `hcl:"code,optional"`
	Structure string         `hcl:"structure"`
	HandTypes []string       `hcl:"hand_types"`
	Deck      string         `hcl:"deck,optional"`
	Streets   []StreetConfig `hcl:"street,block"`
}

// StreetConfig describes one dealing and betting round.
type StreetConfig struct {
	Burn      bool   `hcl:"burn,optional"`
	Hole      []bool `hcl:"hole,optional"`
	Board     int    `hcl:"board,optional"`
	Draw      bool   `hcl:"draw,optional"`
	Opening   string `hcl:"opening,optional"`
	MinBet    int    `hcl:"min_bet"`
	MaxRaises int    `hcl:"max_raises,optional"`
}

// LoadHCL reads variant definitions from an HCL file.
func LoadHCL(filename string) ([]table.Variant, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("variant config: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decodeVariants(file.Body)
}

// ParseHCL decodes variant definitions from HCL source. The filename only
// labels diagnostics.
func ParseHCL(src []byte, filename string) ([]table.Variant, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decodeVariants(file.Body)
}

func decodeVariants(body hcl.Body) ([]table.Variant, error) {
	var file File
	if diags := gohcl.DecodeBody(body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	variants := make([]table.Variant, 0, len(file.Variants))
	for _, c := range file.Variants {
		v, err := c.Variant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Variant converts the configuration to a playable table variant.
func (c Config) Variant() (table.Variant, error) {
	structure, err := parseStructure(c.Structure)
	if err != nil {
		return table.Variant{}, fmt.Errorf("variant %s: %w", c.Name, err)
	}

	if len(c.HandTypes) == 0 {
		return table.Variant{}, fmt.Errorf("variant %s: at least one hand type is required", c.Name)
	}
	types := make([]hand.Type, len(c.HandTypes))
	for i, name := range c.HandTypes {
		t, err := hand.ParseType(name)
		if err != nil {
			return table.Variant{}, fmt.Errorf("variant %s: %w", c.Name, err)
		}
		types[i] = t
	}

	deck, err := parseDeck(c.Deck)
	if err != nil {
		return table.Variant{}, fmt.Errorf("variant %s: %w", c.Name, err)
	}

	if len(c.Streets) == 0 {
		return table.Variant{}, fmt.Errorf("variant %s: at least one street is required", c.Name)
	}
	streets := make([]table.Street, len(c.Streets))
	for i, sc := range c.Streets {
		street, err := sc.street()
		if err != nil {
			return table.Variant{}, fmt.Errorf("variant %s: street %d: %w", c.Name, i+1, err)
		}
		streets[i] = street
	}

	return table.Variant{
		Name:             c.Name,
		Code:             c.Code,
		HandTypes:        types,
		BettingStructure: structure,
		Deck:             deck,
		Streets:          streets,
	}, nil
}

func (sc StreetConfig) street() (table.Street, error) {
	opening, err := parseOpening(sc.Opening)
	if err != nil {
		return table.Street{}, err
	}
	if sc.MinBet <= 0 {
		return table.Street{}, fmt.Errorf("min_bet must be positive, got %d", sc.MinBet)
	}
	if sc.Board < 0 {
		return table.Street{}, fmt.Errorf("board count must not be negative, got %d", sc.Board)
	}
	if sc.MaxRaises < 0 {
		return table.Street{}, fmt.Errorf("max_raises must not be negative, got %d", sc.MaxRaises)
	}
	return table.Street{
		Burn:      sc.Burn,
		HoleDeal:  sc.Hole,
		BoardDeal: sc.Board,
		Draw:      sc.Draw,
		Opening:   opening,
		MinBet:    sc.MinBet,
		MaxRaises: sc.MaxRaises,
	}, nil
}

func parseStructure(name string) (table.BettingStructure, error) {
	switch name {
	case "fixed-limit":
		return table.FixedLimit, nil
	case "pot-limit":
		return table.PotLimit, nil
	case "no-limit":
		return table.NoLimit, nil
	}
	return 0, fmt.Errorf("unknown betting structure %q, want fixed-limit, pot-limit or no-limit", name)
}

func parseOpening(name string) (table.Opening, error) {
	switch name {
	case "", "position":
		return table.OpeningPosition, nil
	case "low-card":
		return table.OpeningLowCard, nil
	case "high-card":
		return table.OpeningHighCard, nil
	case "low-hand":
		return table.OpeningLowHand, nil
	case "high-hand":
		return table.OpeningHighHand, nil
	}
	return 0, fmt.Errorf("unknown opening %q", name)
}

func parseDeck(name string) (func() []card.Card, error) {
	switch name {
	case "", "standard":
		return card.StandardDeck, nil
	case "short":
		return card.ShortDeck, nil
	case "kuhn":
		return card.KuhnDeck, nil
	}
	return nil, fmt.Errorf("unknown deck %q, want standard, short or kuhn", name)
}
