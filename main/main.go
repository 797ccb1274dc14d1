package main

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/rawbytedev/tinystr"
)

// Small demo: decode a TOML document straight into inline fixed-capacity
// labels. The whole config is one flat allocation; oversized values are
// rejected at decode time instead of being truncated.
type serviceConfig struct {
	Name   tinystr.String[[16]byte] `toml:"name"`
	Region tinystr.String[[8]byte]  `toml:"region"`
	Tier   tinystr.String[[4]byte]  `toml:"tier"`
}

const doc = `
name = "edge-router"
region = "eu-west"
tier = "prod"
`

func main() {
	var cfg serviceConfig
	if err := toml.Unmarshal([]byte(doc), &cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("service %s region %s tier %s (tier full: %v)",
		&cfg.Name, &cfg.Region, &cfg.Tier, cfg.Tier.IsFull())

	if err := cfg.Region.TryAppend("-extra"); err != nil {
		log.Printf("append rejected, value unchanged: %v", err)
	}
}
