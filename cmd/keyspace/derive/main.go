package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/derivation"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	JSON bool `long:"json" env:"KEYSPACE_DERIVE_JSON" description:"print addresses as JSON"`
	Args struct {
		Keys []string `positional-arg-name:"hex-key" required:"1"`
	} `positional-args:"yes"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("derive failed", zap.Error(err))
	}
}

type derived struct {
	PrivateKey string   `json:"privateKey"`
	Addresses  []string `json:"addresses"`
}

func run(cfg config, logger *zap.Logger) error {
	engine, err := derivation.NewEngine(derivation.DefaultRegistry(), logger.Named("derivation"))
	if err != nil {
		return fmt.Errorf("init derivation engine: %w", err)
	}

	out := make([]derived, 0, len(cfg.Args.Keys))
	for _, raw := range cfg.Args.Keys {
		key, err := model.ParseHex(raw)
		if err != nil {
			return err
		}
		addrs := engine.Derive(key)
		d := derived{PrivateKey: model.FormatHex(key), Addresses: make([]string, 0, len(addrs))}
		for _, a := range addrs {
			d.Addresses = append(d.Addresses, a.FullAddressPretty())
		}
		out = append(out, d)
	}

	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, d := range out {
		fmt.Println(d.PrivateKey)
		for _, a := range d.Addresses {
			fmt.Println("   " + a)
		}
	}
	return nil
}
