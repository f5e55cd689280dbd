package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarmadiali98/ReLico-sub000/api"
	"github.com/sarmadiali98/ReLico-sub000/config"
)

var outDir = flag.String("out", "", "directory generated files are written to")
var debug = flag.Bool("debug", false, "generate debug output files")
var configPath = flag.String("config", "", "path to a configuration file")
var interactive = flag.Bool("i", false, "start the interactive scratchpad")

const defaultConfigFile = "relico.yaml"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: relico [flags] [model file or directory]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := loadConfig()
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *debug {
		cfg.Debug = true
	}

	if *interactive {
		repl(cfg)
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		return
	}
	path := flag.Arg(0)
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(int(api.RunFailedWithBuilder))
	}

	var result api.Result
	if info.IsDir() {
		result = api.RunDir(path, cfg)
	} else {
		result = api.Run(path, cfg)
	}

	os.Exit(int(result))
}

// loadConfig reads the configuration file named by the -config flag, or
// the default file when it exists. A missing file is only an error when
// the flag asked for it explicitly.
func loadConfig() *config.Config {
	path := *configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return config.Default()
		}
		path = defaultConfigFile
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
