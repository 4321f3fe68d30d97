// Copyright 2026 The WordCrack Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcrack server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

WordCrack segments unspaced text into words with a Viterbi pass over a
unigram word model, cracks Caesar shift ciphers with a letter-bigram
scorer, and cracks general alphabet-permutation ciphers with a
best-first search over partial letter mappings. It can operate as a
MessagePack IPC server for integration with other tooling, or as a CLI
application for testing and debugging.

Models are trained at startup from a plain-text corpus and, optionally,
a dictionary of ranked words. Both sources feed the same unigram word
model; the corpus additionally trains the bigram models the cipher
decoders and the generator run on.

# Usage

Start the server with a training corpus:

	wordcrack -corpus corpus.txt

Add a chunked dictionary and enable debug mode:

	wordcrack -corpus corpus.txt -data /path/to/chunks -d

Run in CLI mode for interactive testing:

	wordcrack -corpus corpus.txt -c

The data directory should contain chunked binary files named
dict_0001.bin, dict_0002.bin, etc. A plain word-frequency text file can
be supplied with -dict instead.

# Configuration

Runtime configuration is managed through a TOML file that supports
model parameters, server limits, and CLI defaults:

	[model]
	default_probability = 1e-9
	ngram_order = 2
	generate_length = 20

	[server]
	max_text_len = 4096
	max_limit = 64

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a segmentation request:

	{"id": "req1", "op": "segment", "t": "itwasthebest"}

Receive the word sequence with its probability:

	{"id": "req1", "w": ["it", "was", "the", "best"], "p": 2.1e-11, "tt": 85}

Cipher requests use the same envelope with op set to "shift", "perm" or
"rot13"; "generate" takes an optional length in "l".

# Server Mode

The default mode starts a MessagePack IPC server that processes
requests from stdin and writes responses to stdout.

	srv := server.NewServer(engine, appConfig)
	err := srv.Start()

The server handles request parsing, validation against the configured
limits, and response formatting.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging.
Plain lines are segmented; slash commands route to the decoders and the
generator.

	inputHandler := cli.NewInputHandler(engine, maxTextLen, genLength)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new
features before deploying to server mode.

# Command Line Flags

The following flags control application behavior:

	-corpus string
	    Plain-text training corpus (required)
	-data string
	    Directory containing binary dictionary chunk files
	-dict string
	    Word-frequency text file merged into the word model
	-config string
	    Config file path (default "wordcrack.toml")
	-n int
	    N-gram order for the generator model (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordcrack/internal/cli"
	"github.com/bastiangx/wordcrack/pkg/config"
	"github.com/bastiangx/wordcrack/pkg/dictionary"
	"github.com/bastiangx/wordcrack/pkg/model"
	"github.com/bastiangx/wordcrack/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordcrack"
	gh      = "https://github.com/bastiangx/wordcrack"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to train the models and spawn the server
// or CLI input loop. main() does not implement logic for them and only
// manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "", "Plain-text training corpus")
	binaryDir := flag.String("data", "", "Directory containing binary dictionary chunks")
	dictPath := flag.String("dict", "", "Word-frequency text file")
	configPath := flag.String("config", "wordcrack.toml", "Config file path")
	ngramOrder := flag.Int("n", defaults.Model.NgramOrder, "N-gram order for the generator model")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", *configPath)

	if *corpusPath == "" {
		log.Fatal("No training corpus given, use -corpus <file>")
	}
	raw, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	corpus := string(raw)
	tokens := model.Words(corpus)
	log.Debugf("Corpus: %d words from (%s)", len(tokens), *corpusPath)

	engine := buildEngine(appConfig, corpus, tokens, *ngramOrder, *binaryDir, *dictPath)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, appConfig.Server.MaxTextLen, appConfig.CLI.DefaultGenerateLength)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(*corpusPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildEngine trains the models every mode runs on. The word model
// merges the corpus with any dictionary sources; the chain model is
// corpus only.
func buildEngine(cfg *config.Config, corpus string, tokens []string, order int, binaryDir, dictPath string) *server.Engine {
	words := model.NewUnigramWordModel(tokens, cfg.Model.DefaultProbability)

	if binaryDir != "" || dictPath != "" {
		lexicon := dictionary.NewLexicon()
		if binaryDir != "" {
			if err := lexicon.LoadDir(binaryDir); err != nil {
				log.Fatalf("Failed to load dictionary chunks: %v", err)
			}
		}
		if dictPath != "" {
			if err := lexicon.LoadTextFile(dictPath); err != nil {
				log.Fatalf("Failed to load dictionary file: %v", err)
			}
		}
		log.Debugf("Dictionary: %d words", lexicon.Len())
		lexicon.Visit(func(word string, frequency int) {
			words.AddN(word, frequency)
		})
	}

	chain := model.NewNgramModel(order, model.WordTokens, 0)
	chain.AddSequence(tokens)

	return &server.Engine{Words: words, Chain: chain, Training: corpus}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordCrack ] Segments mashed text and cracks toy ciphers!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(corpusPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" WordCrack ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("corpus: ( %s )", corpusPath)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
