package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/powerdash/iqpack/internal/api"
	"github.com/powerdash/iqpack/internal/config"
	"github.com/powerdash/iqpack/internal/generation"
	"github.com/powerdash/iqpack/internal/llm"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/iqpack/config.json)")
	addr := flag.String("addr", "", "listen address, overrides config")
	provider := flag.String("provider", "", "LLM provider: openai, vertexai, or mock; overrides config")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *provider != "" {
		cfg.Provider = *provider
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}
	defer client.Close()

	server, err := api.New(generation.NewGenerator(client), cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Printf("Starting interview pack generator on %s (provider: %s)...\n", cfg.ListenAddr, cfg.Provider)
	fmt.Printf("Endpoints:\n")
	fmt.Printf("  GET  /                           - Role parameter form\n")
	fmt.Printf("  POST /generate                   - Generate an interview pack\n")
	fmt.Printf("  GET  /packs/{id}                 - Retrieve a generated pack\n")
	fmt.Printf("  GET  /packs/{id}/export/{format} - Download as docx, pdf, or xlsx\n")
	fmt.Printf("  GET  /health                     - Health check\n")

	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
