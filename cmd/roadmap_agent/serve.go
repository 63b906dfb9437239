package main

import (
	"fmt"

	"github.com/AlenSaijo/career-roadmap-generator/internal/config"
	"github.com/AlenSaijo/career-roadmap-generator/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for report generation, resume uploads, skill quizzes, interview questions and salary prediction.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = loaded
	}

	// Config file values fill in whatever the flags leave at their
	// defaults; an explicit --port flag wins over the file.
	merged := fileCfg.MergeWithDefaults(config.Config{Port: servePort})
	if cmd.Flags().Changed("port") {
		merged.Port = servePort
	}

	cfg := server.Config{
		Port:           merged.Port,
		HoursPerDay:    merged.HoursPerDay,
		FutureCategory: merged.FutureSkillsCategory,
		SchemaPath:     merged.ReportSchema,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
