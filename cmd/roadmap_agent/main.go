// Package main provides the entry point for the Career Roadmap Generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap_agent",
	Short: "Career Roadmap Generator",
	Long:  "Career Roadmap Generator compares a resume against a job description and produces a qualification assessment, skill gaps, a 30-day study roadmap, interview questions and a salary estimate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
