package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"owlplanner/internal/catalog"
	"owlplanner/internal/logger"
	"owlplanner/internal/scraper"
)

var scrapeSubjects string

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the course catalog into the catalog CSV",
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeSubjects, "subjects", "", "comma-separated subject codes to scrape (default: the full known list)")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	log := logger.New("scraper")

	subjects := scraper.DefaultSubjects()
	if scrapeSubjects != "" {
		subjects = strings.Split(strings.ToUpper(scrapeSubjects), ",")
		for i := range subjects {
			subjects[i] = strings.TrimSpace(subjects[i])
		}
	}

	log.Infof("scraping %v subjects", len(subjects))
	rows := scraper.New(cfg.Scraper, log).All(subjects)
	if len(rows) == 0 {
		return fmt.Errorf("no course data scraped")
	}

	file, err := os.Create(cfg.Catalog.CSVPath)
	if err != nil {
		return fmt.Errorf("create catalog csv: %w", err)
	}
	defer file.Close()

	if err := catalog.WriteRows(file, rows); err != nil {
		return err
	}
	log.Infof("wrote %v meeting rows to %v", len(rows), cfg.Catalog.CSVPath)
	return nil
}
