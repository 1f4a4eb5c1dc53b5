// Command seedhsn converts the GST HSN/SAC Excel workbook into a SQL seed
// file for the hsn_codes table. It reads the HSN_Master_v1 (goods) and
// SAC_Master (services) sheets.
//
//	go run ./cmd/seedhsn -in workbook.xlsx -out db/seeds/hsn_codes.sql
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gstbook/internal/logger"
)

const batchSize = 500

func main() {
	in := flag.String("in", "AI Tool - GST_HSN Code summary_19.02.2025.xlsx", "path to the HSN/SAC workbook")
	out := flag.String("out", "db/seeds/hsn_codes.sql", "path of the generated SQL file")
	flag.Parse()

	log, err := logger.New(logger.Config{ServiceName: "gstbook-seedhsn", Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *in, *out); err != nil {
		log.Fatal("seed generation failed", zap.Error(err))
	}
}

func run(log *zap.Logger, xlsxPath, outPath string) error {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	set := newEntrySet()

	goodsRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read HSN sheet: %w", err)
	}
	goods := parseHSNRows(goodsRows, set)
	log.Info("parsed HSN sheet", zap.Int("entries", goods))

	serviceRows, err := f.GetRows(sacSheet)
	if err != nil {
		return fmt.Errorf("read SAC sheet: %w", err)
	}
	services := parseSACRows(serviceRows, set)
	log.Info("parsed SAC sheet", zap.Int("entries", services))

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	if err := writeSeed(w, set.entries, batchSize); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", outPath, err)
	}

	log.Info("seed file written",
		zap.String("path", outPath),
		zap.Int("entries", len(set.entries)),
		zap.Int("batches", (len(set.entries)+batchSize-1)/batchSize),
	)
	return nil
}
