package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voice-dataset/dataset"
	"voice-dataset/db"
	"voice-dataset/models"
	"voice-dataset/utils"
	"voice-dataset/wav"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Expected 'build' or 'runs' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		buildCommand(os.Args[2:])
	case "runs":
		runsCommand(os.Args[2:])
	default:
		fmt.Println("Expected 'build' or 'runs' subcommand")
		os.Exit(1)
	}
}

func buildCommand(args []string) {
	defaultStart := utils.GetEnvInt("DATASET_START_SAMPLE", 0)
	defaultEnd := utils.GetEnvInt("DATASET_END_SAMPLE", 100000)
	defaultOut := utils.GetEnv("DATASET_OUTPUT", "dataset.csv")
	defaultDB := utils.GetEnv("DATASET_DB", filepath.Join("db", "datasets.db"))

	buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
	baseDir := buildCmd.String("dir", "", "Base directory containing one subdirectory per class")
	classList := buildCmd.String("classes", "", "Comma-separated ordered class directories (empty: discover sorted)")
	startSample := buildCmd.Int("start", defaultStart, "First sample index of the extraction window")
	endSample := buildCmd.Int("end", defaultEnd, "One past the last sample index of the extraction window")
	outputFile := buildCmd.String("out", defaultOut, "Output CSV file")
	dbPath := buildCmd.String("db", defaultDB, "SQLite run catalog path")
	noCatalog := buildCmd.Bool("no-catalog", false, "Skip recording the run in the catalog")
	buildCmd.Parse(args)

	if *baseDir == "" {
		log.Fatal("Usage: voice-dataset build -dir <directory> [-classes a,b,c] [-start N] [-end N] [-out <file>]\n\n" +
			"Example structure:\n" +
			"  commands/\n" +
			"    abrir/\n" +
			"      rec01.wav\n" +
			"      rec02.wav\n" +
			"    fechar/\n" +
			"      rec01.wav\n" +
			"    ligar/\n" +
			"      rec01.wav\n")
	}
	if *startSample < 0 || *startSample > *endSample {
		log.Fatalf("invalid sample window [%d, %d)", *startSample, *endSample)
	}

	// Native decoders cover wav/mp3/ogg; anything else needs ffmpeg.
	if err := wav.CheckFFmpegAvailable(); err != nil {
		log.Printf("WARNING: %v\n", err)
		log.Println("Files other than WAV, MP3 and Ogg Vorbis will fail to decode until ffmpeg is installed.")
	}

	classDirs := splitClasses(*classList)
	if len(classDirs) == 0 {
		discovered, err := discoverClassDirs(*baseDir)
		if err != nil {
			log.Fatalf("failed to read directory: %v", err)
		}
		classDirs = discovered
	}
	if len(classDirs) == 0 {
		log.Fatalf("no class directories found in %s", *baseDir)
	}

	log.Printf("Building dataset from %d classes under %s (window [%d, %d))\n",
		len(classDirs), *baseDir, *startSample, *endSample)
	for i, dir := range classDirs {
		log.Printf("  label %d: %s", i, dir)
	}

	started := time.Now()
	ds, err := dataset.Build(dataset.DecoderFunc(wav.Decode), *baseDir, classDirs, *startSample, *endSample)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if err := dataset.WriteCSV(ds, *outputFile); err != nil {
		log.Fatalf("failed to write output file: %v", err)
	}

	log.Printf("✓ Wrote %d rows x %d columns (plus label) to %s in %s\n",
		ds.Rows(), ds.Window(), *outputFile, time.Since(started).Round(time.Millisecond))

	counts := ds.ClassCounts()
	log.Println("Label distribution:")
	for i, name := range ds.Classes {
		log.Printf("  %-20s: %d rows\n", name, counts[i])
	}
	if len(ds.Failures) > 0 {
		log.Printf("Skipped %d undecodable files:\n", len(ds.Failures))
		for _, failure := range ds.Failures {
			log.Printf("  %s: %v\n", failure.Path, failure.Err)
		}
	}

	if !*noCatalog {
		recordRun(ds, *baseDir, *outputFile, *dbPath)
	}
}

// recordRun stores the build in the SQLite catalog. Catalog problems
// are logged, not fatal: the dataset itself is already on disk.
func recordRun(ds *dataset.Dataset, baseDir, outputFile, dbPath string) {
	logger := utils.GetLogger()
	ctx := context.Background()

	client, err := db.NewSQLiteClient(dbPath)
	if err != nil {
		logger.ErrorContext(ctx, "failed to open run catalog", slog.Any("error", xerrors.New(err)))
		return
	}
	defer client.Close()

	counts := ds.ClassCounts()
	classes := make([]models.ClassCount, len(ds.Classes))
	for i, name := range ds.Classes {
		classes[i] = models.ClassCount{Name: name, Label: i, Rows: counts[i]}
	}

	run := &models.BuildRun{
		Timestamp:   time.Now().UTC(),
		BaseDir:     baseDir,
		OutputFile:  outputFile,
		StartSample: ds.StartSample,
		EndSample:   ds.EndSample,
		Rows:        ds.Rows(),
		Columns:     ds.Window(),
		Failures:    len(ds.Failures),
		Classes:     classes,
	}
	if _, err := client.SaveRun(run); err != nil {
		logger.ErrorContext(ctx, "failed to record run", slog.Any("error", xerrors.New(err)))
		return
	}
	log.Printf("Recorded run %d in catalog %s\n", run.ID, dbPath)
}

func runsCommand(args []string) {
	defaultDB := utils.GetEnv("DATASET_DB", filepath.Join("db", "datasets.db"))

	runsCmd := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := runsCmd.String("db", defaultDB, "SQLite run catalog path")
	limit := runsCmd.Int("n", 20, "Maximum number of runs to list")
	runsCmd.Parse(args)

	client, err := db.NewSQLiteClient(*dbPath)
	if err != nil {
		log.Fatalf("failed to open run catalog: %v", err)
	}
	defer client.Close()

	runs, err := client.ListRuns(*limit)
	if err != nil {
		log.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return
	}

	for _, run := range runs {
		fmt.Printf("#%d %s  %s -> %s  window [%d, %d)  %d rows, %d failures\n",
			run.ID, run.Timestamp.Format(time.RFC3339), run.BaseDir, run.OutputFile,
			run.StartSample, run.EndSample, run.Rows, run.Failures)
		for _, class := range run.Classes {
			fmt.Printf("    label %d %-20s: %d rows\n", class.Label, class.Name, class.Rows)
		}
	}
}

func splitClasses(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	classes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			classes = append(classes, trimmed)
		}
	}
	return classes
}

// discoverClassDirs lists the non-hidden subdirectories of rootDir in
// sorted order, so discovered classes get stable label assignments.
func discoverClassDirs(rootDir string) ([]string, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			subdirs = append(subdirs, entry.Name())
		}
	}
	return subdirs, nil
}
