package models

import "time"

// ClassCount pairs one class directory with the number of dataset rows
// it contributed in a build.
type ClassCount struct {
	Name  string `json:"name"`
	Label int    `json:"label"`
	Rows  int    `json:"rows"`
}

// BuildRun is one recorded dataset build: where it read from, what it
// wrote, the sample window used and the resulting table shape.
type BuildRun struct {
	ID          int64        `json:"id"`
	Timestamp   time.Time    `json:"timestamp"`
	BaseDir     string       `json:"baseDir"`
	OutputFile  string       `json:"outputFile"`
	StartSample int          `json:"startSample"`
	EndSample   int          `json:"endSample"`
	Rows        int          `json:"rows"`
	Columns     int          `json:"columns"`
	Failures    int          `json:"failures"`
	Classes     []ClassCount `json:"classes"`
}
