package numerics

import (
	"encoding/csv"
	"fmt"
	"os"
	"testing"
)

func TestStreamStatesCSV(t *testing.T) {
	conf := ExportConfig{Filename: "teststream", AsCSV: true, Cols: []string{"pos", "vel"}}
	path := fmt.Sprintf("%s/%s.csv", numConfig().outputDir, conf.Filename)
	defer os.Remove(path)

	ch := make(chan State, 10)
	ch <- State{T: 0, Y: []float64{1, 0}}
	ch <- State{T: 0.5, Y: []float64{0.5, -0.5}}
	close(ch)
	StreamStates(conf, ch)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][1] != "pos" || records[0][2] != "vel" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[2][0] != "0.5" {
		t.Fatalf("unexpected time column %q", records[2][0])
	}
}

func TestStreamStatesUseless(t *testing.T) {
	// A useless config must still drain the channel so the producer never
	// blocks.
	ch := make(chan State, 1)
	ch <- State{T: 0, Y: []float64{1}}
	close(ch)
	StreamStates(ExportConfig{}, ch)
}

func TestSolveIVPExport(t *testing.T) {
	conf := ExportConfig{Filename: "testivp", AsCSV: true}
	path := fmt.Sprintf("%s/%s.csv", numConfig().outputDir, conf.Filename)
	defer os.Remove(path)

	res, err := SolveIVP(decay, 0, 1, []float64{1}, IVPConfig{Export: conf})
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus the initial state plus one row per accepted step.
	if len(records) != len(res.T)+1 {
		t.Fatalf("%d records for %d trajectory points", len(records), len(res.T))
	}
}
