package numerics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

const timestampFormat = "2006-01-02-15.04.05"

// ExportConfig configures the trajectory export.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	Timestamp bool
	Cols      []string // optional state column names, y0..yN otherwise
}

// IsUseless returns whether this configuration will output anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV || c.Filename == ""
}

// State is one trajectory sample streamed to the exporter.
type State struct {
	T float64
	Y []float64
}

// StreamStates streams the output of the channel to a CSV file under the
// configured output directory. It returns once the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan State) {
	if conf.IsUseless() {
		for range stateChan {
		}
		return
	}
	name := conf.Filename
	if conf.Timestamp {
		name += "-" + time.Now().Format(timestampFormat)
	}
	f, err := os.Create(fmt.Sprintf("%s/%s.csv", numConfig().outputDir, name))
	if err != nil {
		panic(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	wroteHeader := false
	for state := range stateChan {
		if !wroteHeader {
			header := []string{"t"}
			if len(conf.Cols) == len(state.Y) {
				header = append(header, conf.Cols...)
			} else {
				for i := range state.Y {
					header = append(header, fmt.Sprintf("y%d", i))
				}
			}
			w.Write(header)
			wroteHeader = true
		}
		record := make([]string, 1+len(state.Y))
		record[0] = strconv.FormatFloat(state.T, 'g', -1, 64)
		for i, v := range state.Y {
			record[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		w.Write(record)
	}
}
