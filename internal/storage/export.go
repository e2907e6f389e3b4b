package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/physlab/internal/dynamo"
)

type ExportData struct {
	Study      string             `json:"study"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, study, integrator string, dt, duration float64, result *dynamo.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, study, integrator, dt, duration, result)
}

func ExportJSONStdout(study, integrator string, dt, duration float64, result *dynamo.Result) error {
	return writeJSON(os.Stdout, study, integrator, dt, duration, result)
}

func writeJSON(w io.Writer, study, integrator string, dt, duration float64, result *dynamo.Result) error {
	data := ExportData{
		Study:      study,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      len(result.Times),
		Times:      result.Times,
		States:     make([][]float64, len(result.States)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.States {
		data.States[i] = s
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
