package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/yuehhua/gmr/eval"
	"github.com/yuehhua/gmr/internal/storage"
	jsonblob "github.com/yuehhua/gmr/internal/storage/file/json"
	"github.com/yuehhua/gmr/model"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// modelSpec is the json description of a fitted model.
type modelSpec struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind"` // gmr | regression
	Components   []componentSpec `json:"components,omitempty"`
	Coefficients []float64       `json:"coefficients,omitempty"`
	Intercept    float64         `json:"intercept,omitempty"`
	Sigma        float64         `json:"sigma,omitempty"`
}

// componentSpec describes one gaussian mixture component with diagonal covariance.
type componentSpec struct {
	Weight   float64   `json:"weight"`
	Mean     []float64 `json:"mean"`
	Variance []float64 `json:"variance"`
}

func main() {
	modelFile := flag.String("model", "", "json file describing the fitted model")
	dataFile := flag.String("data", "", "csv file with one observation per row")
	lambda := flag.Float64("lambda", eval.DefaultLambda, "log-likelihood weight for aic/bic")
	store := flag.Bool("store", false, "persist the evaluation report")
	flag.Parse()

	if *modelFile == "" || *dataFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	spec, err := readModel(*modelFile)
	if err != nil {
		panic(fmt.Sprintf("could not read model : %+v", err))
	}

	data, err := readData(*dataFile)
	if err != nil {
		panic(fmt.Sprintf("could not read data : %+v", err))
	}

	var report eval.Report
	switch spec.Kind {
	case "gmr":
		m, err := buildGMR(spec)
		if err != nil {
			panic(fmt.Sprintf("could not build mixture model : %+v", err))
		}
		report = eval.EvaluateGMR(spec.Name, m, data, eval.WithLambda(*lambda))
	case "regression":
		m := model.NewRegression(spec.Coefficients, spec.Intercept, spec.Sigma)
		// the last csv column holds the regression target
		x, y := split(data)
		report, err = eval.EvaluateRegression(spec.Name, m, x, y, eval.WithLambda(*lambda))
		if err != nil {
			panic(fmt.Sprintf("could not evaluate regression model : %+v", err))
		}
	default:
		panic(fmt.Sprintf("unknown model kind '%s'", spec.Kind))
	}

	log.Info().
		Str("id", report.ID).
		Str("model", report.Model).
		Int("samples", report.Samples).
		Float64("loglikelihood", report.LogLikelihood).
		Float64("aic", report.AIC).
		Float64("bic", report.BIC).
		Msg("evaluation report")

	if *store {
		blob := jsonblob.NewJSONBlob(storage.ReportsDir, spec.Kind)
		key := storage.Key{Model: report.Model, Label: report.ID}
		if err := blob.Store(key, report); err != nil {
			log.Error().Err(err).Str("id", report.ID).Msg("could not store report")
			os.Exit(1)
		}
		log.Info().Str("path", key.Path()).Msg("stored report")
	}
}

func readModel(path string) (modelSpec, error) {
	var spec modelSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("could not read file '%s': %w", path, err)
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("could not unmarshal model: %w", err)
	}
	return spec, nil
}

func readData(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no observations in '%s'", path)
	}

	n := len(records)
	d := len(records[0])
	values := make([]float64, 0, n*d)
	for i, record := range records {
		if len(record) != d {
			return nil, fmt.Errorf("inconsistent row %d : %d vs %d", i, len(record), d)
		}
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse value '%s' at row %d: %w", field, i, err)
			}
			values = append(values, v)
		}
	}
	return mat.NewDense(n, d, values), nil
}

func buildGMR(spec modelSpec) (*model.GMR, error) {
	components := make([]model.Distribution, len(spec.Components))
	weights := make([]float64, len(spec.Components))
	for i, c := range spec.Components {
		if len(c.Variance) != len(c.Mean) {
			return nil, fmt.Errorf("inconsistent component %d : %d vs %d", i+1, len(c.Variance), len(c.Mean))
		}
		weights[i] = c.Weight
		if len(c.Mean) == 1 {
			components[i] = model.NewNormal(c.Mean[0], math.Sqrt(c.Variance[0]))
			continue
		}
		cov := mat.NewSymDense(len(c.Mean), nil)
		for j, v := range c.Variance {
			cov.SetSym(j, j, v)
		}
		normal, ok := distmv.NewNormal(c.Mean, cov, nil)
		if !ok {
			return nil, fmt.Errorf("covariance of component %d is not positive definite", i+1)
		}
		components[i] = normal
	}
	return model.NewGMR(components, weights)
}

func split(data *mat.Dense) (mat.Matrix, []float64) {
	n, d := data.Dims()
	y := make([]float64, n)
	mat.Col(y, d-1, data)
	return data.Slice(0, n, 0, d-1), y
}
