package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

var errInvalidOutput = errors.New("formato de saída inválido")

func parseFormat(raw string) (outputFormat, error) {
	switch f := outputFormat(raw); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", errors.Wrapf(errInvalidOutput, "%q (use table, json ou yaml)", raw)
}

// render escreve v como JSON ou YAML, ou delega a tabela para table
func render(w io.Writer, format outputFormat, v any, table func(tw *tabwriter.Writer)) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "erro ao serializar saída em JSON")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "erro ao serializar saída em YAML")
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
