package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	output  string
	timeout time.Duration
	format  outputFormat
}

func newRootCmd(loader appLoader) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "leadads",
		Short: "Ferramentas de linha de comando do painel Meta Lead Ads",
		Long: `Operações locais do painel sem subir o servidor HTTP.

Subcomandos:
  cache    - estatísticas e limpeza do cache sqlite
  mappings - mapeamento de campanhas do Meta para verticais do Leadspedia
  export   - relatórios CSV e markdown para LLM
  auth     - geração do hash de DASHBOARD_PASSWORD_HASH`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", string(formatTable), "Formato de saída: table, json ou yaml")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Tempo máximo da operação")

	cmd.AddCommand(newCacheCmd(opts, loader))
	cmd.AddCommand(newMappingsCmd(opts, loader))
	cmd.AddCommand(newExportCmd(opts, loader))
	cmd.AddCommand(newAuthCmd(opts))

	return cmd
}

// withApp carrega as dependências, aplica o timeout e fecha tudo ao final
func withApp(cmd *cobra.Command, opts *rootOptions, loader appLoader, fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	a, err := loader(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
