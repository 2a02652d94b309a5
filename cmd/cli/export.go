package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

const exportLookbackDays = 7

var now = time.Now

type exportOptions struct {
	since    string
	until    string
	preset   string
	file     string
	minSpend float64
}

func (o exportOptions) period() (utils.DateRange, error) {
	if o.preset != "" {
		period, ok := utils.PresetRange(o.preset, now())
		if !ok {
			return utils.DateRange{}, fmt.Errorf("preset desconhecido %q (use 7d, 14d ou 30d)", o.preset)
		}
		return period, nil
	}
	return utils.ParseDateRange(o.since, o.until, exportLookbackDays, now())
}

func (o exportOptions) filters() (*domain.InsightFilters, error) {
	period, err := o.period()
	if err != nil {
		return nil, err
	}
	return &domain.InsightFilters{
		Since:             period.Since,
		Until:             period.Until,
		GuardrailMinSpend: domain.DefaultGuardrailMinSpend,
		GuardrailMinLeads: domain.DefaultGuardrailMinLeads,
	}, nil
}

// write grava em --file ou na saída padrão
func (o exportOptions) write(cmd *cobra.Command, content []byte) error {
	if o.file == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := os.WriteFile(o.file, content, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", o.file)
	}

	logrus.WithFields(logrus.Fields{
		"file":  o.file,
		"bytes": len(content),
	}).Info("Exportação gravada")
	fmt.Fprintf(cmd.ErrOrStderr(), "Arquivo gravado: %s\n", o.file)
	return nil
}

func bindExportFlags(cmd *cobra.Command, o *exportOptions) {
	cmd.Flags().StringVar(&o.since, "since", "", "Data inicial (2006-01-02)")
	cmd.Flags().StringVar(&o.until, "until", "", "Data final (2006-01-02)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "Atalho de período: 7d, 14d ou 30d")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Arquivo de destino (padrão: saída padrão)")
}

func newExportCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Gera os relatórios do painel",
	}
	cmd.AddCommand(newExportCSVCmd(opts, loader), newExportLLMCmd(opts, loader))
	return cmd
}

func newExportCSVCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	o := &exportOptions{}
	var combined bool

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Relatório CSV de insights, ou combinado com o Leadspedia via --combined",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := o.filters()
			if err != nil {
				return err
			}

			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				export := a.exporter.InsightsCSV
				if combined {
					export = a.exporter.CombinedCSV
				}

				content, err := export(ctx, filters)
				if err != nil {
					return errors.Wrap(err, "erro ao gerar CSV")
				}
				return o.write(cmd, content)
			})
		},
	}

	bindExportFlags(cmd, o)
	cmd.Flags().BoolVar(&combined, "combined", false, "Inclui receita e ROI do Leadspedia")
	return cmd
}

func newExportLLMCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	o := &exportOptions{}
	var topN, bottomN int
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Relatório markdown de CPL para análise por LLM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := o.filters()
			if err != nil {
				return err
			}

			llmOpts := analysis.DefaultLLMExportOptions(filters.Since, filters.Until)
			if cmd.Flags().Changed("min-spend") {
				llmOpts.MinSpend = o.minSpend
			}
			if cmd.Flags().Changed("top") {
				llmOpts.TopN = topN
			}
			if cmd.Flags().Changed("bottom") {
				llmOpts.BottomN = bottomN
			}
			llmOpts.IncludeFullData = !summaryOnly

			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				markdown, err := a.exporter.LLMMarkdown(ctx, filters, llmOpts)
				if err != nil {
					return errors.Wrap(err, "erro ao gerar relatório para LLM")
				}
				return o.write(cmd, []byte(markdown))
			})
		},
	}

	bindExportFlags(cmd, o)
	cmd.Flags().Float64Var(&o.minSpend, "min-spend", 0, "Gasto mínimo para entrar nos rankings (padrão 250)")
	cmd.Flags().IntVar(&topN, "top", 0, "Quantidade de melhores anúncios (padrão 5)")
	cmd.Flags().IntVar(&bottomN, "bottom", 0, "Quantidade de piores anúncios (padrão 5)")
	cmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "Omite a tabela completa de anúncios")
	return cmd
}
