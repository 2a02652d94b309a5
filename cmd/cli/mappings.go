package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

var errMappingNotFound = errors.New("mapeamento não encontrado")

func newMappingsCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mappings",
		Aliases: []string{"mapping"},
		Short:   "Mapeia campanhas do Meta para verticais do Leadspedia",
	}

	cmd.AddCommand(
		newMappingsListCmd(opts, loader),
		newMappingsAddCmd(opts, loader),
		newMappingsRemoveCmd(opts, loader),
		newMappingsSetAffiliateCmd(opts, loader),
	)
	return cmd
}

func newMappingsListCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista os mapeamentos salvos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				cfg := a.mappings.Load()
				return render(cmd.OutOrStdout(), opts.format, cfg, func(tw *tabwriter.Writer) {
					writeMappingsTable(tw, cfg)
				})
			})
		},
	}
}

func writeMappingsTable(tw *tabwriter.Writer, cfg *domain.CampaignConfig) {
	defaultVertical := ""
	if cfg.DefaultVerticalID != nil {
		defaultVertical = *cfg.DefaultVerticalID
	}

	fmt.Fprintf(tw, "Afiliado:\t%s\n", orDash(cfg.AffiliateID))
	fmt.Fprintf(tw, "Vertical padrão:\t%s\n", orDash(defaultVertical))
	fmt.Fprintf(tw, "Metas padrão:\tvenda %.1f%% / ROI %.1f%%\n\n", cfg.DefaultMinSellRate, cfg.DefaultMinROI)

	fmt.Fprintln(tw, "CAMPANHA\tNOME\tVERTICAL\tNOME DA VERTICAL\tVENDA MÍN.\tROI MÍN.")
	for _, m := range cfg.Mappings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.1f\n",
			m.MetaCampaignID, orDash(m.MetaCampaignName), m.VerticalID, orDash(m.VerticalName), m.MinSellRate, m.MinROI)
	}
}

func newMappingsAddCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	var name, verticalName string
	var minSellRate, minROI float64

	cmd := &cobra.Command{
		Use:   "add <meta_campaign_id> <vertical_id>",
		Short: "Cria ou substitui o mapeamento de uma campanha",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID := strings.TrimSpace(args[0])
			verticalID := strings.TrimSpace(args[1])
			if campaignID == "" || verticalID == "" {
				return errors.New("meta_campaign_id e vertical_id são obrigatórios")
			}

			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				current := a.mappings.Load()
				mapping := domain.CampaignVerticalMapping{
					MetaCampaignID:   campaignID,
					MetaCampaignName: name,
					VerticalID:       verticalID,
					VerticalName:     verticalName,
					MinSellRate:      current.DefaultMinSellRate,
					MinROI:           current.DefaultMinROI,
				}
				if cmd.Flags().Changed("min-sell-rate") {
					mapping.MinSellRate = minSellRate
				}
				if cmd.Flags().Changed("min-roi") {
					mapping.MinROI = minROI
				}

				if err := a.mappings.AddMapping(mapping); err != nil {
					return errors.Wrap(err, "erro ao salvar mapeamento")
				}

				return render(cmd.OutOrStdout(), opts.format, mapping, func(tw *tabwriter.Writer) {
					fmt.Fprintf(tw, "Campanha %s mapeada para a vertical %s\n", mapping.MetaCampaignID, mapping.VerticalID)
				})
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Nome da campanha no Meta")
	cmd.Flags().StringVar(&verticalName, "vertical-name", "", "Nome da vertical no Leadspedia")
	cmd.Flags().Float64Var(&minSellRate, "min-sell-rate", 0, "Taxa mínima de venda em % (padrão: o valor salvo)")
	cmd.Flags().Float64Var(&minROI, "min-roi", 0, "ROI mínimo em % (padrão: o valor salvo)")
	return cmd
}

func newMappingsRemoveCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <meta_campaign_id>",
		Aliases: []string{"rm"},
		Short:   "Remove o mapeamento de uma campanha",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				removed, err := a.mappings.RemoveMapping(args[0])
				if err != nil {
					return errors.Wrap(err, "erro ao remover mapeamento")
				}
				if !removed {
					return errors.Wrapf(errMappingNotFound, "campanha %s", args[0])
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Mapeamento da campanha %s removido\n", args[0])
				return nil
			})
		},
	}
}

func newMappingsSetAffiliateCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "set-affiliate <affiliate_id>",
		Short: "Define o afiliado usado nas consultas de leads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				affiliateID := strings.TrimSpace(args[0])
				if err := a.mappings.SetAffiliateID(affiliateID); err != nil {
					return errors.Wrap(err, "erro ao salvar afiliado")
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Afiliado definido: %s\n", affiliateID)
				return nil
			})
		},
	}
}
