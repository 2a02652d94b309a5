package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// defaultPruneMaxAge vale quando nem a flag nem CACHE_PRUNE_MAX_AGE estão definidas
const defaultPruneMaxAge = 7 * 24 * time.Hour

type pruneResult struct {
	Removed int64  `json:"removed" yaml:"removed"`
	MaxAge  string `json:"max_age" yaml:"max_age"`
}

func newCacheCmd(opts *rootOptions, loader appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Gerencia o cache sqlite das respostas do Meta e do Leadspedia",
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Mostra quantidade de entradas e idade do cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				s, err := a.cache.Stats(ctx)
				if err != nil {
					return errors.Wrap(err, "erro ao ler estatísticas do cache")
				}
				return render(cmd.OutOrStdout(), opts.format, s, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "ENTRADAS\tMAIS ANTIGA\tMAIS RECENTE")
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Entries, formatTime(s.Oldest), formatTime(s.Newest))
				})
			})
		},
	}

	var maxAge time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove entradas mais antigas que --max-age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, loader, func(ctx context.Context, a *app) error {
				age := maxAge
				if age <= 0 {
					age = a.cfg.CachePrune.MaxAge
				}
				if age <= 0 {
					age = defaultPruneMaxAge
				}

				removed, err := a.cache.Prune(ctx, age)
				if err != nil {
					return errors.Wrap(err, "erro ao limpar o cache")
				}

				logrus.WithFields(logrus.Fields{
					"removed": removed,
					"max_age": age.String(),
				}).Debug("Cache limpo")

				result := pruneResult{Removed: removed, MaxAge: age.String()}
				return render(cmd.OutOrStdout(), opts.format, result, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "REMOVIDAS\tIDADE MÁXIMA")
					fmt.Fprintf(tw, "%d\t%s\n", result.Removed, result.MaxAge)
				})
			})
		},
	}
	prune.Flags().DurationVar(&maxAge, "max-age", 0, "Idade máxima das entradas (padrão: CACHE_PRUNE_MAX_AGE)")

	cmd.AddCommand(stats, prune)
	return cmd
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
