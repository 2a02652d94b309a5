package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
)

type hashResult struct {
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Hash     string `json:"hash" yaml:"hash"`
}

func newAuthCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Utilitários da senha do painel",
	}

	var generate int
	hash := &cobra.Command{
		Use:   "hash-password [senha]",
		Short: "Gera o valor de DASHBOARD_PASSWORD_HASH",
		Long: `Gera o hash bcrypt da senha do painel.

Com --generate N uma senha forte de N caracteres é criada e exibida junto com o hash.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := hashResult{}

			switch {
			case generate > 0:
				password, err := authenticating.GenerateStrongPassword(generate)
				if err != nil {
					return errors.Wrap(err, "erro ao gerar senha")
				}
				result.Password = password
			case len(args) == 1:
				result.Password = args[0]
			default:
				return errors.New("informe a senha ou use --generate")
			}

			hashed, err := authenticating.HashPassword(result.Password)
			if err != nil {
				return err
			}
			result.Hash = hashed

			// senha informada pelo usuário não volta para a saída
			if generate <= 0 {
				result.Password = ""
			}

			return render(cmd.OutOrStdout(), opts.format, result, func(tw *tabwriter.Writer) {
				if result.Password != "" {
					fmt.Fprintf(tw, "Senha:\t%s\n", result.Password)
				}
				fmt.Fprintf(tw, "DASHBOARD_PASSWORD_HASH:\t%s\n", result.Hash)
			})
		},
	}
	hash.Flags().IntVar(&generate, "generate", 0, "Gera uma senha forte com N caracteres")

	cmd.AddCommand(hash)
	return cmd
}
