package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nguyenvandai202/sodoku-solver/internal/adapters/rest"
	"github.com/nguyenvandai202/sodoku-solver/internal/generator"
	"github.com/nguyenvandai202/sodoku-solver/internal/hint"
	"github.com/nguyenvandai202/sodoku-solver/internal/infrastructure/storage"
	"github.com/nguyenvandai202/sodoku-solver/internal/usecase"
	"github.com/nguyenvandai202/sodoku-solver/internal/validator"
)

func newServeCommand() *cobra.Command {
	var (
		addr       string
		persist    string
		solverKind string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			// wire providers → use cases → REST adapter
			s := pickSolver(solverKind)
			uc := usecase.NewService(
				s,
				generator.NewUniqueGenerator(s),
				validator.New(),
				hint.NewSingles(),
				storage.NewFS(persist),
			)

			e := gin.Default()
			rest.New(uc).Register(e)

			log.Info().
				Str("addr", addr).
				Str("persist", persist).
				Str("solver", solverKind).
				Msg("listening")
			return e.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&solverKind, "solver", "constraint", "solver to use: constraint|backtrack")
	return cmd
}
