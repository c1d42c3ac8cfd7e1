package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbPath   string
	capacity uint64
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mmrcli",
	Short: "mmrcli manages a Merkle Mountain Range store",
	Long:  "mmrcli is a demonstration CLI over a bbolt-backed mmr: push leaves, print the root, generate and verify inclusion proofs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("mmrcli: init logger: %w", err)
		}
		loadConfig(!cmd.Flags().Changed("db"), !cmd.Flags().Changed("capacity"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "mmr.db", "path to the bbolt-backed mmr store")
	rootCmd.PersistentFlags().Uint64Var(&capacity, "capacity", 1<<20, "maximum node count the store can hold")

	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rootValueCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
