package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crestline/mmr"
	"github.com/crestline/mmr/merge"
	mmrstore "github.com/crestline/mmr/store"
)

var pushCmd = &cobra.Command{
	Use:   "push <hex-payload>",
	Short: "Append a leaf to the mmr",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("mmrcli: decode payload: %w", err)
		}

		st, err := mmrstore.Open(dbPath, capacity)
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := mmr.NewBuilder(st, merge.Blake2b256, st.Size())
		if err != nil {
			return err
		}

		leaf := make(mmr.Digest, mmr.DigestWidth)
		copy(leaf, payload)
		if err := b.Push(leaf); err != nil {
			return err
		}

		logger.Info("pushed leaf", zap.Uint64("size", b.Size()))
		fmt.Println(b.Size())
		return nil
	},
}
