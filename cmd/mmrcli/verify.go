package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crestline/mmr"
	"github.com/crestline/mmr/merge"
	"github.com/crestline/mmr/wire"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <hex-envelope> <hex-expected-root>",
	Short: "Verify a CBOR-encoded inclusion proof against an expected root",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("mmrcli: decode envelope: %w", err)
		}
		expected, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("mmrcli: decode expected root: %w", err)
		}

		envelope, err := wire.Unmarshal(data)
		if err != nil {
			return err
		}

		v := mmr.NewVerifier(merge.Blake2b256)
		got := v.ComputeProofRoot(envelope.Leaf, envelope.Pos, envelope.MMRSize, envelope.Proof)

		ok := hex.EncodeToString(got) == hex.EncodeToString(expected)
		logger.Info("verification result", zap.Bool("ok", ok))
		if !ok {
			fmt.Println("INVALID")
			return fmt.Errorf("mmrcli: proof does not match expected root")
		}
		fmt.Println("OK")
		return nil
	},
}
