package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crestline/mmr"
	"github.com/crestline/mmr/merge"
	mmrstore "github.com/crestline/mmr/store"
	"github.com/crestline/mmr/wire"
)

var proveCmd = &cobra.Command{
	Use:   "prove <leaf-index>",
	Short: "Generate an inclusion proof for a leaf and print its CBOR envelope as hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leafIndex, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("mmrcli: parse leaf index: %w", err)
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

		_, pos := mmr.SizePosOfLeaf(leafIndex)
		leaf, err := st.Get(pos)
		if err != nil {
			return err
		}

		buf := make([]mmr.Digest, 64)
		n, err := b.GenProof(pos, buf)
		if err != nil {
			return err
		}

		envelope := wire.Envelope{Leaf: leaf, Pos: pos, MMRSize: b.Size(), Proof: buf[:n]}
		data, err := wire.Marshal(envelope)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(data))
		return nil
	},
}
