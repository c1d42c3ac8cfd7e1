package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crestline/mmr"
	"github.com/crestline/mmr/merge"
	mmrstore "github.com/crestline/mmr/store"
)

var rootValueCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the current mmr root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := mmrstore.Open(dbPath, capacity)
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := mmr.NewBuilder(st, merge.Blake2b256, st.Size())
		if err != nil {
			return err
		}
		root, err := b.Root()
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(root))
		return nil
	},
}
