package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/fractal-contract/rpc/fractal"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractID := flag.Int("id", 1, "ID of the deployed Fractal contract")
	contractHash := flag.String("hash", "", "Hash of the deployed Fractal contract (overrides -id)")
	outPath := flag.String("out", "", "Output file for the storage dump (default stdout)")

	flag.Parse()

	if *neoRPCEndpoint == "" {
		log.Fatal("missing Neo RPC endpoint")
	}

	err := _dump(*neoRPCEndpoint, *contractID, *contractHash, *outPath)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contractID int, contractHash, outPath string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	var h util.Uint160
	if contractHash != "" {
		h, err = util.Uint160DecodeStringLE(contractHash)
		if err != nil {
			return fmt.Errorf("decode contract hash: %w", err)
		}
	} else {
		h, err = fractal.InferHash(b.rpc, int32(contractID))
		if err != nil {
			return fmt.Errorf("infer contract hash by ID %d: %w", contractID, err)
		}
	}

	reader := fractal.NewReader(b.actor, h)

	sym, err := reader.Symbol()
	if err != nil {
		return fmt.Errorf("get contract symbol: %w", err)
	}

	total, err := reader.TotalSupply()
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	log.Printf("Dumping contract %s ('%s', total supply %s) at block #%d...\n",
		h.StringLE(), sym, total, b.currentBlock)

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}

		defer out.Close()
	}

	enc := json.NewEncoder(out)

	return b.iterateContractStorage(h, func(key, value []byte) error {
		return enc.Encode(storageItem{
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
	})
}
