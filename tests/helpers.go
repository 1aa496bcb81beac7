package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const fractalPath = "../contracts/fractal"

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// newFractalInvoker compiles and deploys the fractal contract on a fresh
// single-validator chain and returns a committee invoker for it.
func newFractalInvoker(t *testing.T) (*neotest.Executor, *neotest.ContractInvoker) {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, fractalPath, path.Join(fractalPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return e, e.CommitteeInvoker(ctr.Hash)
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}
