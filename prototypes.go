// Package prototypes runs named queries over small in-memory datasets.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/prototypes/datasets"
//	    "github.com/spektr-org/prototypes/engine"
//	    "github.com/spektr-org/prototypes/prompts"
//	)
//
//	set := datasets.MustLoad()
//	catalog := prompts.New(set).Catalog()
//
//	q, _ := catalog.Lookup("cakes.totalInventory")
//	result, err := engine.Execute(ctx, q)
//
// Datasets are YAML fixtures embedded in the binary and validated against
// the schema package on load. Queries never mutate the records they read.
// The engine never calls any external service; all computation is local.
package prototypes
