// Copyright (c) 2026 Caleb Doyle.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"modernc.org/sqlite"

	"github.com/calebds/worldquery/models"
)

var registerOnce sync.Once

// registerFunctions installs gdp_band as a deterministic scalar
// function on the sqlite driver. Registration is process-global, hence
// the Once.
func registerFunctions() {
	registerOnce.Do(func() {
		sqlite.MustRegisterDeterministicScalarFunction("gdp_band", 1,
			func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case int64:
					return models.GDPBand(float64(v)), nil
				case float64:
					return models.GDPBand(v), nil
				case nil:
					return nil, nil
				default:
					return nil, fmt.Errorf("gdp_band: unsupported argument type %T", args[0])
				}
			})
	})
}
