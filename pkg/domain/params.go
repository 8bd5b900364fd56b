package domain

import (
	"context"
)

// URLParamFn returns a named path parameter of the current request, such
// as the migration function in /2015-03-31/functions/{functionName}/invocations.
// The invoke endpoint reads the function name through it so that it does
// not import the router.
type URLParamFn func(ctx context.Context, name string) string
