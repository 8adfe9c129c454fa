// Package services contains the persistence services that sit between the
// controllers and the relational database
package services

import (
	"context"
	"time"
)

// storeTimeout bounds every call made to the relational database
const storeTimeout = 5 * time.Second

func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}
