package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"meeting-minutes/internal/transcription"
	"meeting-minutes/pkg/openai"
)

// translateError maps a provider failure onto the domain taxonomy. stage is
// the sentinel used when nothing more specific applies.
func translateError(ctx context.Context, err, stage error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsQuota():
			return fmt.Errorf("%w: %s", transcription.ErrUpstreamQuota, apiErr.Message)
		case apiErr.IsAuth():
			return fmt.Errorf("%w: %s", transcription.ErrUpstreamAuth, apiErr.Message)
		}
		return fmt.Errorf("%w: %s", stage, apiErr.Message)
	}

	if isConnectivity(err) {
		return fmt.Errorf("%w: %v", transcription.ErrUpstreamUnavailable, err)
	}

	return fmt.Errorf("%w: %v", stage, err)
}

// isConnectivity reports DNS failures and refused connections.
func isConnectivity(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
