// Package interceptor provides the unary gRPC middleware wrapped around every
// Entity RPC, grounded on the source's LoggingInterceptor: one access line
// per call naming the peer, method and resulting status.
package interceptor

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs peer address, method name and status code for
// every unary call, mirroring the one-line-per-request access log the
// source's LoggingInterceptor produces.
func LoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	addr := "unknown"
	if p, ok := peer.FromContext(ctx); ok {
		addr = p.Addr.String()
	}

	resp, err := handler(ctx, req)

	code := status.Code(err)
	if err != nil {
		logx.Errorf("%s - %q %s", addr, info.FullMethod, code)
	} else {
		logx.Infof("%s - %q %s", addr, info.FullMethod, code)
	}
	return resp, err
}
