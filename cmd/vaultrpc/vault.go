package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	"github.com/smswithoutborders/vault-server/internal/config"
	"github.com/smswithoutborders/vault-server/internal/interceptor"
	"github.com/smswithoutborders/vault-server/internal/server"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
)

var configFile = flag.String("f", "etc/vault.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	c.ListenOn = c.ListenAddr()
	ctx := svc.NewServiceContext(c)

	s := zrpc.MustNewServer(c.RpcServerConf, func(grpcServer *grpc.Server) {
		pb.RegisterEntityServer(grpcServer, server.NewEntityServer(ctx))

		if c.Mode == service.DevMode || c.Mode == service.TestMode {
			reflection.Register(grpcServer)
		}
	})
	s.AddUnaryInterceptors(interceptor.LoggingInterceptor)

	if c.Mode == "production" {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			panic("production mode requires tls.certFile and tls.keyFile")
		}
		creds, err := credentials.NewServerTLSFromFile(c.TLS.CertFile, c.TLS.KeyFile)
		if err != nil {
			panic(fmt.Sprintf("load TLS credentials: %v", err))
		}
		s.AddOptions(grpc.Creds(creds))
	}
	defer s.Stop()

	fmt.Printf("Starting vault rpc server at %s...\n", c.ListenOn)
	s.Start()
}
