// Package server wires the generated Entity service descriptor to the logic
// package, following the same generated-delegates-to-logic split as the
// teacher's goctl-produced rpc services.
package server

import (
	"context"

	"github.com/smswithoutborders/vault-server/internal/logic"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
)

type EntityServer struct {
	svcCtx *svc.ServiceContext
	pb.UnimplementedEntityServer
}

func NewEntityServer(svcCtx *svc.ServiceContext) *EntityServer {
	return &EntityServer{svcCtx: svcCtx}
}

func (s *EntityServer) CreateEntity(ctx context.Context, in *pb.CreateEntityRequest) (*pb.CreateEntityResponse, error) {
	return logic.NewCreateEntityLogic(ctx, s.svcCtx).CreateEntity(in)
}

func (s *EntityServer) AuthenticateEntity(ctx context.Context, in *pb.AuthenticateEntityRequest) (*pb.AuthenticateEntityResponse, error) {
	return logic.NewAuthenticateEntityLogic(ctx, s.svcCtx).AuthenticateEntity(in)
}

func (s *EntityServer) ListEntityStoredTokens(ctx context.Context, in *pb.ListEntityStoredTokensRequest) (*pb.ListEntityStoredTokensResponse, error) {
	return logic.NewListEntityStoredTokensLogic(ctx, s.svcCtx).ListEntityStoredTokens(in)
}

func (s *EntityServer) StoreEntityToken(ctx context.Context, in *pb.StoreEntityTokenRequest) (*pb.StoreEntityTokenResponse, error) {
	return logic.NewStoreEntityTokenLogic(ctx, s.svcCtx).StoreEntityToken(in)
}

func (s *EntityServer) GetEntityAccessToken(ctx context.Context, in *pb.GetEntityAccessTokenRequest) (*pb.GetEntityAccessTokenResponse, error) {
	return logic.NewGetEntityAccessTokenLogic(ctx, s.svcCtx).GetEntityAccessToken(in)
}

func (s *EntityServer) UpdateEntityToken(ctx context.Context, in *pb.UpdateEntityTokenRequest) (*pb.UpdateEntityTokenResponse, error) {
	return logic.NewUpdateEntityTokenLogic(ctx, s.svcCtx).UpdateEntityToken(in)
}

func (s *EntityServer) DeleteEntityToken(ctx context.Context, in *pb.DeleteEntityTokenRequest) (*pb.DeleteEntityTokenResponse, error) {
	return logic.NewDeleteEntityTokenLogic(ctx, s.svcCtx).DeleteEntityToken(in)
}

func (s *EntityServer) DecryptPayload(ctx context.Context, in *pb.DecryptPayloadRequest) (*pb.DecryptPayloadResponse, error) {
	return logic.NewDecryptPayloadLogic(ctx, s.svcCtx).DecryptPayload(in)
}

func (s *EntityServer) EncryptPayload(ctx context.Context, in *pb.EncryptPayloadRequest) (*pb.EncryptPayloadResponse, error) {
	return logic.NewEncryptPayloadLogic(ctx, s.svcCtx).EncryptPayload(in)
}

func (s *EntityServer) DeleteEntity(ctx context.Context, in *pb.DeleteEntityRequest) (*pb.DeleteEntityResponse, error) {
	return logic.NewDeleteEntityLogic(ctx, s.svcCtx).DeleteEntity(in)
}
