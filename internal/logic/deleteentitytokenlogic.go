package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

type DeleteEntityTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDeleteEntityTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteEntityTokenLogic {
	return &DeleteEntityTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// DeleteEntityToken is long_lived_token-authenticated.
func (l *DeleteEntityTokenLogic) DeleteEntityToken(in *pb.DeleteEntityTokenRequest) (*pb.DeleteEntityTokenResponse, error) {
	values := map[string]string{
		"long_lived_token":   in.LongLivedToken,
		"platform":           in.Platform,
		"account_identifier": in.AccountIdentifier,
	}
	fields := []Field{Req("long_lived_token"), Req("platform"), Req("account_identifier")}
	if err := ValidateFields(values, fields, nil); err != nil {
		return nil, err
	}

	if !svc.IsSupportedPlatform(in.Platform) {
		return nil, status.Errorf(codes.Unimplemented, "platform %q is not supported", in.Platform)
	}

	entity, err := VerifyLLT(l.ctx, l.svcCtx, in.LongLivedToken)
	if err != nil {
		return nil, err
	}

	identifierHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.AccountIdentifier))
	if _, err := l.svcCtx.Tokens.Find(l.ctx, entity.EID, in.Platform, identifierHash); err == repository.ErrNotFound {
		return nil, status.Error(codes.NotFound, "no stored token for this platform and account")
	} else if err != nil {
		l.Errorf("lookup token: %v", err)
		return nil, errInternal(err)
	}

	if err := l.svcCtx.Tokens.Delete(l.ctx, entity.EID, in.Platform, identifierHash); err != nil {
		l.Errorf("delete token: %v", err)
		return nil, errInternal(err)
	}

	return &pb.DeleteEntityTokenResponse{Success: true, Message: "token deleted"}, nil
}
