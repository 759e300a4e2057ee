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

type GetEntityAccessTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetEntityAccessTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetEntityAccessTokenLogic {
	return &GetEntityAccessTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// GetEntityAccessToken authenticates via either long_lived_token or
// device_id; exactly one is required.
func (l *GetEntityAccessTokenLogic) GetEntityAccessToken(in *pb.GetEntityAccessTokenRequest) (*pb.GetEntityAccessTokenResponse, error) {
	values := map[string]string{
		"long_lived_token": in.LongLivedToken,
		"device_id":        in.DeviceId,
		"platform":         in.Platform,
		"account_identifier": in.AccountIdentifier,
	}
	fields := []Field{
		OneOf("long_lived_token", "device_id"),
		Req("platform"), Req("account_identifier"),
	}
	if err := ValidateFields(values, fields, nil); err != nil {
		return nil, err
	}
	if in.LongLivedToken != "" && in.DeviceId != "" {
		return nil, status.Error(codes.InvalidArgument, "invalid request: provide only one of long_lived_token|device_id")
	}

	if !svc.IsSupportedPlatform(in.Platform) {
		return nil, status.Errorf(codes.Unimplemented, "platform %q is not supported", in.Platform)
	}

	var eid string
	if in.LongLivedToken != "" {
		entity, err := VerifyLLT(l.ctx, l.svcCtx, in.LongLivedToken)
		if err != nil {
			return nil, err
		}
		eid = entity.EID
	} else {
		entity, err := VerifyDeviceID(l.ctx, l.svcCtx, in.DeviceId)
		if err != nil {
			return nil, err
		}
		eid = entity.EID
	}

	identifierHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.AccountIdentifier))
	row, err := l.svcCtx.Tokens.Find(l.ctx, eid, in.Platform, identifierHash)
	if err == repository.ErrNotFound {
		return nil, status.Error(codes.NotFound, "no stored token for this platform and account")
	}
	if err != nil {
		l.Errorf("lookup token: %v", err)
		return nil, errInternal(err)
	}

	plaintext, err := cryptoutil.AESGCMDecrypt(l.svcCtx.EncryptionKey, row.AccountTokens)
	if err != nil {
		l.Errorf("decrypt account tokens: %v", err)
		return nil, errInternal(err)
	}

	return &pb.GetEntityAccessTokenResponse{Success: true, Token: string(plaintext)}, nil
}
